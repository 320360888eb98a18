package events

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBot() *Bot {
	return newBot(nil, zap.NewNop().Sugar())
}

func TestGuildRoleDeleteUsesSnapshot(t *testing.T) {
	bot := testBot()
	bot.saveRole(discord.Role{
		ID:          10,
		Name:        "Moderators",
		Color:       0xff0000,
		Hoist:       true,
		Permissions: discord.PermissionKickMembers,
	})

	ev, err := bot.guildRoleDelete(&gateway.GuildRoleDeleteEvent{GuildID: 1, RoleID: 10})
	require.NoError(t, err)

	assert.Equal(t, store.RoleDelete, ev.Protection)
	assert.Equal(t, "Moderators", ev.TargetName)
	require.NotNil(t, ev.Role)
	assert.Equal(t, discord.Color(0xff0000), ev.Role.Color)
	assert.True(t, ev.Role.Hoist)
	assert.Equal(t, discord.PermissionKickMembers, ev.Role.Permissions)

	// snapshots are only used once
	ev, err = bot.guildRoleDelete(&gateway.GuildRoleDeleteEvent{GuildID: 1, RoleID: 10})
	require.NoError(t, err)
	assert.Nil(t, ev.Role)
}

func TestGuildRoleDeleteWithoutSnapshot(t *testing.T) {
	ev, err := testBot().guildRoleDelete(&gateway.GuildRoleDeleteEvent{GuildID: 1, RoleID: 11})
	require.NoError(t, err)

	assert.Equal(t, discord.Snowflake(11), ev.TargetID)
	assert.Nil(t, ev.Role)
}

func TestChannelDeleteSnapshot(t *testing.T) {
	ch := discord.Channel{
		ID:       20,
		GuildID:  1,
		Name:     "rules",
		Type:     discord.GuildText,
		Topic:    "read these",
		ParentID: 30,
		Position: 2,
		Overwrites: []discord.Overwrite{
			{ID: 1, Type: discord.OverwriteRole, Deny: discord.PermissionViewChannel},
		},
	}

	ev, err := testBot().channelDelete(&gateway.ChannelDeleteEvent{Channel: ch})
	require.NoError(t, err)

	assert.Equal(t, store.ChannelDelete, ev.Protection)
	assert.Equal(t, discord.GuildID(1), ev.GuildID)
	require.NotNil(t, ev.Channel)
	assert.Equal(t, "rules", ev.Channel.Name)
	assert.Equal(t, "read these", ev.Channel.Topic)
	assert.Equal(t, discord.ChannelID(30), ev.Channel.ParentID)
	assert.Equal(t, ch.Overwrites, ev.Channel.Overwrites)
}

func TestDMChannelsAreIgnored(t *testing.T) {
	bot := testBot()

	ev, err := bot.channelCreate(&gateway.ChannelCreateEvent{Channel: discord.Channel{ID: 5, Type: discord.DirectMessage}})
	assert.NoError(t, err)
	assert.Nil(t, ev)

	ev, err = bot.channelDelete(&gateway.ChannelDeleteEvent{Channel: discord.Channel{ID: 5, Type: discord.DirectMessage}})
	assert.NoError(t, err)
	assert.Nil(t, ev)
}

func TestGuildMemberAdd(t *testing.T) {
	ev, err := testBot().guildMemberAdd(&gateway.GuildMemberAddEvent{
		GuildID: 1,
		Member: discord.Member{
			User: discord.User{ID: 40, Username: "nukebot", Discriminator: "0001", Bot: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, store.BotAdd, ev.Protection)
	assert.True(t, ev.IsBot)
	assert.Equal(t, discord.Snowflake(40), ev.TargetID)
	assert.Equal(t, "nukebot#0001", ev.TargetName)
}
