package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
)

func (bot *Bot) channelCreate(ev *gateway.ChannelCreateEvent) (*antinuke.Event, error) {
	if !ev.GuildID.IsValid() {
		return nil, nil
	}

	return &antinuke.Event{
		Protection: store.ChannelCreate,
		GuildID:    ev.GuildID,
		TargetID:   discord.Snowflake(ev.ID),
		TargetName: ev.Name,
	}, nil
}

func (bot *Bot) channelDelete(ev *gateway.ChannelDeleteEvent) (*antinuke.Event, error) {
	if !ev.GuildID.IsValid() {
		return nil, nil
	}

	snapshot := store.NewChannelSnapshot(ev.Channel)
	return &antinuke.Event{
		Protection: store.ChannelDelete,
		GuildID:    ev.GuildID,
		TargetID:   discord.Snowflake(ev.ID),
		TargetName: ev.Name,
		Channel:    &snapshot,
	}, nil
}
