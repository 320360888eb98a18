package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
)

func (bot *Bot) guildMemberAdd(ev *gateway.GuildMemberAddEvent) (*antinuke.Event, error) {
	return &antinuke.Event{
		Protection: store.BotAdd,
		GuildID:    ev.GuildID,
		TargetID:   discord.Snowflake(ev.User.ID),
		TargetName: ev.User.Tag(),
		IsBot:      ev.User.Bot,
	}, nil
}

// webhooksUpdate is sent for created, updated and deleted webhooks alike.
// Attribution only looks at webhook creations, and the engine acts on each creation entry once.
func (bot *Bot) webhooksUpdate(ev *gateway.WebhooksUpdateEvent) (*antinuke.Event, error) {
	return &antinuke.Event{
		Protection: store.WebhookCreate,
		GuildID:    ev.GuildID,
	}, nil
}
