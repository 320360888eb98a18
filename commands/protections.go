package commands

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/store"
)

var protectionActions = map[store.Protection]string{
	store.RoleCreate:    "Users who create roles without permission will be banned, and the role will be deleted.",
	store.RoleDelete:    "Users who delete roles without permission will be banned.",
	store.ChannelCreate: "Users who create channels without permission will be banned.",
	store.ChannelDelete: "Users who delete channels without permission will be banned.",
	store.BotAdd:        "Users who add bots without permission will be banned, and the bot will be kicked.",
	store.WebhookCreate: "Users who create webhooks without permission will be banned, and the webhook will be deleted.",
}

func statusText(enabled bool) (string, string, discord.Color) {
	if enabled {
		return "enabled", "✅ Enabled", bcr.ColourGreen
	}
	return "disabled", "❌ Disabled", bcr.ColourRed
}

// toggle returns a command that toggles a single protection.
func (bot *Bot) toggle(p store.Protection) func(*bcr.Context) error {
	return func(ctx *bcr.Context) (err error) {
		if ok, err := bot.checkManage(ctx); !ok {
			return err
		}

		guildID := ctx.Message.GuildID
		enabled := !bot.Store.Settings(guildID).Enabled(p)
		bot.Store.SetProtection(guildID, p, enabled)

		text, status, colour := statusText(enabled)
		bot.log.Infof("%v protection %v by %v in %v", p.Name(), text, ctx.Author.Tag(), guildID)

		_, err = ctx.Send("", discord.Embed{
			Title:       p.Name() + " Protection",
			Description: fmt.Sprintf("%v protection has been %v.", p.Name(), text),
			Color:       colour,
			Fields: []discord.EmbedField{
				{Name: "Status", Value: status},
				{Name: "Action", Value: protectionActions[p]},
			},
			Footer:    requestedBy(ctx),
			Timestamp: discord.NowTimestamp(),
		})
		return
	}
}

func (bot *Bot) antinuke(ctx *bcr.Context) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}

	guildID := ctx.Message.GuildID
	enabled := !bot.Store.Settings(guildID).AntiNuke
	bot.Store.SetAntiNuke(guildID, enabled)

	text, status, colour := statusText(enabled)
	bot.log.Infof("All anti-nuke protections %v by %v in %v", text, ctx.Author.Tag(), guildID)

	var b strings.Builder
	for _, p := range store.Protections {
		b.WriteString("• " + p.Name() + "\n")
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "🛡️ Anti-Nuke Protection",
		Description: fmt.Sprintf("All anti-nuke protections have been %v.", text),
		Color:       colour,
		Fields: []discord.EmbedField{
			{Name: "Status", Value: status},
			{Name: "Protections Included", Value: b.String()},
			{Name: "Action", Value: "Users who perform potentially harmful actions without permission will be banned."},
		},
		Footer:    requestedBy(ctx),
		Timestamp: discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) protections(ctx *bcr.Context) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}

	_, err = ctx.Send("", protectionsEmbed(bot.Store.Settings(ctx.Message.GuildID)))
	return
}

func protectionsEmbed(s store.GuildSettings) discord.Embed {
	var b strings.Builder
	for _, p := range store.Protections {
		_, status, _ := statusText(s.Enabled(p))
		fmt.Fprintf(&b, "**%v:** %v\n", p.Name(), status)
	}

	logChannel, securityRole := "Not set", "Not set"
	if s.LogChannel.IsValid() {
		logChannel = s.LogChannel.Mention()
	}
	if s.SecurityRole.IsValid() {
		securityRole = s.SecurityRole.Mention()
	}

	_, master, colour := statusText(s.AntiNuke)
	return discord.Embed{
		Title:       "🛡️ Protections",
		Description: b.String(),
		Color:       colour,
		Fields: []discord.EmbedField{
			{Name: "Anti-nuke", Value: master, Inline: true},
			{Name: "Whitelisted users", Value: fmt.Sprint(len(s.Exempt)), Inline: true},
			{Name: "Security logs", Value: logChannel, Inline: true},
			{Name: "Security role", Value: securityRole, Inline: true},
		},
		Timestamp: discord.NowTimestamp(),
	}
}
