package commands

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

var helpCommands = []struct {
	usage, desc string
}{
	{"security help", "Displays this dashboard with all commands."},
	{"antirolecreate", "Ban users who create roles without permission."},
	{"antirole delete", "Ban users who delete roles without permission."},
	{"antichannelcreate", "Ban users who create channels without permission."},
	{"antichannel delete", "Ban users who delete channels without permission."},
	{"antibot add", "Ban users who add bots without permission."},
	{"antiwebhook create", "Ban users who create webhooks without permission."},
	{"antinuke", "Enable/disable all anti-nuke protections."},
	{"protections", "Show which protections are enabled."},
	{"restore", "Restore deleted channels or roles."},
	{"whitelist add <user>", "Add a user to the whitelist."},
	{"whitelist remove <user>", "Remove a user from the whitelist."},
	{"whitelist show", "Display all whitelisted users."},
	{"securitytools", "Create security logs channel and security role."},
	{"stats", "Show the bot's latency and statistics."},
}

func helpEmbed(prefix string) discord.Embed {
	e := discord.Embed{
		Title:       "🛡️ Security Bot - Command Dashboard",
		Description: "Below is a list of all available security commands.",
		Color:       bcr.ColourRed,
		Footer: &discord.EmbedFooter{
			Text: "Prefix: " + prefix,
		},
		Timestamp: discord.NowTimestamp(),
	}

	for _, c := range helpCommands {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  fmt.Sprintf("`%v%v`", prefix, c.usage),
			Value: c.desc,
		})
	}
	return e
}

func (bot *Bot) help(ctx *bcr.Context) (err error) {
	_, err = ctx.Send("", helpEmbed(bot.prefix()))
	return
}
