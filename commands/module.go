// Package commands contains the bot's prefix commands.
package commands

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/bot"
	"github.com/starshine-sys/warden/store"
	"go.uber.org/zap"
)

type Bot struct {
	*bot.Bot

	log *zap.SugaredLogger
}

// Init adds all commands to the router.
func Init(b *bot.Bot) {
	bot := &Bot{
		Bot: b,
		log: b.Log.Named("commands"),
	}

	sec := bot.Router.AddCommand(&bcr.Command{
		Name:    "security",
		Summary: "Show the security command dashboard.",

		Command: bot.wrap(bot.help),
	})
	sec.AddSubcommand(&bcr.Command{
		Name:    "help",
		Summary: "Show the security command dashboard.",

		Command: bot.wrap(bot.help),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "antinuke",
		Summary: "Enable or disable all anti-nuke protections.",

		Command: bot.wrap(bot.antinuke),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "protections",
		Summary: "Show which protections are enabled.",

		Command: bot.wrap(bot.protections),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "antirolecreate",
		Summary: "Ban users who create roles without permission.",

		Command: bot.wrap(bot.toggle(store.RoleCreate)),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "antichannelcreate",
		Summary: "Ban users who create channels without permission.",

		Command: bot.wrap(bot.toggle(store.ChannelCreate)),
	})

	// the rest are two words ("antirole delete"), so the toggle is a subcommand
	for _, c := range []struct {
		parent, sub string
		p           store.Protection
	}{
		{"antirole", "delete", store.RoleDelete},
		{"antichannel", "delete", store.ChannelDelete},
		{"antibot", "add", store.BotAdd},
		{"antiwebhook", "create", store.WebhookCreate},
	} {
		parent := bot.Router.AddCommand(&bcr.Command{
			Name:    c.parent,
			Summary: "Use `" + c.parent + " " + c.sub + "` to toggle " + c.p.Name() + " protection.",

			Command: bot.wrap(bot.usage(c.parent + " " + c.sub)),
		})
		parent.AddSubcommand(&bcr.Command{
			Name:    c.sub,
			Summary: "Toggle " + c.p.Name() + " protection.",

			Command: bot.wrap(bot.toggle(c.p)),
		})
	}

	wl := bot.Router.AddCommand(&bcr.Command{
		Name:    "whitelist",
		Summary: "Manage users exempt from all protections.",
		Usage:   "add|remove|show",

		Command: bot.wrap(bot.usage("whitelist add <user>`, `whitelist remove <user>`, or `whitelist show")),
	})
	wl.AddSubcommand(&bcr.Command{
		Name:    "add",
		Summary: "Add a user to the whitelist.",
		Usage:   "<user>",
		Args:    bcr.MinArgs(1),

		Command: bot.wrap(bot.whitelistAdd),
	})
	wl.AddSubcommand(&bcr.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Summary: "Remove a user from the whitelist.",
		Usage:   "<user>",
		Args:    bcr.MinArgs(1),

		Command: bot.wrap(bot.whitelistRemove),
	})
	wl.AddSubcommand(&bcr.Command{
		Name:    "show",
		Aliases: []string{"list"},
		Summary: "Show all whitelisted users.",
		Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
			fs.BoolP("ids", "i", false, "Only show user IDs.")
			return fs
		},

		Command: bot.wrap(bot.whitelistShow),
	})

	restore := bot.Router.AddCommand(&bcr.Command{
		Name:    "restore",
		Summary: "Show recently deleted channels and roles.",

		Command: bot.wrap(bot.restoreList),
	})
	restoreFlags := func(fs *pflag.FlagSet) *pflag.FlagSet {
		fs.BoolP("dry-run", "n", false, "Show what would be restored without restoring anything.")
		return fs
	}
	restore.AddSubcommand(&bcr.Command{
		Name:    "channels",
		Summary: "Restore recently deleted channels.",
		Flags:   restoreFlags,

		Command: bot.wrap(bot.restoreChannels),
	})
	restore.AddSubcommand(&bcr.Command{
		Name:    "roles",
		Summary: "Restore recently deleted roles.",
		Flags:   restoreFlags,

		Command: bot.wrap(bot.restoreRoles),
	})

	tools := bot.Router.AddCommand(&bcr.Command{
		Name:        "securitytools",
		Summary:     "Create a security logs channel and security admin role.",
		Description: "Create a private `security-logs` channel for incident reports, and a `Security Admin` role that can use security commands.",

		Permissions: discord.PermissionAdministrator,
		Command:     bot.wrap(bot.securityTools),
	})
	tools.AddSubcommand(&bcr.Command{
		Name:    "reset",
		Summary: "Unset the security logs channel and security admin role.",

		Permissions: discord.PermissionAdministrator,
		Command:     bot.wrap(bot.securityToolsReset),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "stats",
		Aliases: []string{"ping"},
		Summary: "Show the bot's latency and other stats.",

		Command: bot.wrap(bot.stats),
	})
}

// wrap counts and logs command usage.
func (bot *Bot) wrap(fn func(*bcr.Context) error) func(*bcr.Context) error {
	return func(ctx *bcr.Context) error {
		bot.Stats.IncCommand()
		bot.log.Infof("%v used %q in %v", ctx.Author.ID, ctx.Message.Content, ctx.Message.GuildID)

		return fn(ctx)
	}
}

// usage returns a command that tells the user how to use a command.
func (bot *Bot) usage(s string) func(*bcr.Context) error {
	return func(ctx *bcr.Context) (err error) {
		_, err = ctx.Replyc(bcr.ColourRed, "Invalid command usage. Please use `%v%v`.", bot.prefix(), s)
		return
	}
}

func (bot *Bot) prefix() string {
	return bot.Config.Bot.Prefixes[0]
}

// requestedBy is the footer on command responses.
func requestedBy(ctx *bcr.Context) *discord.EmbedFooter {
	return &discord.EmbedFooter{
		Text: "Requested by " + ctx.Author.Tag(),
	}
}
