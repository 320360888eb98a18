package commands

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

// parseUserID parses a mention or ID. It doesn't check whether the user exists.
func parseUserID(s string) (discord.UserID, bool) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(s, "<@"), "!"), ">")

	sf, err := discord.ParseSnowflake(s)
	if err != nil || !sf.IsValid() {
		return 0, false
	}
	return discord.UserID(sf), true
}

func (bot *Bot) whitelistAdd(ctx *bcr.Context) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}

	u, err := ctx.ParseUser(ctx.Args[0])
	if err != nil {
		_, err = ctx.Replyc(bcr.ColourRed, "Invalid user. Please provide a valid user ID or mention a user.")
		return
	}

	if !bot.Store.AddExempt(ctx.Message.GuildID, u.ID) {
		_, err = ctx.Replyc(bcr.ColourRed, "%v is already in the whitelist.", u.Tag())
		return
	}
	bot.SetUser(*u)

	bot.log.Infof("User %v (%v) added to whitelist by %v in %v", u.Tag(), u.ID, ctx.Author.Tag(), ctx.Message.GuildID)

	_, err = ctx.Send("", discord.Embed{
		Title:       "User Whitelisted",
		Description: fmt.Sprintf("%v has been added to the security whitelist.", u.Tag()),
		Color:       bcr.ColourGreen,
		Footer:      requestedBy(ctx),
		Timestamp:   discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) whitelistRemove(ctx *bcr.Context) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}

	// deleted accounts can't be fetched, so fall back to the raw ID
	var id discord.UserID
	name := ""
	if u, err := ctx.ParseUser(ctx.Args[0]); err == nil {
		id, name = u.ID, u.Tag()
	} else if parsed, ok := parseUserID(ctx.Args[0]); ok {
		id, name = parsed, parsed.String()
	} else {
		_, err = ctx.Replyc(bcr.ColourRed, "Invalid user. Please provide a valid user ID or mention a user.")
		return err
	}

	if !bot.Store.RemoveExempt(ctx.Message.GuildID, id) {
		_, err = ctx.Replyc(bcr.ColourRed, "%v is not in the whitelist.", name)
		return
	}

	bot.log.Infof("User %v (%v) removed from whitelist by %v in %v", name, id, ctx.Author.Tag(), ctx.Message.GuildID)

	_, err = ctx.Send("", discord.Embed{
		Title:       "User Removed from Whitelist",
		Description: fmt.Sprintf("%v has been removed from the security whitelist.", name),
		Color:       bcr.ColourRed,
		Footer:      requestedBy(ctx),
		Timestamp:   discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) whitelistShow(ctx *bcr.Context) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}

	idsOnly, _ := ctx.Flags.GetBool("ids")
	exempt := bot.Store.Settings(ctx.Message.GuildID).Exempt

	lines := make([]string, 0, len(exempt))
	for _, id := range exempt {
		if idsOnly {
			lines = append(lines, id.String())
			continue
		}

		if u, err := bot.User(id); err == nil {
			lines = append(lines, fmt.Sprintf("• %v (%v)", u.Tag(), id))
		} else {
			lines = append(lines, fmt.Sprintf("• Unknown User (%v)", id))
		}
	}

	if idsOnly {
		if len(lines) == 0 {
			_, err = ctx.Send("No users have been whitelisted.")
			return
		}
		_, err = ctx.Send("```\n" + strings.Join(lines, "\n") + "\n```")
		return
	}

	value := "No users have been whitelisted."
	if len(lines) > 0 {
		value = strings.Join(lines, "\n")
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "Security Whitelist",
		Description: "Users in the whitelist are exempt from all security actions.",
		Color:       bcr.ColourBlue,
		Fields: []discord.EmbedField{
			{Name: fmt.Sprintf("Whitelisted Users (%v)", len(exempt)), Value: value},
		},
		Footer:    requestedBy(ctx),
		Timestamp: discord.NowTimestamp(),
	})
	return
}
