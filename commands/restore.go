package commands

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
)

const restoreTimeout = 5 * time.Minute

// fieldLimit is the maximum length of an embed field value.
const fieldLimit = 1024

// joinLines joins lines with newlines, dropping lines from the end and adding an "…and N more" line
// if the result would be longer than max characters.
func joinLines(lines []string, max int) string {
	if s := strings.Join(lines, "\n"); utf8.RuneCountInString(s) <= max {
		return s
	}

	more := func(n int, first bool) string {
		if first {
			return fmt.Sprintf("…and %v more", n)
		}
		return fmt.Sprintf("\n…and %v more", n)
	}

	var b strings.Builder
	length := 0
	for i, l := range lines {
		add := l
		if i > 0 {
			add = "\n" + l
		}
		addLen := utf8.RuneCountInString(add)

		if length+addLen+utf8.RuneCountInString(more(len(lines)-i-1, false)) > max {
			b.WriteString(more(len(lines)-i, i == 0))
			break
		}

		b.WriteString(add)
		length += addLen
	}
	return b.String()
}

func channelLines(chs []store.ChannelSnapshot) string {
	if len(chs) == 0 {
		return "No deleted channels found."
	}

	lines := make([]string, 0, len(chs))
	for _, ch := range chs {
		lines = append(lines, fmt.Sprintf("• %v (%v, deleted %v)", ch.Name, channelTypeName(ch.Type), humanize.Time(ch.DeletedAt)))
	}
	return joinLines(lines, fieldLimit)
}

func roleLines(roles []store.RoleSnapshot) string {
	if len(roles) == 0 {
		return "No deleted roles found."
	}

	lines := make([]string, 0, len(roles))
	for _, r := range roles {
		lines = append(lines, fmt.Sprintf("• %v (Colour: #%06X, deleted %v)", r.Name, uint32(r.Color), humanize.Time(r.DeletedAt)))
	}
	return joinLines(lines, fieldLimit)
}

func restoredTitle(kind antinuke.RestoreKind) string {
	if kind == antinuke.RestoreRoles {
		return "Roles Restored"
	}
	return "Channels Restored"
}

func channelTypeName(t discord.ChannelType) string {
	switch t {
	case discord.GuildText:
		return "text"
	case discord.GuildVoice:
		return "voice"
	case discord.GuildCategory:
		return "category"
	case discord.GuildNews:
		return "news"
	case discord.GuildStageVoice:
		return "stage"
	}
	return fmt.Sprintf("type %d", t)
}

func (bot *Bot) restoreList(ctx *bcr.Context) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}

	chs, roles := bot.Store.Deleted(ctx.Message.GuildID)
	if len(chs) == 0 && len(roles) == 0 {
		_, err = ctx.Reply("There are no deleted channels or roles to restore.")
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "Restore Deleted Items",
		Description: fmt.Sprintf("Use `%vrestore channels` to restore deleted channels or `%vrestore roles` to restore deleted roles.", bot.prefix(), bot.prefix()),
		Color:       bcr.ColourBlue,
		Fields: []discord.EmbedField{
			{Name: fmt.Sprintf("Deleted Channels (%v)", len(chs)), Value: channelLines(chs)},
			{Name: fmt.Sprintf("Deleted Roles (%v)", len(roles)), Value: roleLines(roles)},
		},
		Footer:    requestedBy(ctx),
		Timestamp: discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) restoreChannels(ctx *bcr.Context) error {
	return bot.restore(ctx, antinuke.RestoreChannels)
}

func (bot *Bot) restoreRoles(ctx *bcr.Context) error {
	return bot.restore(ctx, antinuke.RestoreRoles)
}

func (bot *Bot) restore(ctx *bcr.Context, kind antinuke.RestoreKind) (err error) {
	if ok, err := bot.checkManage(ctx); !ok {
		return err
	}
	guildID := ctx.Message.GuildID

	if dryRun, _ := ctx.Flags.GetBool("dry-run"); dryRun {
		chs, roles := bot.Store.Deleted(guildID)

		value := channelLines(chs)
		if kind == antinuke.RestoreRoles {
			value = roleLines(roles)
		}

		_, err = ctx.Send("", discord.Embed{
			Title:       fmt.Sprintf("These %v would be restored", kind),
			Description: value,
			Color:       bcr.ColourBlue,
			Footer:      requestedBy(ctx),
			Timestamp:   discord.NowTimestamp(),
		})
		return
	}

	rctx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer cancel()

	res, err := bot.Engine.Restore(rctx, guildID, kind)
	if err != nil {
		if errors.Is(err, antinuke.ErrNothingToRestore) {
			_, err = ctx.Reply("There are no deleted %v to restore.", kind)
			return
		}
		return bot.ReportError(ctx, err)
	}

	bot.log.Infof("%v restored %v/%v %v in %v", ctx.Author.Tag(), res.Restored, res.Attempted, kind, guildID)

	e := discord.Embed{
		Title:       restoredTitle(kind),
		Description: fmt.Sprintf("Successfully restored %v of %v %v.", res.Restored, res.Attempted, kind),
		Color:       bcr.ColourGreen,
		Footer:      requestedBy(ctx),
		Timestamp:   discord.NowTimestamp(),
	}
	if len(res.Failed) > 0 {
		failed := make([]string, 0, len(res.Failed))
		for _, name := range res.Failed {
			failed = append(failed, "• "+name)
		}

		e.Color = bcr.ColourOrange
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Failed",
			Value: joinLines(failed, fieldLimit),
		})
	}

	_, err = ctx.Send("", e)
	return
}
