package bot

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/antinuke"
)

var _ antinuke.Notifier = (*Notifier)(nil)

// Notifier sends incident reports as embeds.
type Notifier struct {
	bot *Bot
}

func (n *Notifier) Notify(ctx context.Context, channelID discord.ChannelID, r antinuke.Report) error {
	s := n.bot.State(r.GuildID).WithContext(ctx)

	_, err := s.SendEmbeds(channelID, ReportEmbed(r, n.bot.userTag(r.ActorID)))
	return errors.Wrapf(err, "send report to %v", channelID)
}

// ReportEmbed renders a report. actor is the actor's tag, if known.
func ReportEmbed(r antinuke.Report, actor string) discord.Embed {
	e := discord.Embed{
		Title:       r.Title(),
		Description: r.Description(actor),
		Color:       bcr.ColourRed,
		Fields: []discord.EmbedField{
			{
				Name:   "Protection",
				Value:  r.Protection.Name(),
				Inline: true,
			},
			{
				Name:   "User",
				Value:  fmt.Sprintf("%v\n%v", r.ActorID.Mention(), r.ActorID),
				Inline: true,
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "Incident ID: " + r.IncidentID.String(),
		},
		Timestamp: discord.NewTimestamp(r.Time),
	}

	if r.Severity == antinuke.SeverityWarning {
		e.Color = bcr.ColourOrange
	}

	if !r.Time.IsZero() {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:   "Action time",
			Value:  humanize.Time(r.Time),
			Inline: true,
		})
	}

	return e
}
