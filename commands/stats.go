package commands

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/common"
	"github.com/starshine-sys/warden/stats"
)

func (bot *Bot) stats(ctx *bcr.Context) (err error) {
	t := time.Now()

	m, err := ctx.Send("...")
	if err != nil {
		return err
	}

	latency := time.Since(t).Round(time.Millisecond)

	// this will return 0ms in the first minute after the bot is restarted
	heartbeat := ctx.State.Gateway().EchoBeat().Sub(ctx.State.Gateway().SentBeat()).Round(time.Millisecond)

	sys := stats.System()
	totals := bot.Stats.Totals()

	cpu := "unknown"
	if sys.CPU >= 0 {
		cpu = fmt.Sprintf("%.1f%%", sys.CPU)
	}

	e := discord.Embed{
		Color: bcr.ColourPurple,
		Fields: []discord.EmbedField{
			{
				Name:   "Ping",
				Value:  fmt.Sprintf("Heartbeat: %v\nMessage: %v", heartbeat, latency),
				Inline: true,
			},
			{
				Name:   "Memory usage",
				Value:  fmt.Sprintf("%v / %v", humanize.Bytes(sys.Alloc), humanize.Bytes(sys.Sys)),
				Inline: true,
			},
			{
				Name:   "CPU usage",
				Value:  cpu,
				Inline: true,
			},
			{
				Name:   "Goroutines",
				Value:  fmt.Sprint(sys.Goroutines),
				Inline: true,
			},
			{
				Name:   "Servers",
				Value:  humanize.Comma(int64(bot.GuildCount())),
				Inline: true,
			},
			{
				Name: "Uptime",
				Value: fmt.Sprintf(
					"%v\n(Since %v)",
					bcr.HumanizeDuration(bcr.DurationPrecisionSeconds, time.Since(bot.Start)),
					bot.Start.Format("Jan _2 2006, 15:04:05 MST"),
				),
				Inline: true,
			},
			{
				Name: "Since startup",
				Value: fmt.Sprintf(
					"%v events, %v commands\n%v incidents, %v bans, %v failed actions",
					humanize.Comma(int64(totals.Events)),
					humanize.Comma(int64(totals.Commands)),
					humanize.Comma(int64(totals.Incidents)),
					humanize.Comma(int64(totals.Bans)),
					humanize.Comma(int64(totals.Failures)),
				),
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "Version " + common.BuildVersion(),
		},
		Timestamp: discord.NowTimestamp(),
	}

	_, err = ctx.State.EditMessageComplex(m.ChannelID, m.ID, api.EditMessageData{
		Content: option.NewNullableString(""),
		Embeds:  &[]discord.Embed{e},
	})
	return err
}
