package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/starshine-sys/bcr"
)

// ErrorContext is the context for an error.
type ErrorContext struct {
	Event   string
	Command string

	UserID  discord.UserID
	GuildID discord.GuildID
}

// Report logs an error and sends it to Sentry, if configured.
// The returned ID is always non-nil; without Sentry it's only useful for grepping logs.
func (bot *Bot) Report(ctx ErrorContext, err error) *sentry.EventID {
	cs := ctx.Event
	if cs == "" {
		cs = ctx.Command
	}

	if bot.Config.Auth.Sentry == "" {
		uid := uuid.New().String()
		bot.Log.Errorf("Error in %v (%v): %v", cs, uid, err)
		return (*sentry.EventID)(&uid)
	}

	hub := sentry.CurrentHub().Clone()

	data := map[string]interface{}{}
	if ctx.Event != "" {
		data["event"] = ctx.Event
	}
	if ctx.Command != "" {
		data["command"] = ctx.Command
	}
	if ctx.GuildID.IsValid() {
		data["guild"] = ctx.GuildID
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if ctx.UserID.IsValid() {
			scope.SetUser(sentry.User{ID: ctx.UserID.String()})
			data["user"] = ctx.UserID
		}
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data:      data,
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	id := hub.CaptureException(err)
	if id == nil {
		uid := uuid.New().String()
		id = (*sentry.EventID)(&uid)
	}

	bot.Log.Errorf("Error in %v (%v): %v", cs, *id, err)
	return id
}

// ReportError reports an error in a command and tells the user an error occurred.
func (bot *Bot) ReportError(ctx *bcr.Context, e error) (err error) {
	var guildID discord.GuildID
	if ctx.Guild != nil {
		guildID = ctx.Guild.ID
	}

	id := bot.Report(ErrorContext{
		Command: strings.Join(ctx.FullCommandPath, " "),
		UserID:  ctx.Author.ID,
		GuildID: guildID,
	}, e)

	embed := discord.Embed{
		Title:       "Internal error occurred",
		Description: "An internal error has occurred. If this issue persists, please contact the bot developer with the error code above.",
		Color:       bcr.ColourRed,
		Footer: &discord.EmbedFooter{
			Text: string(*id),
		},
		Timestamp: discord.NowTimestamp(),
	}
	if bot.Config.Info.SupportServer != "" {
		embed.Description = strings.NewReplacer(
			"the bot developer", fmt.Sprintf("the bot developer in the [support server](%v)", bot.Config.Info.SupportServer),
		).Replace(embed.Description)
	}

	_, err = ctx.Send(fmt.Sprintf("Error code: ``%v``", bcr.EscapeBackticks(string(*id))), embed)
	return err
}
