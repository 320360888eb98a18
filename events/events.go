// Package events translates gateway events into anti-nuke events and hands them to the engine.
package events

import (
	"context"
	"reflect"
	"time"

	"emperror.dev/errors"
	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/state"
	arikawahandler "github.com/diamondburned/arikawa/v3/utils/handler"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/bot"
	"github.com/starshine-sys/warden/events/handler"
	"go.uber.org/zap"
)

// handleTimeout bounds the time spent on a single event's corrective actions.
const handleTimeout = time.Minute

type Bot struct {
	*bot.Bot

	Handler *handler.Handler
	log     *zap.SugaredLogger

	// roleSnapshots holds roles captured from the state cache just before they're deleted from it.
	roleSnapshots *ttlcache.Cache
}

// Init adds all event handlers to the bot.
func Init(b *bot.Bot) *Bot {
	bot := newBot(b, b.Log.Named("events"))

	bot.Handler.HandleEvent = bot.handleEvent
	bot.Handler.HandleError = bot.handleError
	bot.Handler.HandlePanic = bot.handlePanic

	bot.Handler.AddHandler(bot.guildRoleCreate)
	bot.Handler.AddHandler(bot.guildRoleDelete)
	bot.Handler.AddHandler(bot.channelCreate)
	bot.Handler.AddHandler(bot.channelDelete)
	bot.Handler.AddHandler(bot.guildMemberAdd)
	bot.Handler.AddHandler(bot.webhooksUpdate)

	b.ForEach(func(s *state.State) {
		if s.PreHandler == nil {
			s.PreHandler = arikawahandler.New()
			s.PreHandler.Synchronous = true
		}
		s.PreHandler.AddHandler(bot.snapshotRole(s))
	})
	b.AddHandler(bot.Handler.Call)

	return bot
}

func newBot(b *bot.Bot, log *zap.SugaredLogger) *Bot {
	bot := &Bot{
		Bot:           b,
		Handler:       handler.New(),
		log:           log,
		roleSnapshots: ttlcache.NewCache(),
	}
	_ = bot.roleSnapshots.SetTTL(time.Minute)
	return bot
}

func (bot *Bot) handleEvent(_ reflect.Value, ev *antinuke.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	out := bot.Engine.Handle(ctx, *ev)
	bot.log.Debugf("Handled %v in %v: %v (%v)", ev.Protection, ev.GuildID, out.Stage, out.Reason)
}

func (bot *Bot) handleError(ev reflect.Value, err error) {
	bot.Report(errorContext(ev), err)
}

func (bot *Bot) handlePanic(ev reflect.Value, r interface{}) {
	bot.Report(errorContext(ev), errors.Errorf("panic: %v", r))
}

func errorContext(ev reflect.Value) bot.ErrorContext {
	return bot.ErrorContext{Event: ev.Elem().Type().Name()}
}
