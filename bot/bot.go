// Package bot connects the anti-nuke engine to Discord.
package bot

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/common/log"
	"github.com/starshine-sys/warden/stats"
	"github.com/starshine-sys/warden/store"
	"github.com/starshine-sys/warden/store/memory"
	"go.uber.org/zap"
)

const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMembers |
	gateway.IntentGuildBans |
	gateway.IntentGuildWebhooks |
	gateway.IntentGuildMessages

type Bot struct {
	Router *bcr.Router
	Config Config
	Log    *zap.SugaredLogger

	Store    store.Store
	Engine   *antinuke.Engine
	Stats    *stats.Client
	Platform *Platform

	users *ttlcache.Cache
	Start time.Time
}

// New creates a new Bot.
func New(c Config) (*Bot, error) {
	ws.WSDebug = log.Named("ws").Debug
	ws.WSError = func(err error) {
		log.SugaredLogger.Error("ws error: ", err)
	}

	r, err := bcr.NewWithIntents(
		c.Auth.Discord,
		[]discord.UserID{c.Bot.Owner},
		c.Bot.Prefixes,
		Intents,
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating router")
	}
	r.EmbedColor = bcr.ColourPurple

	bot := &Bot{
		Router: r,
		Config: c,
		Log:    log.Named("bot"),
		Store:  memory.New(),
		Stats: stats.New(stats.Config{
			URL:          c.Auth.Influx.URL,
			Token:        c.Auth.Influx.Token,
			Organization: c.Auth.Influx.Organization,
			Bucket:       c.Auth.Influx.Bucket,
		}, log.Named("stats")),
		users: newUserCache(),
		Start: time.Now().UTC(),
	}

	bot.Platform = &Platform{State: bot.State}
	bot.Engine = antinuke.New(bot.Store, bot.Platform, bot.Platform, &Notifier{bot: bot}, bot.Stats, log.Named("antinuke"))

	bot.AddHandler(bot.ready, bot.handleEventForCache, bot.Stats.EventHandler)
	bot.ForEach(func(s *state.State) {
		s.Client.Client.OnResponse = append(s.Client.Client.OnResponse, bot.onResponse)
	})

	return bot, nil
}

// Open fetches the bot user and connects to the gateway.
func (bot *Bot) Open(ctx context.Context) error {
	s := bot.State(0)
	me, err := s.Me()
	if err != nil {
		return errors.Wrap(err, "fetching bot user")
	}
	bot.setSelf(*me)

	log.Debug("opening gateway connection")
	err = bot.Router.ShardManager.Open(ctx)
	if err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	go bot.Stats.Run(ctx)
	if !bot.Config.Bot.NoStatus {
		go bot.statusLoop(ctx)
	}

	bot.Log.Infof("User: %v (%v)", me.Tag(), me.ID)
	return nil
}

func (bot *Bot) Close() error {
	_ = bot.users.Close()
	return bot.Router.ShardManager.Close()
}

// AddHandler adds handlers to all states.
func (bot *Bot) AddHandler(i ...interface{}) {
	bot.ForEach(func(s *state.State) {
		for _, hn := range i {
			s.AddHandler(hn)
		}
	})
}

// ForEach runs fn for every shard's state.
func (bot *Bot) ForEach(fn func(*state.State)) {
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		fn(s.(*state.State))
	})
}

// State returns the state for the shard handling the given guild.
func (bot *Bot) State(guildID discord.GuildID) *state.State {
	s, _ := bot.Router.StateFromGuildID(guildID)
	return s
}

func (bot *Bot) setSelf(u discord.User) {
	if bot.Router.Bot == nil {
		// normally creating a Context would do this, but that only happens after the first command
		bot.Router.Prefixes = append(bot.Router.Prefixes, "<@"+u.ID.String()+">", "<@!"+u.ID.String()+">")
	}

	bot.Router.Bot = &u
	bot.Engine.SetSelf(u.ID)
	bot.SetUser(u)
}

// ready updates the bot user
func (bot *Bot) ready(ev *gateway.ReadyEvent) {
	bot.setSelf(ev.User)
}
