package bot

import (
	"os"
	"os/signal"
	"syscall"

	"emperror.dev/errors"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/warden/bot"
	"github.com/starshine-sys/warden/commands"
	"github.com/starshine-sys/warden/common"
	"github.com/starshine-sys/warden/common/log"
	"github.com/starshine-sys/warden/events"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Action: run,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the configuration file",
			Value:   "config.toml",
		},
	},
}

func run(c *cli.Context) error {
	defer log.Sync()

	conf, err := bot.ReadConfig(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	// set up sentry
	if conf.Auth.Sentry != "" {
		log.Debug("setting up sentry")
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     conf.Auth.Sentry,
			Release: common.BuildVersion(),
		})
		if err != nil {
			log.Fatalf("setting up sentry: %v", err)
		}

		log.Debug("set up sentry")
	} else {
		log.Debugf("sentry DSN was not provided, not setting it up")
	}

	b, err := bot.New(conf)
	if err != nil {
		return errors.Wrap(err, "creating bot")
	}

	events.Init(b)   // anti-nuke event handlers
	commands.Init(b) // security commands

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = b.Open(ctx)
	if err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	defer func() {
		err = b.Close()
		if err != nil {
			log.Errorf("closing gateway connection: %v", err)
		}
	}()

	log.Info("Connected to Discord. Press Ctrl-C or send an interrupt signal to stop.")

	<-ctx.Done()
	log.Infof("Interrupt signal received. Shutting down...")
	return nil
}
