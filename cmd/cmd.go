// Package cmd is the command-line interface.
package cmd

import (
	"os"

	"github.com/starshine-sys/warden/cmd/bot"
	"github.com/starshine-sys/warden/common"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "warden",
	Usage:   "Anti-nuke bot for Discord",
	Version: common.BuildVersion(),

	Commands: []*cli.Command{
		bot.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
