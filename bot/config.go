package bot

import (
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/diamondburned/arikawa/v3/discord"
)

// DefaultPrefix is used if no prefixes are configured.
const DefaultPrefix = "&&"

type Config struct {
	Auth AuthConfig `toml:"auth"`
	Bot  BotConfig  `toml:"bot"`
	Info InfoConfig `toml:"info"`
}

type AuthConfig struct {
	Discord string `toml:"discord"`
	Sentry  string `toml:"sentry"`

	Influx AuthInfluxConfig `toml:"influx"`
}

type AuthInfluxConfig struct {
	URL          string `toml:"url"`
	Token        string `toml:"token"`
	Organization string `toml:"organization"`
	Bucket       string `toml:"bucket"`
}

type BotConfig struct {
	Owner    discord.UserID `toml:"owner"`
	Prefixes []string       `toml:"prefixes"`

	// NoStatus disables the status loop.
	NoStatus bool `toml:"no_status"`
}

type InfoConfig struct {
	SupportServer string `toml:"support_server"`
}

// ReadConfig reads the config file at path, then applies environment overrides.
// A missing file is not an error as long as the token is set in the environment.
func ReadConfig(path string) (c Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return c, errors.Wrap(err, "read config file")
	}

	if err == nil {
		err = toml.Unmarshal(b, &c)
		if err != nil {
			return c, errors.Wrap(err, "unmarshal config")
		}
	}

	c.applyEnv(os.Getenv)

	if c.Auth.Discord == "" {
		return c, errors.New("no Discord token set")
	}
	if len(c.Bot.Prefixes) == 0 {
		c.Bot.Prefixes = []string{DefaultPrefix}
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Auth.Discord, "TOKEN")
	set(&c.Auth.Sentry, "SENTRY_URL")
	set(&c.Auth.Influx.URL, "INFLUX_URL")
	set(&c.Auth.Influx.Token, "INFLUX_TOKEN")
	set(&c.Auth.Influx.Organization, "INFLUX_ORG")
	set(&c.Auth.Influx.Bucket, "INFLUX_BUCKET")
	set(&c.Info.SupportServer, "SUPPORT_SERVER")

	if v := getenv("PREFIXES"); v != "" {
		c.Bot.Prefixes = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Bot.Prefixes = append(c.Bot.Prefixes, p)
			}
		}
	}

	if v := getenv("OWNER"); v != "" {
		sf, err := discord.ParseSnowflake(v)
		if err == nil {
			c.Bot.Owner = discord.UserID(sf)
		}
	}
}
