package bot

import (
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

const userCacheTTL = 30 * time.Minute

func newUserCache() *ttlcache.Cache {
	c := ttlcache.NewCache()
	_ = c.SetTTL(userCacheTTL)
	return c
}

// User returns a user from the cache, or from Discord's API if the user is not cached.
func (bot *Bot) User(id discord.UserID) (*discord.User, error) {
	if v, err := bot.users.Get(id.String()); err == nil {
		u := v.(discord.User)
		return &u, nil
	}

	s, _ := bot.Router.StateFromGuildID(0)
	u, err := s.User(id)
	if err != nil {
		return nil, err
	}

	bot.SetUser(*u)
	return u, nil
}

// SetUser caches a user.
func (bot *Bot) SetUser(u discord.User) {
	_ = bot.users.Set(u.ID.String(), u)
}

// userTag returns the user's tag, or an empty string if the user can't be fetched.
func (bot *Bot) userTag(id discord.UserID) string {
	u, err := bot.User(id)
	if err != nil {
		bot.Log.Debugf("Error fetching user %v: %v", id, err)
		return ""
	}
	return u.Tag()
}

func (bot *Bot) handleEventForCache(iface interface{}) {
	switch ev := iface.(type) {
	case *gateway.MessageCreateEvent:
		bot.SetUser(ev.Author)
	case *gateway.GuildMemberAddEvent:
		bot.SetUser(ev.User)
	case *gateway.GuildMemberUpdateEvent:
		bot.SetUser(ev.User)
	}
}
