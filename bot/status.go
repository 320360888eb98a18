package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
)

func (bot *Bot) statusLoop(ctx context.Context) {
	select {
	case <-time.After(5 * time.Second):
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		bot.updateStatus(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// GuildCount returns the number of guilds in all shards' caches.
func (bot *Bot) GuildCount() (n int) {
	bot.ForEach(func(s *state.State) {
		guilds, _ := s.GuildStore.Guilds()
		n += len(guilds)
	})
	return n
}

func (bot *Bot) updateStatus(ctx context.Context) {
	guildCount := bot.GuildCount()

	status := fmt.Sprintf("%vsecurity help", bot.Config.Bot.Prefixes[0])
	if guildCount != 0 {
		status += fmt.Sprintf(" | protecting %v servers", guildCount)
	}

	i := 0
	bot.ForEach(func(s *state.State) {
		str := status
		if bot.Router.ShardManager.NumShards() > 1 {
			str = fmt.Sprintf("%v | shard #%v", str, i)
		}
		i++

		err := s.Gateway().Send(ctx, &gateway.UpdatePresenceCommand{
			Status: discord.OnlineStatus,
			Activities: []discord.Activity{{
				Name: str,
				Type: discord.GameActivity,
			}},
		})
		if err != nil {
			bot.Log.Errorf("Error setting status for shard #%v: %v", i-1, err)
		}
	})
}
