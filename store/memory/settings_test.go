package memory

import (
	"sync"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
)

const guildID discord.GuildID = 100

func TestSettingsLazyInitIsIdempotent(t *testing.T) {
	s := New()

	first := s.Settings(guildID)
	second := s.Settings(guildID)

	assert.Equal(t, first, second)
	assert.Equal(t, store.DefaultSettings(), first)
	assert.Equal(t, 1, s.settings.Length())
}

func TestSettingsReturnsCopy(t *testing.T) {
	s := New()

	gs := s.Settings(guildID)
	gs.Protections[store.RoleCreate] = true
	gs.Exempt = append(gs.Exempt, 5)

	assert.False(t, s.Settings(guildID).Enabled(store.RoleCreate))
	assert.False(t, s.Settings(guildID).IsExempt(5))
}

func TestSetCreatesDefaultsFirst(t *testing.T) {
	s := New()

	s.SetProtection(guildID, store.WebhookCreate, true)

	gs := s.Settings(guildID)
	assert.True(t, gs.Enabled(store.WebhookCreate))
	for _, p := range store.Protections {
		if p != store.WebhookCreate {
			assert.False(t, gs.Enabled(p), p.String())
		}
	}
}

func TestSetAntiNuke(t *testing.T) {
	s := New()

	s.SetAntiNuke(guildID, true)
	gs := s.Settings(guildID)
	assert.True(t, gs.AntiNuke)
	for _, p := range store.Protections {
		assert.True(t, gs.Enabled(p), p.String())
	}

	s.SetAntiNuke(guildID, false)
	gs = s.Settings(guildID)
	assert.False(t, gs.AntiNuke)
	for _, p := range store.Protections {
		assert.False(t, gs.Enabled(p), p.String())
	}
}

func TestLogChannelAndSecurityRole(t *testing.T) {
	s := New()

	s.SetLogChannel(guildID, 10)
	s.SetSecurityRole(guildID, 20)

	gs := s.Settings(guildID)
	assert.Equal(t, discord.ChannelID(10), gs.LogChannel)
	assert.Equal(t, discord.RoleID(20), gs.SecurityRole)

	s.SetLogChannel(guildID, 0)
	s.SetSecurityRole(guildID, 0)

	gs = s.Settings(guildID)
	assert.False(t, gs.LogChannel.IsValid())
	assert.False(t, gs.SecurityRole.IsValid())
}

func TestExemptIsIdempotent(t *testing.T) {
	s := New()

	assert.True(t, s.AddExempt(guildID, 1))
	assert.False(t, s.AddExempt(guildID, 1))
	assert.Equal(t, []discord.UserID{1}, s.Settings(guildID).Exempt)

	assert.True(t, s.RemoveExempt(guildID, 1))
	assert.False(t, s.RemoveExempt(guildID, 1))
	assert.False(t, s.RemoveExempt(guildID, 2))
	assert.Empty(t, s.Settings(guildID).Exempt)
}

func TestGuildsAreIsolated(t *testing.T) {
	s := New()

	s.SetProtection(1, store.BotAdd, true)
	s.AddExempt(1, 42)

	assert.False(t, s.Settings(2).Enabled(store.BotAdd))
	assert.False(t, s.Settings(2).IsExempt(42))
}

func TestConcurrentLazyInit(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddExempt(guildID, discord.UserID(i+1))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, s.settings.Length())
	assert.Len(t, s.Settings(guildID).Exempt, 50)
}
