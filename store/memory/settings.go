package memory

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/common"
	"github.com/starshine-sys/warden/common/log"
	"github.com/starshine-sys/warden/store"
)

func (s *Store) Settings(guildID discord.GuildID) (gs store.GuildSettings) {
	s.settings.Upsert(guildID, s.initSettings(guildID), func(v *store.GuildSettings) {
		gs = v.Copy()
	})
	return gs
}

func (s *Store) Update(guildID discord.GuildID, fn func(*store.GuildSettings)) {
	s.settings.Upsert(guildID, s.initSettings(guildID), fn)
}

func (s *Store) initSettings(guildID discord.GuildID) func() store.GuildSettings {
	return func() store.GuildSettings {
		log.Debugf("initialized settings for guild %v", guildID)
		return store.DefaultSettings()
	}
}

func (s *Store) SetProtection(guildID discord.GuildID, p store.Protection, enabled bool) {
	s.Update(guildID, func(gs *store.GuildSettings) {
		gs.Protections[p] = enabled
	})
}

func (s *Store) SetAntiNuke(guildID discord.GuildID, enabled bool) {
	s.Update(guildID, func(gs *store.GuildSettings) {
		gs.AntiNuke = enabled
		for _, p := range store.Protections {
			gs.Protections[p] = enabled
		}
	})
}

func (s *Store) SetLogChannel(guildID discord.GuildID, id discord.ChannelID) {
	s.Update(guildID, func(gs *store.GuildSettings) {
		gs.LogChannel = id
	})
}

func (s *Store) SetSecurityRole(guildID discord.GuildID, id discord.RoleID) {
	s.Update(guildID, func(gs *store.GuildSettings) {
		gs.SecurityRole = id
	})
}

func (s *Store) AddExempt(guildID discord.GuildID, userID discord.UserID) (added bool) {
	s.Update(guildID, func(gs *store.GuildSettings) {
		if common.Contains(gs.Exempt, userID) {
			return
		}
		gs.Exempt = append(gs.Exempt, userID)
		added = true
	})
	return added
}

func (s *Store) RemoveExempt(guildID discord.GuildID, userID discord.UserID) (removed bool) {
	s.Update(guildID, func(gs *store.GuildSettings) {
		if !common.Contains(gs.Exempt, userID) {
			return
		}
		gs.Exempt = common.Remove(gs.Exempt, userID)
		removed = true
	})
	return removed
}
