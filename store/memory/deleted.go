package memory

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/common"
	"github.com/starshine-sys/warden/common/log"
	"github.com/starshine-sys/warden/store"
)

// items returns the guild's deleted items, creating them if needed.
// s.deletedMu must be held for writing.
func (s *Store) items(guildID discord.GuildID) *deletedItems {
	items, ok := s.deleted[guildID]
	if !ok {
		items = &deletedItems{}
		s.deleted[guildID] = items
	}
	return items
}

func (s *Store) AddDeletedChannel(guildID discord.GuildID, ch store.ChannelSnapshot) {
	s.deletedMu.Lock()
	defer s.deletedMu.Unlock()

	items := s.items(guildID)
	items.channels = common.Prepend(items.channels, ch, store.MaxDeleted)

	log.Debugf("stored deleted channel %q for guild %v (%v stored)", ch.Name, guildID, len(items.channels))
}

func (s *Store) AddDeletedRole(guildID discord.GuildID, r store.RoleSnapshot) {
	s.deletedMu.Lock()
	defer s.deletedMu.Unlock()

	items := s.items(guildID)
	items.roles = common.Prepend(items.roles, r, store.MaxDeleted)

	log.Debugf("stored deleted role %q for guild %v (%v stored)", r.Name, guildID, len(items.roles))
}

func (s *Store) Deleted(guildID discord.GuildID) (channels []store.ChannelSnapshot, roles []store.RoleSnapshot) {
	s.deletedMu.RLock()
	defer s.deletedMu.RUnlock()

	items, ok := s.deleted[guildID]
	if !ok {
		return []store.ChannelSnapshot{}, []store.RoleSnapshot{}
	}

	channels = make([]store.ChannelSnapshot, len(items.channels))
	copy(channels, items.channels)
	roles = make([]store.RoleSnapshot, len(items.roles))
	copy(roles, items.roles)
	return channels, roles
}

func (s *Store) TakeDeletedChannels(guildID discord.GuildID) []store.ChannelSnapshot {
	s.deletedMu.Lock()
	defer s.deletedMu.Unlock()

	items := s.items(guildID)
	channels := items.channels
	items.channels = nil
	return channels
}

func (s *Store) TakeDeletedRoles(guildID discord.GuildID) []store.RoleSnapshot {
	s.deletedMu.Lock()
	defer s.deletedMu.Unlock()

	items := s.items(guildID)
	roles := items.roles
	items.roles = nil
	return roles
}
