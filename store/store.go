// Package store defines the per-guild state the anti-nuke engine works on:
// protection toggles, the exemption list, configured log channel/security role, and recently deleted channels/roles.
// None of it is persisted; a restart resets every guild to defaults.
package store

import "github.com/diamondburned/arikawa/v3/discord"

// MaxDeleted is the number of deleted channels and roles kept per guild, per category.
const MaxDeleted = 20

// Store is the full state store handed to the engine.
type Store interface {
	SettingsStore
	DeletedStore
}

// SettingsStore holds one GuildSettings per guild.
// Records are created lazily on first access; a missing record behaves exactly like a default one.
type SettingsStore interface {
	// Settings returns a copy of the guild's settings.
	Settings(guildID discord.GuildID) GuildSettings
	// Update runs fn on the guild's settings and stores the result.
	Update(guildID discord.GuildID, fn func(*GuildSettings))

	SetProtection(guildID discord.GuildID, p Protection, enabled bool)
	// SetAntiNuke sets the master flag and every protection to the same value.
	SetAntiNuke(guildID discord.GuildID, enabled bool)
	SetLogChannel(guildID discord.GuildID, id discord.ChannelID)
	SetSecurityRole(guildID discord.GuildID, id discord.RoleID)

	// AddExempt returns false if the user was already exempt.
	AddExempt(guildID discord.GuildID, userID discord.UserID) bool
	// RemoveExempt returns false if the user was not exempt.
	RemoveExempt(guildID discord.GuildID, userID discord.UserID) bool
}

// DeletedStore keeps the most recently deleted channels and roles, most recent first.
type DeletedStore interface {
	AddDeletedChannel(guildID discord.GuildID, ch ChannelSnapshot)
	AddDeletedRole(guildID discord.GuildID, r RoleSnapshot)

	// Deleted returns copies of both lists.
	Deleted(guildID discord.GuildID) (channels []ChannelSnapshot, roles []RoleSnapshot)

	// TakeDeletedChannels returns all deleted channels and clears the list.
	TakeDeletedChannels(guildID discord.GuildID) []ChannelSnapshot
	// TakeDeletedRoles returns all deleted roles and clears the list.
	TakeDeletedRoles(guildID discord.GuildID) []RoleSnapshot
}
