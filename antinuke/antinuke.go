// Package antinuke decides whether a structural change to a guild was authorized,
// and if it wasn't, bans whoever made it and reverts what it can.
//
// The engine never talks to Discord directly: audit log lookups, moderation actions and
// report delivery all go through the AuditTrail, Moderator and Notifier interfaces.
package antinuke

import (
	"context"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/store"
)

// FreshnessWindow is the maximum age of an audit log entry for it to be trusted.
const FreshnessWindow = 5000 * time.Millisecond

// AuditEntry is a single audit log entry, as far as attribution cares.
type AuditEntry struct {
	ID       discord.AuditLogEntryID
	ActorID  discord.UserID
	TargetID discord.Snowflake
	// TargetName is set for targets that aren't otherwise part of the event, such as webhooks.
	TargetName string
	Time       time.Time
}

// AuditTrail queries a guild's audit log.
type AuditTrail interface {
	// RecentEntries returns up to limit entries of the given type, most recent first.
	RecentEntries(ctx context.Context, guildID discord.GuildID, action discord.AuditLogEvent, limit uint) ([]AuditEntry, error)
}

// Moderator performs corrective actions and restorations.
// Every method may fail for permission or rate limit reasons.
type Moderator interface {
	Ban(ctx context.Context, guildID discord.GuildID, userID discord.UserID, reason string) error
	Kick(ctx context.Context, guildID discord.GuildID, userID discord.UserID, reason string) error
	DeleteRole(ctx context.Context, guildID discord.GuildID, roleID discord.RoleID, reason string) error
	DeleteWebhook(ctx context.Context, guildID discord.GuildID, webhookID discord.WebhookID, reason string) error

	CreateRole(ctx context.Context, guildID discord.GuildID, r store.RoleSnapshot, reason string) error
	CreateChannel(ctx context.Context, guildID discord.GuildID, ch store.ChannelSnapshot, reason string) error
}

// Notifier delivers reports to a guild's security log channel.
type Notifier interface {
	Notify(ctx context.Context, channelID discord.ChannelID, r Report) error
}

// Event is a structural change to a guild.
type Event struct {
	Protection store.Protection
	GuildID    discord.GuildID

	// TargetID is the created or deleted role or channel, or the member that joined.
	TargetID   discord.Snowflake
	TargetName string

	// IsBot is true if the member that joined is a bot account.
	IsBot bool

	// Channel and Role are set for deletions, and are recorded for restoration.
	Channel *store.ChannelSnapshot
	Role    *store.RoleSnapshot
}
