package antinuke

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

// ErrUnresolved is returned when no trustworthy audit log entry exists for an event.
const ErrUnresolved = errors.Sentinel("no recent audit log entry")

// Attribution is who performed an action, according to the audit log.
type Attribution struct {
	EntryID    discord.AuditLogEntryID
	ActorID    discord.UserID
	ActionTime time.Time

	TargetID   discord.Snowflake
	TargetName string
}

// Resolver attributes events to the user who caused them.
//
// Only the single most recent entry of the matching type is considered,
// and it is not correlated with the event's target.
type Resolver struct {
	Audit AuditTrail
	// Window is the maximum entry age. Defaults to FreshnessWindow.
	Window time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewResolver returns a Resolver using the default freshness window.
func NewResolver(audit AuditTrail) *Resolver {
	return &Resolver{
		Audit:  audit,
		Window: FreshnessWindow,
		Now:    time.Now,
	}
}

// Resolve returns the actor behind the most recent action of the given type.
// It returns ErrUnresolved if there is no entry or the entry is too old;
// any other error comes from the audit trail itself.
func (r *Resolver) Resolve(ctx context.Context, guildID discord.GuildID, action discord.AuditLogEvent) (*Attribution, error) {
	entries, err := r.Audit.RecentEntries(ctx, guildID, action, 1)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching audit log for guild %v", guildID)
	}
	if len(entries) == 0 {
		return nil, ErrUnresolved
	}
	e := entries[0]

	if r.now().Sub(e.Time) > r.window() {
		return nil, ErrUnresolved
	}

	return &Attribution{
		EntryID:    e.ID,
		ActorID:    e.ActorID,
		ActionTime: e.Time,
		TargetID:   e.TargetID,
		TargetName: e.TargetName,
	}, nil
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Resolver) window() time.Duration {
	if r.Window == 0 {
		return FreshnessWindow
	}
	return r.Window
}
