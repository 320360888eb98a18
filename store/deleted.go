package store

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
)

// ChannelSnapshot is enough of a deleted channel to recreate it.
type ChannelSnapshot struct {
	ID         discord.ChannelID
	Name       string
	Type       discord.ChannelType
	Topic      string
	ParentID   discord.ChannelID
	Position   int
	NSFW       bool
	Overwrites []discord.Overwrite

	DeletedAt time.Time
}

// NewChannelSnapshot snapshots ch.
func NewChannelSnapshot(ch discord.Channel) ChannelSnapshot {
	ow := make([]discord.Overwrite, len(ch.Overwrites))
	copy(ow, ch.Overwrites)

	return ChannelSnapshot{
		ID:         ch.ID,
		Name:       ch.Name,
		Type:       ch.Type,
		Topic:      ch.Topic,
		ParentID:   ch.ParentID,
		Position:   ch.Position,
		NSFW:       ch.NSFW,
		Overwrites: ow,
		DeletedAt:  time.Now().UTC(),
	}
}

// RoleSnapshot is enough of a deleted role to recreate it.
type RoleSnapshot struct {
	ID          discord.RoleID
	Name        string
	Color       discord.Color
	Hoist       bool
	Position    int
	Permissions discord.Permissions
	Mentionable bool

	DeletedAt time.Time
}

// NewRoleSnapshot snapshots r.
func NewRoleSnapshot(r discord.Role) RoleSnapshot {
	return RoleSnapshot{
		ID:          r.ID,
		Name:        r.Name,
		Color:       r.Color,
		Hoist:       r.Hoist,
		Position:    r.Position,
		Permissions: r.Permissions,
		Mentionable: r.Mentionable,
		DeletedAt:   time.Now().UTC(),
	}
}
