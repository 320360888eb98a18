package store

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/common"
)

// GuildSettings is a guild's protection configuration.
type GuildSettings struct {
	// AntiNuke is the master flag flipped by the antinuke command.
	AntiNuke    bool
	Protections map[Protection]bool

	Exempt []discord.UserID

	// LogChannel receives action reports. Zero if not configured.
	LogChannel discord.ChannelID
	// SecurityRole grants access to management commands. Zero if not configured.
	SecurityRole discord.RoleID
}

// DefaultSettings returns a guild's settings before anything has been configured.
func DefaultSettings() GuildSettings {
	s := GuildSettings{
		Protections: make(map[Protection]bool, len(Protections)),
		Exempt:      []discord.UserID{},
	}
	for _, p := range Protections {
		s.Protections[p] = false
	}
	return s
}

// Enabled returns true if the given protection is enabled.
func (s GuildSettings) Enabled(p Protection) bool {
	return s.Protections[p]
}

// IsExempt returns true if the user is on the exemption list.
func (s GuildSettings) IsExempt(id discord.UserID) bool {
	return common.Contains(s.Exempt, id)
}

// Copy returns a deep copy of s.
func (s GuildSettings) Copy() GuildSettings {
	c := s

	c.Protections = make(map[Protection]bool, len(s.Protections))
	for k, v := range s.Protections {
		c.Protections[k] = v
	}

	c.Exempt = make([]discord.UserID, len(s.Exempt))
	copy(c.Exempt, s.Exempt)

	return c
}
