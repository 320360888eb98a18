package commands

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
)

func TestProtectionsEmbed(t *testing.T) {
	s := store.DefaultSettings()

	e := protectionsEmbed(s)
	assert.Equal(t, discord.Color(bcr.ColourRed), e.Color)
	assert.Contains(t, e.Description, "**Anti Role Create:** ❌ Disabled")
	assert.Equal(t, "Not set", e.Fields[2].Value)
	assert.Equal(t, "Not set", e.Fields[3].Value)

	s.AntiNuke = true
	s.Protections[store.RoleCreate] = true
	s.LogChannel = discord.ChannelID(400)
	s.Exempt = []discord.UserID{1, 2}

	e = protectionsEmbed(s)
	assert.Equal(t, discord.Color(bcr.ColourGreen), e.Color)
	assert.Contains(t, e.Description, "**Anti Role Create:** ✅ Enabled")
	assert.Contains(t, e.Description, "**Anti Role Delete:** ❌ Disabled")
	assert.Equal(t, "2", e.Fields[1].Value)
	assert.Equal(t, "<#400>", e.Fields[2].Value)
}
