package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProtection(t *testing.T) {
	for _, p := range Protections {
		got, ok := ParseProtection(p.String())
		assert.True(t, ok, p.String())
		assert.Equal(t, p, got)
	}

	p, ok := ParseProtection("Webhook-Create")
	assert.True(t, ok)
	assert.Equal(t, WebhookCreate, p)

	_, ok = ParseProtection("emoji_delete")
	assert.False(t, ok)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.False(t, s.AntiNuke)
	assert.Len(t, s.Protections, len(Protections))
	for _, p := range Protections {
		assert.False(t, s.Enabled(p), p.String())
	}
	assert.Empty(t, s.Exempt)
	assert.False(t, s.LogChannel.IsValid())
	assert.False(t, s.SecurityRole.IsValid())
}

func TestSettingsCopy(t *testing.T) {
	s := DefaultSettings()
	s.Exempt = append(s.Exempt, 1)

	c := s.Copy()
	c.Protections[RoleCreate] = true
	c.Exempt[0] = 2

	assert.False(t, s.Enabled(RoleCreate))
	assert.True(t, s.IsExempt(1))
	assert.False(t, s.IsExempt(2))
}
