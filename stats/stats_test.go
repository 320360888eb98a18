package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNilClient(t *testing.T) {
	var c *Client

	assert.NotPanics(t, func() {
		c.RegisterEvent("GuildRoleCreateEvent")
		c.IncCommand()
		c.RegisterIncident("role_create", "action_issued")
	})
	assert.Equal(t, Totals{}, c.Totals())
	assert.Zero(t, c.Uptime())
}

func TestTotals(t *testing.T) {
	c := New(Config{}, zap.NewNop().Sugar())
	assert.Nil(t, c.Write)

	c.RegisterEvent("ChannelCreateEvent")
	c.RegisterEvent("ChannelCreateEvent")
	c.IncCommand()
	c.RegisterIncident("channel_create", "no_action")
	c.RegisterIncident("channel_create", "action_issued")
	c.RegisterIncident("webhook_create", "action_failed")

	assert.Equal(t, Totals{
		Events:    2,
		Commands:  1,
		Incidents: 2,
		Bans:      1,
		Failures:  1,
	}, c.Totals())
}
