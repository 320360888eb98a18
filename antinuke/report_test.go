package antinuke

import (
	"testing"

	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
)

func TestReportDescription(t *testing.T) {
	r := Report{
		Severity:   SeverityAlert,
		Protection: store.ChannelCreate,
		ActorID:    testActor,
		TargetID:   600,
		TargetName: "raid-channel",
		Verb:       Policy[store.ChannelCreate].Verb,
		Results:    []ActionResult{{Action: ActionBan}},
	}

	assert.Equal(t, "🚨 SECURITY ALERT 🚨", r.Title())
	assert.Equal(t, `User <@200> (200) was banned for creating channel "raid-channel" without permission.`, r.Description(""))
	assert.Empty(t, r.ActionLines())

	r.TargetName = ""
	assert.Contains(t, r.Description("x#0001"), `creating channel "600"`)
}

func TestReportActionLines(t *testing.T) {
	r := Report{
		Results: []ActionResult{
			{Action: ActionDeleteWebhook, Err: errForbidden},
			{Action: ActionBan},
		},
	}

	assert.Equal(t, []string{"Failed to delete the webhook: 403 Forbidden: Missing Permissions"}, r.ActionLines())
}

func TestNewReportUsesAttribution(t *testing.T) {
	o := newOutcome(Event{Protection: store.WebhookCreate, GuildID: testGuild})
	o.Attribution = &Attribution{ActorID: testActor, ActionTime: now, TargetID: 900, TargetName: "spam"}
	o.Results = []ActionResult{{Action: ActionDeleteWebhook}, {Action: ActionBan, Err: errForbidden}}
	o.advance(StageActionFailed)

	r := NewReport(o)
	assert.Equal(t, SeverityWarning, r.Severity)
	assert.Equal(t, o.ID, r.IncidentID)
	assert.Equal(t, now, r.Time)
	assert.Equal(t, "spam", r.TargetName)
	assert.Equal(t, "creating webhook", r.Verb)
}
