package bot

import (
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/uuid"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditEntries(t *testing.T) {
	ts := time.Date(2022, 2, 6, 12, 0, 0, 0, time.UTC)
	entryID := discord.AuditLogEntryID(discord.NewSnowflake(ts))

	al := &discord.AuditLog{
		Webhooks: []discord.Webhook{
			{ID: 899, Name: "other"},
			{ID: 900, Name: "spam"},
		},
		Entries: []discord.AuditLogEntry{
			{ID: entryID, UserID: 200, TargetID: 900, ActionType: discord.WebhookCreate},
		},
	}

	entries := auditEntries(al)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, discord.UserID(200), e.ActorID)
	assert.Equal(t, discord.Snowflake(900), e.TargetID)
	assert.Equal(t, "spam", e.TargetName)
	assert.True(t, ts.Equal(e.Time), "expected %v, got %v", ts, e.Time)

	assert.Nil(t, auditEntries(nil))
}

func TestReportEmbed(t *testing.T) {
	r := antinuke.Report{
		IncidentID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Severity:   antinuke.SeverityWarning,
		Protection: store.BotAdd,
		ActorID:    200,
		TargetName: "nukebot",
		Verb:       "adding bot",
		Results: []antinuke.ActionResult{
			{Action: antinuke.ActionKickBot},
			{Action: antinuke.ActionBan},
		},
		Time: time.Now().Add(-2 * time.Second),
	}

	e := ReportEmbed(r, "raider#1234")
	assert.Equal(t, discord.Color(bcr.ColourOrange), e.Color)
	assert.Equal(t, r.Title(), e.Title)
	assert.Contains(t, e.Description, "raider#1234 (200)")
	assert.Contains(t, e.Description, "The bot has been kicked.")
	assert.Equal(t, "Incident ID: 6ba7b810-9dad-11d1-80b4-00c04fd430c8", e.Footer.Text)
	assert.Equal(t, "Anti Bot Add", e.Fields[0].Value)
	require.Len(t, e.Fields, 3)
	assert.Equal(t, "Action time", e.Fields[2].Name)

	r.Severity = antinuke.SeverityAlert
	assert.Equal(t, discord.Color(bcr.ColourRed), ReportEmbed(r, "").Color)
}
