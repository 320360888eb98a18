package antinuke

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/uuid"
	"github.com/starshine-sys/warden/store"
)

// Severity is how a report is presented.
type Severity uint8

const (
	// SeverityAlert means the actor was banned.
	SeverityAlert Severity = iota
	// SeverityWarning means the ban failed and someone needs to step in.
	SeverityWarning
)

// Report is a summary of an incident, sent to the guild's log channel.
type Report struct {
	IncidentID uuid.UUID
	Severity   Severity

	GuildID    discord.GuildID
	Protection store.Protection

	ActorID    discord.UserID
	TargetID   discord.Snowflake
	TargetName string

	// Verb is the rule's verb, e.g. "creating role".
	Verb    string
	Results []ActionResult
	Time    time.Time
}

// NewReport builds a report for an outcome that reached ActionIssued or ActionFailed.
func NewReport(o *Outcome) Report {
	r := Report{
		IncidentID: o.ID,
		Severity:   SeverityAlert,
		GuildID:    o.Event.GuildID,
		Protection: o.Event.Protection,
		TargetID:   o.Event.TargetID,
		TargetName: o.Event.TargetName,
		Verb:       Policy[o.Event.Protection].Verb,
		Results:    o.Results,
		Time:       time.Now().UTC(),
	}
	if o.Stage == StageActionFailed {
		r.Severity = SeverityWarning
	}

	if a := o.Attribution; a != nil {
		r.ActorID = a.ActorID
		if !a.ActionTime.IsZero() {
			r.Time = a.ActionTime
		}
		// webhooks aren't part of the gateway event, so their identity comes from the audit log
		if o.Event.Protection == store.WebhookCreate {
			r.TargetID = a.TargetID
			r.TargetName = a.TargetName
		}
	}
	return r
}

// Title returns the report's title.
func (r Report) Title() string {
	if r.Severity == SeverityWarning {
		return "⚠️ WARNING ⚠️"
	}
	return "🚨 SECURITY ALERT 🚨"
}

// Description returns the report's body. actor is how the actor should be displayed, usually their tag.
func (r Report) Description(actor string) string {
	if actor == "" {
		actor = r.ActorID.Mention()
	}
	target := r.TargetName
	if target == "" {
		target = r.TargetID.String()
	}

	var b strings.Builder
	if r.Severity == SeverityWarning {
		fmt.Fprintf(&b, "Failed to ban user %s (%v) for %s \"%s\". Please check my permissions.", actor, r.ActorID, r.Verb, target)
	} else {
		fmt.Fprintf(&b, "User %s (%v) was banned for %s \"%s\" without permission.", actor, r.ActorID, r.Verb, target)
	}

	for _, l := range r.ActionLines() {
		b.WriteString("\n")
		b.WriteString(l)
	}
	return b.String()
}

// ActionLines returns one line for every action other than the ban.
func (r Report) ActionLines() []string {
	var lines []string
	for _, res := range r.Results {
		if res.Action == ActionBan {
			continue
		}

		if res.Err != nil {
			lines = append(lines, fmt.Sprintf("Failed to %s: %v", actionDescriptions[res.Action], res.Err))
		} else {
			lines = append(lines, actionDone[res.Action])
		}
	}
	return lines
}

var actionDescriptions = map[Action]string{
	ActionBan:           "ban the user",
	ActionDeleteRole:    "delete the created role",
	ActionKickBot:       "kick the bot",
	ActionDeleteWebhook: "delete the webhook",
}

var actionDone = map[Action]string{
	ActionBan:           "The user has been banned.",
	ActionDeleteRole:    "The created role has been deleted.",
	ActionKickBot:       "The bot has been kicked.",
	ActionDeleteWebhook: "The webhook has been deleted.",
}
