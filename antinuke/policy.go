package antinuke

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/store"
)

// Action is a single corrective action.
type Action uint8

const (
	ActionBan Action = iota + 1
	ActionDeleteRole
	ActionKickBot
	ActionDeleteWebhook
)

func (a Action) String() string {
	switch a {
	case ActionBan:
		return "ban"
	case ActionDeleteRole:
		return "delete_role"
	case ActionKickBot:
		return "kick_bot"
	case ActionDeleteWebhook:
		return "delete_webhook"
	}
	return "unknown"
}

// Rule is how the engine reacts to one kind of change.
type Rule struct {
	// AuditAction is the audit log category used for attribution.
	AuditAction discord.AuditLogEvent
	// Actions run in order, independently of each other.
	Actions []Action

	// Violation completes "Unauthorized ..." in audit log reasons, e.g. "role creation".
	Violation string
	// Verb completes "was banned for ... <target>", e.g. "creating role".
	Verb string
}

// Policy maps every protection to its rule.
//
// Created roles are deleted again, created channels are not.
// Deleted roles and channels are only brought back through a manual restore.
var Policy = map[store.Protection]Rule{
	store.RoleCreate: {
		AuditAction: discord.RoleCreate,
		Actions:     []Action{ActionBan, ActionDeleteRole},
		Violation:   "role creation",
		Verb:        "creating role",
	},
	store.RoleDelete: {
		AuditAction: discord.RoleDelete,
		Actions:     []Action{ActionBan},
		Violation:   "role deletion",
		Verb:        "deleting role",
	},
	store.ChannelCreate: {
		AuditAction: discord.ChannelCreate,
		Actions:     []Action{ActionBan},
		Violation:   "channel creation",
		Verb:        "creating channel",
	},
	store.ChannelDelete: {
		AuditAction: discord.ChannelDelete,
		Actions:     []Action{ActionBan},
		Violation:   "channel deletion",
		Verb:        "deleting channel",
	},
	store.BotAdd: {
		AuditAction: discord.BotAdd,
		Actions:     []Action{ActionKickBot, ActionBan},
		Violation:   "bot addition",
		Verb:        "adding bot",
	},
	store.WebhookCreate: {
		AuditAction: discord.WebhookCreate,
		Actions:     []Action{ActionDeleteWebhook, ActionBan},
		Violation:   "webhook creation",
		Verb:        "creating webhook",
	},
}

// Reason returns the audit log reason used for this rule's actions.
func (r Rule) Reason() string {
	return "Security Violation: Unauthorized " + r.Violation
}
