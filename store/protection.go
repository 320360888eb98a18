package store

import "strings"

// Protection is one of the monitored structural-change categories.
type Protection uint8

const (
	RoleCreate Protection = iota
	RoleDelete
	ChannelCreate
	ChannelDelete
	BotAdd
	WebhookCreate
)

// Protections is every Protection, in display order.
var Protections = []Protection{
	RoleCreate,
	RoleDelete,
	ChannelCreate,
	ChannelDelete,
	BotAdd,
	WebhookCreate,
}

var protectionKeys = map[Protection]string{
	RoleCreate:    "role_create",
	RoleDelete:    "role_delete",
	ChannelCreate: "channel_create",
	ChannelDelete: "channel_delete",
	BotAdd:        "bot_add",
	WebhookCreate: "webhook_create",
}

var protectionNames = map[Protection]string{
	RoleCreate:    "Anti Role Create",
	RoleDelete:    "Anti Role Delete",
	ChannelCreate: "Anti Channel Create",
	ChannelDelete: "Anti Channel Delete",
	BotAdd:        "Anti Bot Add",
	WebhookCreate: "Anti Webhook Create",
}

// String returns the protection's stable key, such as "role_create".
func (p Protection) String() string {
	if s, ok := protectionKeys[p]; ok {
		return s
	}
	return "unknown"
}

// Name returns a human readable name.
func (p Protection) Name() string {
	if s, ok := protectionNames[p]; ok {
		return s
	}
	return "Unknown"
}

// ParseProtection parses a protection key. Dashes and case are ignored.
func ParseProtection(s string) (Protection, bool) {
	s = strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for p, k := range protectionKeys {
		if k == s {
			return p, true
		}
	}
	return 0, false
}
