package bot

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
)

var (
	_ antinuke.AuditTrail = (*Platform)(nil)
	_ antinuke.Moderator  = (*Platform)(nil)
)

// Platform performs audit log queries and moderation actions through Discord's API.
type Platform struct {
	// State returns the state for the shard handling the given guild.
	State func(discord.GuildID) *state.State
}

func (p *Platform) state(ctx context.Context, guildID discord.GuildID) *state.State {
	return p.State(guildID).WithContext(ctx)
}

// RecentEntries implements antinuke.AuditTrail.
func (p *Platform) RecentEntries(ctx context.Context, guildID discord.GuildID, action discord.AuditLogEvent, limit uint) ([]antinuke.AuditEntry, error) {
	al, err := p.state(ctx, guildID).AuditLog(guildID, api.AuditLogData{
		ActionType: action,
		Limit:      limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "get audit log")
	}

	return auditEntries(al), nil
}

// auditEntries converts an audit log to entries, most recent first.
// Webhook targets are named from the log's webhook list.
func auditEntries(al *discord.AuditLog) []antinuke.AuditEntry {
	if al == nil {
		return nil
	}

	entries := make([]antinuke.AuditEntry, 0, len(al.Entries))
	for _, e := range al.Entries {
		entry := antinuke.AuditEntry{
			ID:       e.ID,
			ActorID:  e.UserID,
			TargetID: e.TargetID,
			Time:     e.ID.Time(),
		}

		for _, wh := range al.Webhooks {
			if discord.Snowflake(wh.ID) == e.TargetID {
				entry.TargetName = wh.Name
				break
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

func (p *Platform) Ban(ctx context.Context, guildID discord.GuildID, userID discord.UserID, reason string) error {
	err := p.state(ctx, guildID).Ban(guildID, userID, api.BanData{
		AuditLogReason: api.AuditLogReason(reason),
	})
	return errors.Wrapf(err, "ban user %v", userID)
}

func (p *Platform) Kick(ctx context.Context, guildID discord.GuildID, userID discord.UserID, reason string) error {
	err := p.state(ctx, guildID).Kick(guildID, userID, api.AuditLogReason(reason))
	return errors.Wrapf(err, "kick user %v", userID)
}

func (p *Platform) DeleteRole(ctx context.Context, guildID discord.GuildID, roleID discord.RoleID, reason string) error {
	err := p.state(ctx, guildID).DeleteRole(guildID, roleID, api.AuditLogReason(reason))
	return errors.Wrapf(err, "delete role %v", roleID)
}

func (p *Platform) DeleteWebhook(ctx context.Context, guildID discord.GuildID, webhookID discord.WebhookID, reason string) error {
	err := p.state(ctx, guildID).DeleteWebhook(webhookID, api.AuditLogReason(reason))
	return errors.Wrapf(err, "delete webhook %v", webhookID)
}

func (p *Platform) CreateRole(ctx context.Context, guildID discord.GuildID, r store.RoleSnapshot, reason string) error {
	_, err := p.state(ctx, guildID).CreateRole(guildID, api.CreateRoleData{
		Name:        r.Name,
		Permissions: r.Permissions,
		Color:       r.Color,
		Hoist:       r.Hoist,
		Mentionable: r.Mentionable,
		AddRoleData: api.AddRoleData{AuditLogReason: api.AuditLogReason(reason)},
	})
	return errors.Wrapf(err, "create role %q", r.Name)
}

func (p *Platform) CreateChannel(ctx context.Context, guildID discord.GuildID, ch store.ChannelSnapshot, reason string) error {
	s := p.state(ctx, guildID)

	data := api.CreateChannelData{
		Name:           ch.Name,
		Type:           ch.Type,
		Topic:          ch.Topic,
		Position:       option.NewInt(ch.Position),
		Overwrites:     ch.Overwrites,
		NSFW:           ch.NSFW,
		AuditLogReason: api.AuditLogReason(reason),
	}

	// only restore into the category if it still exists
	if ch.ParentID.IsValid() {
		if parent, err := s.Channel(ch.ParentID); err == nil && parent.GuildID == guildID {
			data.CategoryID = ch.ParentID
		}
	}

	_, err := s.CreateChannel(guildID, data)
	return errors.Wrapf(err, "create channel %q", ch.Name)
}
