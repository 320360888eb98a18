package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
)

func (bot *Bot) guildRoleCreate(ev *gateway.GuildRoleCreateEvent) (*antinuke.Event, error) {
	return &antinuke.Event{
		Protection: store.RoleCreate,
		GuildID:    ev.GuildID,
		TargetID:   discord.Snowflake(ev.Role.ID),
		TargetName: ev.Role.Name,
	}, nil
}

// snapshotRole returns a pre-handler that saves roles before the state removes them from its cache.
func (bot *Bot) snapshotRole(s *state.State) func(*gateway.GuildRoleDeleteEvent) {
	return func(ev *gateway.GuildRoleDeleteEvent) {
		r, err := s.Cabinet.Role(ev.GuildID, ev.RoleID)
		if err != nil {
			bot.log.Debugf("Role %v in %v not found in cache, can't restore it later", ev.RoleID, ev.GuildID)
			return
		}

		bot.saveRole(*r)
	}
}

func (bot *Bot) saveRole(r discord.Role) {
	_ = bot.roleSnapshots.Set(r.ID.String(), store.NewRoleSnapshot(r))
}

func (bot *Bot) guildRoleDelete(ev *gateway.GuildRoleDeleteEvent) (*antinuke.Event, error) {
	e := &antinuke.Event{
		Protection: store.RoleDelete,
		GuildID:    ev.GuildID,
		TargetID:   discord.Snowflake(ev.RoleID),
	}

	if v, err := bot.roleSnapshots.Get(ev.RoleID.String()); err == nil {
		snapshot := v.(store.RoleSnapshot)
		_ = bot.roleSnapshots.Remove(ev.RoleID.String())

		e.Role = &snapshot
		e.TargetName = snapshot.Name
	}

	return e, nil
}
