package antinuke

import (
	"context"
	"sync"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/common"
	"github.com/starshine-sys/warden/stats"
	"github.com/starshine-sys/warden/store"
	"go.uber.org/zap"
)

// Engine reacts to structural changes according to Policy.
type Engine struct {
	Store     store.Store
	Resolver  *Resolver
	Moderator Moderator
	Notifier  Notifier
	Stats     *stats.Client
	Log       *zap.SugaredLogger

	selfMu sync.RWMutex
	self   discord.UserID

	// handled is the last audit log entry acted on, per guild and audit category.
	// Webhook updates and deletions (including our own) resolve to the same creation entry.
	handled *common.Map[handledKey, discord.AuditLogEntryID]
}

type handledKey struct {
	guildID discord.GuildID
	action  discord.AuditLogEvent
}

// New creates a new Engine. n and s may be nil.
func New(st store.Store, audit AuditTrail, mod Moderator, n Notifier, s *stats.Client, log *zap.SugaredLogger) *Engine {
	return &Engine{
		Store:     st,
		Resolver:  NewResolver(audit),
		Moderator: mod,
		Notifier:  n,
		Stats:     s,
		Log:       log,
		handled:   common.NewMap[handledKey, discord.AuditLogEntryID](),
	}
}

// SetSelf sets the bot's own user ID. Actions attributed to it are never punished.
func (eng *Engine) SetSelf(id discord.UserID) {
	eng.selfMu.Lock()
	eng.self = id
	eng.selfMu.Unlock()
}

// Self returns the bot's own user ID.
func (eng *Engine) Self() discord.UserID {
	eng.selfMu.RLock()
	defer eng.selfMu.RUnlock()
	return eng.self
}

// Handle processes a single event and returns what happened.
// Errors are never returned: they're logged, and corrective action failures are listed in the outcome.
func (eng *Engine) Handle(ctx context.Context, ev Event) *Outcome {
	out := newOutcome(ev)
	log := eng.Log.With("incident", out.ID, "guild", ev.GuildID, "protection", ev.Protection)

	defer func() {
		eng.Stats.RegisterIncident(ev.Protection.String(), out.Stage.String())
	}()

	eng.record(ev)

	rule, ok := Policy[ev.Protection]
	if !ok {
		log.Errorf("No policy for protection %d", ev.Protection)
		return out.noAction(ReasonDisabled)
	}

	if ev.Protection == store.BotAdd && !ev.IsBot {
		return out.noAction(ReasonNotBot)
	}

	settings := eng.Store.Settings(ev.GuildID)
	if !settings.Enabled(ev.Protection) {
		return out.noAction(ReasonDisabled)
	}

	out.advance(StageAttributionPending)
	attr, err := eng.Resolver.Resolve(ctx, ev.GuildID, rule.AuditAction)
	if err != nil {
		if !errors.Is(err, ErrUnresolved) {
			log.Warnf("Error resolving actor: %v", err)
		} else {
			log.Debugf("Couldn't attribute %v event for target %v", ev.Protection, ev.TargetID)
		}
		return out.noAction(ReasonUnresolved)
	}
	out.Attribution = attr

	switch {
	case attr.ActorID == eng.Self():
		return out.noAction(ReasonSelf)
	case settings.IsExempt(attr.ActorID):
		log.Debugf("Actor %v is whitelisted, ignoring", attr.ActorID)
		return out.noAction(ReasonExempt)
	case !eng.claim(ev.GuildID, rule.AuditAction, attr.EntryID):
		log.Debugf("Audit log entry %v was already handled", attr.EntryID)
		return out.noAction(ReasonHandled)
	}

	out.advance(StageUnauthorized)
	log.Infof("Unauthorized %v by %v, target %v (%q)", rule.Violation, attr.ActorID, ev.TargetID, ev.TargetName)

	for _, a := range rule.Actions {
		err := eng.run(ctx, a, rule, ev, attr)
		if err != nil {
			log.Errorf("Error running %v against %v: %v", a, attr.ActorID, err)
		}
		out.Results = append(out.Results, ActionResult{Action: a, Err: err})
	}

	if ban, ok := out.Result(ActionBan); ok && ban.Err != nil {
		out.advance(StageActionFailed)
	} else {
		out.advance(StageActionIssued)
	}

	eng.report(ctx, settings, out, log)
	return out
}

// claim marks an audit log entry as handled, returning false if it already was.
// Entries without an ID are always claimed.
func (eng *Engine) claim(guildID discord.GuildID, action discord.AuditLogEvent, id discord.AuditLogEntryID) (claimed bool) {
	if !id.IsValid() {
		return true
	}

	eng.handled.Upsert(handledKey{guildID, action}, func() discord.AuditLogEntryID { return 0 }, func(last *discord.AuditLogEntryID) {
		if *last != id {
			*last = id
			claimed = true
		}
	})
	return claimed
}

// record buffers deleted channels and roles. This happens for every deletion,
// whether or not the deletion protections are enabled.
func (eng *Engine) record(ev Event) {
	switch {
	case ev.Protection == store.ChannelDelete && ev.Channel != nil:
		eng.Store.AddDeletedChannel(ev.GuildID, *ev.Channel)
	case ev.Protection == store.RoleDelete && ev.Role != nil:
		eng.Store.AddDeletedRole(ev.GuildID, *ev.Role)
	}
}

func (eng *Engine) run(ctx context.Context, a Action, rule Rule, ev Event, attr *Attribution) error {
	reason := rule.Reason()

	switch a {
	case ActionBan:
		return eng.Moderator.Ban(ctx, ev.GuildID, attr.ActorID, reason)
	case ActionDeleteRole:
		return eng.Moderator.DeleteRole(ctx, ev.GuildID, discord.RoleID(ev.TargetID), reason)
	case ActionKickBot:
		return eng.Moderator.Kick(ctx, ev.GuildID, discord.UserID(ev.TargetID), reason)
	case ActionDeleteWebhook:
		if !attr.TargetID.IsValid() {
			return errors.New("audit log entry has no webhook target")
		}
		return eng.Moderator.DeleteWebhook(ctx, ev.GuildID, discord.WebhookID(attr.TargetID), reason)
	}

	return errors.Errorf("unknown action %d", a)
}

func (eng *Engine) report(ctx context.Context, settings store.GuildSettings, out *Outcome, log *zap.SugaredLogger) {
	if eng.Notifier == nil || !settings.LogChannel.IsValid() {
		return
	}

	err := eng.Notifier.Notify(ctx, settings.LogChannel, NewReport(out))
	if err != nil {
		log.Errorf("Error sending report to %v: %v", settings.LogChannel, err)
	}
}
