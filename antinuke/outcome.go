package antinuke

import (
	"github.com/google/uuid"
)

// Stage is a step in an event's lifecycle.
type Stage uint8

const (
	StageReceived Stage = iota
	StageAttributionPending
	StageAuthorized
	StageUnauthorized
	StageNoAction
	StageActionIssued
	StageActionFailed
)

func (s Stage) String() string {
	switch s {
	case StageReceived:
		return "received"
	case StageAttributionPending:
		return "attribution_pending"
	case StageAuthorized:
		return "authorized"
	case StageUnauthorized:
		return "unauthorized"
	case StageNoAction:
		return "no_action"
	case StageActionIssued:
		return "action_issued"
	case StageActionFailed:
		return "action_failed"
	}
	return "unknown"
}

// Reason is why an event ended in NoAction.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonDisabled
	ReasonNotBot
	ReasonUnresolved
	ReasonSelf
	ReasonExempt
	ReasonHandled
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonDisabled:
		return "protection disabled"
	case ReasonNotBot:
		return "member is not a bot"
	case ReasonUnresolved:
		return "no recent audit log entry"
	case ReasonSelf:
		return "performed by this bot"
	case ReasonExempt:
		return "actor is whitelisted"
	case ReasonHandled:
		return "audit log entry already handled"
	}
	return "unknown"
}

// ActionResult is the result of a single corrective action. Err is nil on success.
type ActionResult struct {
	Action Action
	Err    error
}

// Outcome is the result of handling one event.
type Outcome struct {
	ID    uuid.UUID
	Event Event

	// Stage is the final stage; Trace is every stage passed through, in order.
	Stage  Stage
	Trace  []Stage
	Reason Reason

	Attribution *Attribution
	Results     []ActionResult
}

func newOutcome(ev Event) *Outcome {
	return &Outcome{
		ID:    uuid.New(),
		Event: ev,
		Stage: StageReceived,
		Trace: []Stage{StageReceived},
	}
}

func (o *Outcome) advance(s Stage) {
	o.Stage = s
	o.Trace = append(o.Trace, s)
}

// noAction ends the outcome. Every path to NoAction goes through Authorized.
func (o *Outcome) noAction(r Reason) *Outcome {
	o.Reason = r
	if o.Stage != StageAuthorized {
		o.advance(StageAuthorized)
	}
	o.advance(StageNoAction)
	return o
}

// Result returns the result of the given action, if it ran.
func (o *Outcome) Result(a Action) (ActionResult, bool) {
	for _, r := range o.Results {
		if r.Action == a {
			return r, true
		}
	}
	return ActionResult{}, false
}

// Failed returns every action that failed.
func (o *Outcome) Failed() []ActionResult {
	var failed []ActionResult
	for _, r := range o.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
