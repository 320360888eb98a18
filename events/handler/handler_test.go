package handler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/warden/antinuke"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []*antinuke.Event
	errs   []error
	panics []interface{}
}

func newTestHandler() (*Handler, *recorder) {
	rec := &recorder{}

	h := New()
	h.Synchronous = true
	h.HandleEvent = func(_ reflect.Value, ev *antinuke.Event) { rec.events = append(rec.events, ev) }
	h.HandleError = func(_ reflect.Value, err error) { rec.errs = append(rec.errs, err) }
	h.HandlePanic = func(_ reflect.Value, r interface{}) { rec.panics = append(rec.panics, r) }
	return h, rec
}

func TestDispatch(t *testing.T) {
	h, rec := newTestHandler()

	h.AddHandler(func(ev *gateway.GuildRoleCreateEvent) (*antinuke.Event, error) {
		return &antinuke.Event{
			Protection: store.RoleCreate,
			GuildID:    ev.GuildID,
			TargetID:   discord.Snowflake(ev.Role.ID),
		}, nil
	})
	h.AddHandler(func(ev *gateway.ChannelCreateEvent) (*antinuke.Event, error) {
		return nil, nil
	})

	h.Call(&gateway.GuildRoleCreateEvent{GuildID: 1, Role: discord.Role{ID: 2}})
	h.Call(&gateway.ChannelCreateEvent{})
	h.Call(&gateway.ReadyEvent{})

	require.Len(t, rec.events, 1)
	assert.Equal(t, store.RoleCreate, rec.events[0].Protection)
	assert.Equal(t, discord.Snowflake(2), rec.events[0].TargetID)
	assert.Empty(t, rec.errs)
	assert.Empty(t, rec.panics)
}

func TestErrorsAndPanics(t *testing.T) {
	h, rec := newTestHandler()
	errTest := errors.New("test error")

	h.AddHandler(func(*gateway.ChannelCreateEvent) (*antinuke.Event, error) {
		return nil, errTest
	})
	h.AddHandler(func(*gateway.ChannelDeleteEvent) (*antinuke.Event, error) {
		panic("oh no")
	})

	h.Call(&gateway.ChannelCreateEvent{})
	h.Call(&gateway.ChannelDeleteEvent{})

	assert.Equal(t, []error{errTest}, rec.errs)
	assert.Equal(t, []interface{}{"oh no"}, rec.panics)
	assert.Empty(t, rec.events)
}

func TestPanicInHandleEventIsRecovered(t *testing.T) {
	h, rec := newTestHandler()
	h.HandleEvent = func(reflect.Value, *antinuke.Event) { panic("engine panic") }

	h.AddHandler(func(*gateway.ChannelCreateEvent) (*antinuke.Event, error) {
		return &antinuke.Event{}, nil
	})

	assert.NotPanics(t, func() { h.Call(&gateway.ChannelCreateEvent{}) })
	assert.Equal(t, []interface{}{"engine panic"}, rec.panics)
}

func TestAddHandlerRejectsBadSignatures(t *testing.T) {
	h := New()

	for _, fn := range []interface{}{
		"not a function",
		func() {},
		func(*gateway.ChannelCreateEvent) {},
		func(*gateway.ChannelCreateEvent) (*antinuke.Event, string) { return nil, "" },
		func(gateway.ChannelCreateEvent) (*antinuke.Event, error) { return nil, nil },
	} {
		assert.Panics(t, func() { h.AddHandler(fn) })
	}
}
