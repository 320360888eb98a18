// Package handler dispatches gateway events to functions that translate them into anti-nuke events.
package handler

import (
	"reflect"
	"sync"

	"emperror.dev/errors"
	"github.com/starshine-sys/warden/antinuke"
)

// Handler calls translator functions for gateway events.
// Translators have the signature func(*gateway.SomeEvent) (*antinuke.Event, error).
type Handler struct {
	mu       sync.RWMutex
	handlers []handler

	// Synchronous makes Call block until every matching translator has returned.
	Synchronous bool

	// HandleEvent is called with every non-nil event returned by a translator.
	HandleEvent func(reflect.Value, *antinuke.Event)
	// HandleError is called with every non-nil error returned by a translator.
	HandleError func(reflect.Value, error)
	// HandlePanic is called if a translator or HandleEvent panics.
	HandlePanic func(reflect.Value, interface{})
}

// New creates a new Handler.
func New() *Handler {
	return &Handler{}
}

// Call calls every translator for the given event.
// This should be passed as a handler to the main state handler.
func (h *Handler) Call(ev interface{}) {
	evV := reflect.ValueOf(ev)
	evT := evV.Type()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, entry := range h.handlers {
		if entry.not(evT) {
			continue
		}

		if h.Synchronous {
			h.call(entry, evV)
		} else {
			go h.call(entry, evV)
		}
	}
}

func (h *Handler) call(hn handler, ev reflect.Value) {
	defer func() {
		if r := recover(); r != nil && h.HandlePanic != nil {
			h.HandlePanic(ev, r)
		}
	}()

	resps := hn.call(ev)

	if erri := resps[1].Interface(); erri != nil {
		if err := erri.(error); err != nil && h.HandleError != nil {
			h.HandleError(ev, err)
		}
	}

	if evi := resps[0].Interface(); evi != nil {
		if e := evi.(*antinuke.Event); e != nil && h.HandleEvent != nil {
			h.HandleEvent(ev, e)
		}
	}
}

// AddHandler adds the given translator. It panics if fn has the wrong signature.
func (h *Handler) AddHandler(fn interface{}) {
	handler, err := newHandler(fn)
	if err != nil {
		panic(err)
	}

	h.mu.Lock()
	h.handlers = append(h.handlers, handler)
	h.mu.Unlock()
}

type handler struct {
	event    reflect.Type
	callback reflect.Value
}

var returnType0 = reflect.TypeOf(&antinuke.Event{})
var returnType1 = reflect.TypeOf((*error)(nil)).Elem()

func newHandler(fn interface{}) (handler, error) {
	fnV := reflect.ValueOf(fn)
	fnT := fnV.Type()

	handler := handler{
		callback: fnV,
	}

	if fnT.Kind() != reflect.Func {
		return handler, errors.New("fn is not a function")
	}

	if fnT.NumIn() != 1 {
		return handler, errors.New("number of arguments must be 1")
	}

	if fnT.NumOut() != 2 {
		return handler, errors.New("number of returns must be 2")
	}

	handler.event = fnT.In(0)

	if fnT.Out(0) != returnType0 {
		return handler, errors.New("return 0 must be an *antinuke.Event")
	}

	if fnT.Out(1) != returnType1 {
		return handler, errors.New("return 1 must be an error")
	}

	if handler.event.Kind() != reflect.Ptr {
		return handler, errors.New("argument must be a pointer")
	}

	return handler, nil
}

func (h handler) not(event reflect.Type) bool {
	return h.event != event
}

func (h handler) call(event reflect.Value) []reflect.Value {
	return h.callback.Call([]reflect.Value{event})
}
