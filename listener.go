package router

import (
	"errors"
	"strings"
)

// ErrMissingEventName is returned when registering a listener without an
// event name.
var ErrMissingEventName = errors.New("router: missing event name")

// Handler receives semantic events.
type Handler func(Event)

// EventStore is an optional sink that receives a copy of every event fired
// by the router, after the matching listeners ran.
type EventStore interface {
	EmitEvent(event Event)
}

type listener struct {
	id     uint32
	target Node
	fn     Handler
}

// registry maps lower-cased event names to listeners in registration order.
type registry struct {
	byName map[string][]listener
	nextID uint32
}

func (reg *registry) add(name string, target Node, fn Handler) uint32 {
	if reg.byName == nil {
		reg.byName = make(map[string][]listener)
	}
	reg.nextID++
	reg.byName[name] = append(reg.byName[name], listener{id: reg.nextID, target: target, fn: fn})
	return reg.nextID
}

func (reg *registry) remove(name string, id uint32) {
	s := reg.byName[name]
	for i := range s {
		if s[i].id == id {
			// Copy instead of shifting in place so a Fire iterating over the
			// old slice is unaffected.
			out := make([]listener, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			if len(out) == 0 {
				delete(reg.byName, name)
			} else {
				reg.byName[name] = out
			}
			return
		}
	}
}

// Handle allows removing a registered listener.
type Handle struct {
	id   uint32
	name string
	reg  *registry
}

// Remove unregisters the listener so it no longer fires. Removing twice,
// or removing a zero Handle, is a no-op.
func (h Handle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.name, h.id)
}

// On registers fn for events named name delivered at target. Names are
// case-insensitive. A nil target registers for global events such as
// window.size and window.close.
func (r *Router) On(name string, target Node, fn Handler) (Handle, error) {
	if name == "" {
		return Handle{}, ErrMissingEventName
	}
	name = strings.ToLower(name)
	id := r.listeners.add(name, target, fn)
	return Handle{id: id, name: name, reg: &r.listeners}, nil
}

// OnGlobal registers fn for events named name delivered at the global
// (nil) target.
func (r *Router) OnGlobal(name string, fn Handler) (Handle, error) {
	return r.On(name, nil, fn)
}

// Fire delivers ev to every listener registered for ev.Type at exactly
// target, in registration order. ev.Type is matched as is, so it must
// already be lower case to reach listeners. Custom event types may be
// fired too. An event without a type is logged and dropped.
func (r *Router) Fire(target Node, ev Event) {
	if ev.Type == "" {
		r.log.Warn("event has no type", "target", nodeID(target))
		return
	}
	r.log.Debug("fire", "type", ev.Type, "target", nodeID(target))

	for _, l := range r.listeners.byName[ev.Type] {
		if l.target == target {
			l.fn(ev)
		}
	}
	if r.store != nil {
		r.store.EmitEvent(ev)
	}
}

// SetEventStore sets the optional sink that mirrors fired events.
func (r *Router) SetEventStore(store EventStore) {
	r.store = store
}
