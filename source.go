package statecast

import "slices"

// Source originates broadcasts, feeding one or more relays. It is created
// bound to an initial relay and can accumulate further relays when those
// relays rebind to it via Relay.SetSource.
//
// Broadcast is intended to be driven by the component that owns the source
// (typically a type that wraps or embeds it and exposes domain-specific
// methods); nothing enforces that, but treating Broadcast as the owner's
// private trigger keeps a single producer per state type.
type Source[S any] struct {
	relays []*Relay[S]
	closed bool
}

// NewSource creates a source and immediately binds it to relay. The relay
// must not be nil; a nil relay yields a source with nothing to feed.
func NewSource[S any](relay *Relay[S]) *Source[S] {
	s := &Source[S]{}
	if relay != nil {
		relay.SetSource(s)
	}
	return s
}

// Relays returns the relays this source currently feeds, in attachment
// order. The returned slice is a copy.
func (s *Source[S]) Relays() []*Relay[S] {
	return slices.Clone(s.relays)
}

// Broadcast delivers value to every attached relay's subscribers, in
// attachment order, synchronously on the caller's goroutine. It returns
// after the last subscriber's hook has run. Broadcasting with no attached
// relays is a no-op, as is broadcasting on a closed source.
//
// The value is copied by assignment on each delivery and never mutated by
// the core; S should be a plain value type that carries no shared mutable
// references. Panics from subscriber hooks are not recovered: they unwind
// to the caller, leaving the deliveries that already completed in effect and
// skipping the rest.
func (s *Source[S]) Broadcast(value S) {
	if s.closed {
		return
	}
	for _, r := range s.relays {
		r.fanOut(value)
	}
}

// Close detaches the source from every relay it feeds: each relay's Source
// accessor reports nil afterwards, while the relays and their subscribers
// survive unchanged. Close is idempotent.
func (s *Source[S]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, r := range s.relays {
		r.source = nil
	}
	s.relays = nil
}

// addRelay appends a relay; called only from Relay.SetSource.
func (s *Source[S]) addRelay(r *Relay[S]) {
	s.relays = append(s.relays, r)
}

// removeRelay erases a relay, preserving the order of the rest; called from
// Relay.SetSource (rebind) and Relay.Close.
func (s *Source[S]) removeRelay(r *Relay[S]) {
	if i := slices.Index(s.relays, r); i >= 0 {
		s.relays = slices.Delete(s.relays, i, i+1)
	}
}
