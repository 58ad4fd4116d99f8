package statecast

import "slices"

// Relay is the fan-out hub between one Source and many Subscribers.
// It holds non-owning links in both directions: at most one source feeding
// it, and an ordered list of subscribers it delivers to. Fan-out order is
// subscription order.
//
// A Relay is created unlinked and non-copyable (it is always handled through
// a pointer). Subscribers attach themselves at construction via
// NewSubscriber; sources attach via NewSource or SetSource.
//
// Example:
//
//	relay := statecast.NewRelay[Volume]()
//	source := statecast.NewSource(relay)
//	sub := statecast.NewSubscriber(relay)
type Relay[S any] struct {
	subscribers []*Subscriber[S]
	source      *Source[S]
	closed      bool
}

// NewRelay creates a new relay with no source and no subscribers.
func NewRelay[S any]() *Relay[S] {
	return &Relay[S]{}
}

// Subscribers returns the currently attached subscribers in subscription
// order. The returned slice is a copy; mutating it does not affect the relay.
func (r *Relay[S]) Subscribers() []*Subscriber[S] {
	return slices.Clone(r.subscribers)
}

// Source returns the source currently feeding this relay, or nil if none.
func (r *Relay[S]) Source() *Source[S] {
	return r.source
}

// SetSource rebinds the relay to the given source, or clears the link when
// src is nil. The relay is removed from its previous source's relay list
// before it is appended to the new one, so no source ever retains a relay it
// no longer feeds. A closed source is treated as nil.
//
// Calling SetSource on a closed relay is a no-op.
func (r *Relay[S]) SetSource(src *Source[S]) {
	if r.closed {
		return
	}
	if src != nil && src.closed {
		src = nil
	}
	if r.source != nil {
		r.source.removeRelay(r)
	}
	r.source = src
	if src != nil {
		src.addRelay(r)
	}
}

// Close tears the relay out of the graph: every attached subscriber is
// orphaned (its Relay accessor reports nil, its cached state is untouched)
// and the source, if any, forgets this relay. Close is idempotent. A closed
// relay accepts no new links and delivers nothing.
func (r *Relay[S]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for _, sub := range r.subscribers {
		sub.relay = nil
	}
	r.subscribers = nil
	if r.source != nil {
		r.source.removeRelay(r)
		r.source = nil
	}
}

// register appends a subscriber; called only from NewSubscriber.
// Reports whether the link was established.
func (r *Relay[S]) register(sub *Subscriber[S]) bool {
	if r.closed {
		return false
	}
	r.subscribers = append(r.subscribers, sub)
	return true
}

// unregister removes a subscriber, preserving the order of the rest; called
// only from Subscriber.Close.
func (r *Relay[S]) unregister(sub *Subscriber[S]) {
	if i := slices.Index(r.subscribers, sub); i >= 0 {
		r.subscribers = slices.Delete(r.subscribers, i, i+1)
	}
}

// fanOut delivers value to every attached subscriber in subscription order;
// called only from Source.Broadcast. Delivery is synchronous: each
// subscriber's hook runs to completion before the next subscriber is
// reached. A panicking hook aborts the remaining deliveries and unwinds to
// the Broadcast caller.
func (r *Relay[S]) fanOut(value S) {
	for _, sub := range r.subscribers {
		sub.deliver(value)
	}
}
