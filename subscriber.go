package statecast

// Hook receives each new state value as it is delivered. OnNewState is
// invoked with the incoming value while the subscriber's cached state still
// holds the previous one, so an implementation holding a reference to its
// subscriber can read the old value via State and compute deltas. After
// OnNewState returns, the cache is overwritten with the incoming value.
type Hook[S any] interface {
	OnNewState(S)
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc[S any] func(S)

// OnNewState calls f(value).
func (f HookFunc[S]) OnNewState(value S) {
	f(value)
}

// Subscriber receives broadcasts from exactly one relay and caches the most
// recently delivered value. It is bound to its relay at construction and
// stays bound until either side is closed; a subscriber whose relay has been
// closed is orphaned and keeps its last value forever.
type Subscriber[S any] struct {
	relay  *Relay[S]
	state  S
	hook   Hook[S]
	closed bool
}

// SubscriberOption configures a Subscriber at construction.
type SubscriberOption[S any] func(*Subscriber[S])

// WithHook sets the hook invoked on every delivery. Default is no hook: the
// subscriber silently caches each value.
func WithHook[S any](h Hook[S]) SubscriberOption[S] {
	return func(sub *Subscriber[S]) {
		sub.hook = h
	}
}

// WithHookFunc sets a plain function as the delivery hook.
func WithHookFunc[S any](fn func(S)) SubscriberOption[S] {
	return func(sub *Subscriber[S]) {
		sub.hook = HookFunc[S](fn)
	}
}

// WithInitialState sets the value State reports before the first delivery.
// Without it, State returns the zero value of S until something is
// broadcast.
func WithInitialState[S any](initial S) SubscriberOption[S] {
	return func(sub *Subscriber[S]) {
		sub.state = initial
	}
}

// NewSubscriber creates a subscriber bound to relay and registers it at the
// end of the relay's fan-out order. A nil or closed relay yields an orphaned
// subscriber that never receives deliveries.
//
// Example:
//
//	var sub *statecast.Subscriber[Volume]
//	sub = statecast.NewSubscriber(relay, statecast.WithHookFunc(func(next Volume) {
//	    delta := next.Level - sub.State().Level
//	    fader.Move(delta)
//	}))
func NewSubscriber[S any](relay *Relay[S], opts ...SubscriberOption[S]) *Subscriber[S] {
	sub := &Subscriber[S]{}
	for _, opt := range opts {
		opt(sub)
	}
	if relay != nil && relay.register(sub) {
		sub.relay = relay
	}
	return sub
}

// Relay returns the relay this subscriber is attached to, or nil if it is
// orphaned.
func (sub *Subscriber[S]) Relay() *Relay[S] {
	return sub.relay
}

// State returns the most recently delivered value. Inside a hook invocation
// it still returns the value delivered before the one currently being
// handled.
func (sub *Subscriber[S]) State() S {
	return sub.state
}

// Close detaches the subscriber from its relay, removing it from the fan-out
// order; an already orphaned subscriber just marks itself closed. Close is
// idempotent.
func (sub *Subscriber[S]) Close() {
	if sub.closed {
		return
	}
	sub.closed = true
	if sub.relay != nil {
		sub.relay.unregister(sub)
		sub.relay = nil
	}
}

// deliver runs the hook with the incoming value, then updates the cache;
// called only from Relay.fanOut.
func (sub *Subscriber[S]) deliver(value S) {
	if sub.hook != nil {
		sub.hook.OnNewState(value)
	}
	sub.state = value
}
