// Package statecast provides a minimal intra-process state-broadcast
// mechanism: a single producer pushes a value to one or more relays, each of
// which fans it out, unchanged and in order, to its subscribers. The library
// implements modern Go patterns including generics for type safety and
// functional options for configuration.
//
// The hard part of the package is not the broadcast loop but the link
// lifetime protocol: relays, sources, and subscribers hold mutual non-owning
// references, and closing any one of them synchronously unlinks every
// surviving partner so that no stale link ever produces or receives a
// delivery.
//
// # Roles
//
//   - Source[S]: originates broadcasts, feeding one or more relays.
//   - Relay[S]: the fan-out hub linking at most one source to many
//     subscribers.
//   - Subscriber[S]: attached to exactly one relay; caches the latest value
//     and optionally runs a hook on every delivery.
//
// # Usage
//
// Wire a graph and broadcast:
//
//	type Volume struct {
//	    Level float64
//	}
//
//	relay := statecast.NewRelay[Volume]()
//	source := statecast.NewSource(relay)
//
//	sub := statecast.NewSubscriber(relay, statecast.WithHookFunc(func(next Volume) {
//	    fmt.Printf("volume now %.2f\n", next.Level)
//	}))
//
//	source.Broadcast(Volume{Level: 0.8})
//	fmt.Println(sub.State().Level) // 0.8
//
// Delivery is fully synchronous: Broadcast returns only after every attached
// relay has delivered to every subscriber, in attachment and subscription
// order respectively. There is no queueing and no deferred delivery.
//
// # Hooks and delta computation
//
// A subscriber's hook is invoked with the incoming value while State still
// reports the previous one, which lets a hook compute what changed:
//
//	var sub *statecast.Subscriber[Volume]
//	sub = statecast.NewSubscriber(relay, statecast.WithHookFunc(func(next Volume) {
//	    delta := next.Level - sub.State().Level
//	    applyRamp(delta)
//	}))
//
// After the hook returns, the cache holds the new value.
//
// # Link lifetime
//
// Every cross-link is torn down by the Close method of either side:
//
//   - Relay.Close orphans its subscribers (their Relay accessor reports nil,
//     their cached state survives) and removes itself from its source.
//   - Source.Close clears the source link of every relay it feeds; the
//     relays keep their subscribers and can be rebound later.
//   - Subscriber.Close removes the subscriber from its relay's fan-out
//     order; subsequent broadcasts no longer reach it.
//
// Close is always idempotent, and a closed object is inert: it accepts no
// new links and neither sends nor receives deliveries. Orphaned links are
// terminal until an explicit rebind (Relay.SetSource); they never relink on
// their own.
//
// Relay.SetSource detaches the relay from its previous source before
// attaching the new one, so Source.Relays never lists a relay that has moved
// on. (The lineage of this design kept the stale entry; this package fixes
// that.)
//
// # State values
//
// S is a plain value type: it is copied by assignment on every delivery,
// never mutated by the package, and carries no identity. Keep shared mutable
// references (maps, slices, pointers) out of S, or the "copy" stops being
// one.
//
// # Error handling
//
// The package raises no errors. Accessors report an unlinked side with nil,
// and broadcasting through an empty graph is a silent no-op. The only
// failure mode is a panic escaping a subscriber hook during Broadcast; it is
// deliberately not recovered and unwinds to the Broadcast caller, leaving a
// partial fan-out: subscribers earlier in the order have observed the value,
// later ones have not.
//
// # Concurrency
//
// The package is not thread-safe and takes no locks. All graph mutation
// (construction, Close, SetSource) and all Broadcast calls must run on one
// goroutine, or be serialized externally. Mutating the graph from inside a
// hook during an in-progress broadcast is likewise undefined with respect to
// iteration order; don't close a subscriber from within its own hook. The
// pkg/audio package shows one way to confine device-driven updates to a
// single control goroutine.
package statecast
