package statecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statecast"
)

type testState struct {
	N int
}

func TestRelayFanOutOrder(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	source := statecast.NewSource(relay)

	var order []string
	first := statecast.NewSubscriber(relay, statecast.WithHookFunc(func(testState) {
		order = append(order, "first")
	}))
	second := statecast.NewSubscriber(relay, statecast.WithHookFunc(func(testState) {
		order = append(order, "second")
	}))
	third := statecast.NewSubscriber(relay, statecast.WithHookFunc(func(testState) {
		order = append(order, "third")
	}))

	source.Broadcast(testState{N: 7})

	require.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, 7, first.State().N)
	assert.Equal(t, 7, second.State().N)
	assert.Equal(t, 7, third.State().N)
}

func TestRelayFanOutInvokesEachHookOnce(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	source := statecast.NewSource(relay)

	counts := make([]int, 3)
	for i := range counts {
		statecast.NewSubscriber(relay, statecast.WithHookFunc(func(testState) {
			counts[i]++
		}))
	}

	source.Broadcast(testState{N: 1})

	assert.Equal(t, []int{1, 1, 1}, counts)
}

func TestRelaySubscribersView(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	a := statecast.NewSubscriber(relay)
	b := statecast.NewSubscriber(relay)

	subs := relay.Subscribers()
	require.Equal(t, []*statecast.Subscriber[testState]{a, b}, subs)

	// The view is a copy; mutating it leaves the relay untouched.
	subs[0] = nil
	require.Equal(t, []*statecast.Subscriber[testState]{a, b}, relay.Subscribers())
}

func TestRelayCloseOrphansSubscribers(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	source := statecast.NewSource(relay)
	first := statecast.NewSubscriber(relay)
	second := statecast.NewSubscriber(relay)

	source.Broadcast(testState{N: 42})
	relay.Close()

	assert.Nil(t, first.Relay())
	assert.Nil(t, second.Relay())
	assert.Equal(t, 42, first.State().N, "orphaned subscriber keeps its last value")
	assert.Equal(t, 42, second.State().N, "orphaned subscriber keeps its last value")
	assert.NotContains(t, source.Relays(), relay)
}

func TestRelayCloseIdempotent(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	source := statecast.NewSource(relay)
	statecast.NewSubscriber(relay)

	relay.Close()
	relay.Close()

	assert.Empty(t, relay.Subscribers())
	assert.Nil(t, relay.Source())
	assert.Empty(t, source.Relays())
}

func TestClosedRelayRejectsNewLinks(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	relay.Close()

	sub := statecast.NewSubscriber(relay)
	assert.Nil(t, sub.Relay(), "subscriber on a closed relay is orphaned")
	assert.Empty(t, relay.Subscribers())

	source := statecast.NewSource(relay)
	assert.Empty(t, source.Relays())
	assert.Nil(t, relay.Source())
}

func TestRelaySetSourceRebind(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	first := statecast.NewSource(relay)
	second := statecast.NewSource(statecast.NewRelay[testState]())

	relay.SetSource(second)

	assert.Same(t, second, relay.Source())
	assert.Contains(t, second.Relays(), relay)
	assert.NotContains(t, first.Relays(), relay,
		"rebinding detaches the relay from its previous source")
}

func TestRelaySetSourceClear(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	source := statecast.NewSource(relay)

	relay.SetSource(nil)

	assert.Nil(t, relay.Source())
	assert.Empty(t, source.Relays())
}

func TestRelaySetSourceClosedSourceTreatedAsNil(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	source := statecast.NewSource(statecast.NewRelay[testState]())
	source.Close()

	relay.SetSource(source)

	assert.Nil(t, relay.Source())
	assert.Empty(t, source.Relays())
}

func TestRelayRebindAfterSourceClose(t *testing.T) {
	t.Parallel()

	relay := statecast.NewRelay[testState]()
	first := statecast.NewSource(relay)
	first.Close()
	require.Nil(t, relay.Source())

	// Orphaned is terminal until an explicit rebind.
	second := statecast.NewSource(relay)

	assert.Same(t, second, relay.Source())
	assert.Equal(t, []*statecast.Relay[testState]{relay}, second.Relays())

	sub := statecast.NewSubscriber(relay)
	second.Broadcast(testState{N: 9})
	assert.Equal(t, 9, sub.State().N)
}
