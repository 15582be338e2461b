package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversInOrder(t *testing.T) {
	bus := NewBus(nil)
	var got []string

	bus.Subscribe(ViewChanged, HandlerFunc{ID: "a", Fn: func(Event) { got = append(got, "a") }})
	bus.Subscribe(ViewChanged, HandlerFunc{ID: "b", Fn: func(Event) { got = append(got, "b") }})
	bus.Publish(Event{Type: ViewChanged})

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestBus_OnlyMatchingType(t *testing.T) {
	bus := NewBus(nil)
	calls := 0
	bus.Subscribe(ViewChanged, HandlerFunc{ID: "c", Fn: func(Event) { calls++ }})

	bus.Publish(Event{Type: "unrelated"})
	assert.Zero(t, calls)

	bus.Publish(Event{Type: ViewChanged, Data: 3})
	assert.Equal(t, 1, calls)
}

func TestBus_SetsTimestamp(t *testing.T) {
	bus := NewBus(nil)
	var seen Event
	bus.Subscribe(ViewChanged, HandlerFunc{ID: "t", Fn: func(e Event) { seen = e }})

	bus.Publish(Event{Type: ViewChanged})
	assert.False(t, seen.Timestamp.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)
	h := HandlerFunc{ID: "gone", Fn: func(Event) { t.Fatal("unsubscribed handler called") }}
	bus.Subscribe(ViewChanged, h)
	bus.Unsubscribe(ViewChanged, h)

	bus.Publish(Event{Type: ViewChanged})
	assert.Zero(t, bus.SubscriberCount(ViewChanged))
}

func TestBus_PanicDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(nil)
	reached := false
	bus.Subscribe(ViewChanged, HandlerFunc{ID: "boom", Fn: func(Event) { panic("boom") }})
	bus.Subscribe(ViewChanged, HandlerFunc{ID: "after", Fn: func(Event) { reached = true }})

	assert.NotPanics(t, func() { bus.Publish(Event{Type: ViewChanged}) })
	assert.True(t, reached)
}
