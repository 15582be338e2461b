package events

import (
	"fmt"
	"sync"
	"time"

	"job-mapper/internal/logger"
)

// Event types published by the job service
const (
	// ViewChanged fires whenever the collection or the displayed slice of
	// records changes. Data carries the service state.
	ViewChanged = "view_changed"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a function to EventHandler under a fixed ID
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

func (h HandlerFunc) Handle(event Event) { h.Fn(event) }
func (h HandlerFunc) GetID() string      { return h.ID }

// Bus delivers events synchronously, in subscription order, on the
// publisher's goroutine. Publishers are expected to run on the UI goroutine.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	logger      logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Bus{
		subscribers: make(map[string][]EventHandler),
		logger:      log,
	}
}

func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(handler, event)
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// SubscriberCount reports how many handlers listen for eventType
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}

func (b *Bus) dispatch(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"event":   event.Type,
				"handler": h.GetID(),
			})
		}
	}()
	h.Handle(event)
}
