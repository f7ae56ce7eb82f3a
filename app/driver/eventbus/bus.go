package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"account-service/app/domain"
	"account-service/app/port"
)

// Bus is the in-process identity-change event stream. Auth actions
// publish sign-in/sign-out events; the session bootstrap subscribes.
// Delivery is synchronous and in occurrence order per publisher, which
// preserves the ordering guarantee the bootstrap relies on.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]func(domain.AuthEvent)
	logger   *slog.Logger
}

// New creates an empty event bus
func New(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[int]func(domain.AuthEvent)),
		logger:   logger.With("component", "auth_event_bus"),
	}
}

var _ port.AuthEventBus = (*Bus)(nil)

// Publish delivers an event to all current subscribers
func (b *Bus) Publish(ctx context.Context, event domain.AuthEvent) {
	b.mu.RLock()
	handlers := make([]func(domain.AuthEvent), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.logger.Debug("publishing auth event",
		"kind", event.Kind,
		"session_key", event.SessionKey)

	for _, handler := range handlers {
		handler(event)
	}
}

// Subscribe registers a handler and returns its unsubscribe function
func (b *Bus) Subscribe(handler func(domain.AuthEvent)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}
