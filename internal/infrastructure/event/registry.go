package event

import (
	"slices"
	"sync"

	"github.com/crown/backend/internal/domain/shared"
)

// anyEvent keys the handlers subscribed to every event type
const anyEvent = ""

// HandlerRegistry maps event types to handlers. Typed handlers run before
// the ones subscribed to every event.
type HandlerRegistry struct {
	mu     sync.RWMutex
	byType map[string][]shared.EventHandler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{byType: make(map[string][]shared.EventHandler)}
}

// Register subscribes handler to eventTypes, or to every event when none are given
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = []string{anyEvent}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, eventType := range eventTypes {
		r.byType[eventType] = append(r.byType[eventType], handler)
	}
}

// Unregister drops every subscription of handler
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for eventType, handlers := range r.byType {
		handlers = slices.DeleteFunc(handlers, func(h shared.EventHandler) bool { return h == handler })
		if len(handlers) == 0 {
			delete(r.byType, eventType)
			continue
		}
		r.byType[eventType] = handlers
	}
}

// GetHandlers returns the handlers an event of eventType is dispatched to
func (r *HandlerRegistry) GetHandlers(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if eventType == anyEvent {
		return slices.Clone(r.byType[anyEvent])
	}
	return slices.Concat(r.byType[eventType], r.byType[anyEvent])
}

// Count returns the number of distinct subscribed handlers
func (r *HandlerRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[shared.EventHandler]struct{})
	for _, handlers := range r.byType {
		for _, h := range handlers {
			seen[h] = struct{}{}
		}
	}
	return len(seen)
}
