package notifications

import (
	"sync"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"

	"go.uber.org/zap"
)

// relay is the in-process notification broadcaster. Publish walks the
// subscriber list synchronously in subscription order; a subscriber that
// panics is logged and skipped so the remaining subscribers still receive
// the event. Events are not buffered, so a handler subscribed after Publish
// never sees earlier events.
type relay struct {
	log *zap.Logger

	mu       sync.Mutex
	nextID   uint64
	handlers []relayEntry
}

type relayEntry struct {
	id      uint64
	handler contracts.NotificationHandler
}

func NewNotificationRelay(logger *zap.Logger) contracts.NotificationRelay {
	return &relay{log: logger}
}

func (r *relay) Subscribe(handler contracts.NotificationHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, relayEntry{id: id, handler: handler})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, entry := range r.handlers {
			if entry.id == id {
				r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
				return
			}
		}
	}
}

func (r *relay) Publish(event models.NotificationEvent) {
	r.mu.Lock()
	snapshot := make([]relayEntry, len(r.handlers))
	copy(snapshot, r.handlers)
	r.mu.Unlock()

	for _, entry := range snapshot {
		r.deliver(entry, event)
	}
}

func (r *relay) deliver(entry relayEntry, event models.NotificationEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("notification subscriber panicked",
				zap.Uint64("subscriber_id", entry.id),
				zap.String("action", event.Action),
				zap.Any("panic", rec),
			)
		}
	}()
	entry.handler(event)
}
