package contracts

import "carebook-service/internal/app/models"

type NotificationHandler func(event models.NotificationEvent)

// NotificationRelay is the in-process broadcast channel between components.
// Delivery is synchronous, in subscription order, at-most-once, with no
// replay buffer; it lives only as long as the process.
type NotificationRelay interface {
	Publish(event models.NotificationEvent)
	Subscribe(handler NotificationHandler) (unsubscribe func())
}
