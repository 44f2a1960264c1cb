package contracts

import (
	"context"

	"carebook-service/internal/app/models"
)

// BannerUsecase tracks the acknowledgment banner derived from relay events.
type BannerUsecase interface {
	Current() *models.Banner
	Dismiss()
}

// NotificationQueuePublisher forwards relay events to the durable queue for
// downstream reminder delivery.
type NotificationQueuePublisher interface {
	PublishEvent(ctx context.Context, event models.NotificationEvent) error
}
