package routers

import (
	"carebook-service/internal/app/services/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, notificationController *notifications.NotificationController) {
	router.Get("/banner", notificationController.GetBanner)
	router.Delete("/banner", notificationController.DismissBanner)
}
