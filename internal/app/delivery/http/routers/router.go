package routers

import (
	"fmt"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/appointments"
	"carebook-service/internal/app/services/auth"
	"carebook-service/internal/app/services/doctors"
	"carebook-service/internal/app/services/notifications"
	"carebook-service/internal/app/services/reports"
	"carebook-service/internal/app/services/reviews"
	"carebook-service/internal/app/services/slots"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	doctorController *doctors.DoctorController,
	slotController *slots.SlotController,
	appointmentController *appointments.AppointmentController,
	reviewController *reviews.ReviewController,
	reportController *reports.ReportController,
	notificationController *notifications.NotificationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Email", "x-api-key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController, slotController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/reviews", func(r chi.Router) {
				attachReviewRoutes(r, middlewares, reviewController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, notificationController)
			})
		})
	})
}
