package routers

import (
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authentication).Post("/", appointmentController.Book)
	router.Get("/", appointmentController.List)
	router.Get("/latest", appointmentController.Latest)
	router.With(middlewares.Authentication).Delete("/{appointmentID}", appointmentController.Cancel)
}
