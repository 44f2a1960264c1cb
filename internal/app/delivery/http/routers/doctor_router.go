package routers

import (
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/doctors"
	"carebook-service/internal/app/services/slots"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	slotController *slots.SlotController,
) {
	router.Get("/", doctorController.List)
	router.Get("/{doctorID}", doctorController.Get)
	router.Get("/{doctorID}/slots", slotController.List)
	router.With(middlewares.APIKeyAuth).Post("/refresh", doctorController.Refresh)
}
