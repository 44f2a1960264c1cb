package routers

import (
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/reviews"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, middlewares *middlewares.Middlewares, reviewController *reviews.ReviewController) {
	router.Get("/", reviewController.List)
	router.With(middlewares.Authentication).Post("/", reviewController.Submit)
	router.With(middlewares.APIKeyAuth).Delete("/{doctorID}", reviewController.Clear)
}
