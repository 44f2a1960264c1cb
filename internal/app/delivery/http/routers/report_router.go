package routers

import (
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.Authentication).Get("/", reportController.List)
	router.With(middlewares.Authentication).Get("/{doctorID}/view", reportController.View)
	router.With(middlewares.Authentication).Get("/{doctorID}/download", reportController.Download)
}
