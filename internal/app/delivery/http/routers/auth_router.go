package routers

import (
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authentication).Post("/logout", authController.Logout)
	router.With(middlewares.Authentication).Get("/profile", authController.GetProfile)
	router.With(middlewares.Authentication).Put("/profile", authController.UpdateProfile)
}
