package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/features/users/auth/controller"
	"confku_backend/internals/features/users/auth/service"
	"confku_backend/internals/middlewares"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(service.NewAuthService(db))

	r := api.Group("/auth")

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/refresh-token", ctrl.RefreshToken)
	r.Get("/me", authMiddleware.Authenticate(), ctrl.GetProfile)
}
