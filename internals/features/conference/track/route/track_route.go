package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/track/controller"
	"confku_backend/internals/features/conference/track/service"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

// Track tidak punya route create: track lahir bersama room PARALLEL
// lewat payload pada POST /room.
func TrackRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTrackController(service.NewTrackService(db))

	r := api.Group("/track")

	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	r.Patch("/:id", authMiddleware.Authenticate(), ctrl.Update)
	r.Delete("/:id", authMiddleware.Authenticate(), ctrl.Delete)
}
