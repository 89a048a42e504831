package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/track_session/controller"
	"confku_backend/internals/features/conference/track_session/service"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

func TrackSessionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTrackSessionController(service.NewTrackSessionService(db))

	r := api.Group("/track-session")

	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	r.Post("/", authMiddleware.Authenticate(), ctrl.Create)
	r.Patch("/:id", authMiddleware.Authenticate(), ctrl.Update)
	r.Delete("/:id", authMiddleware.Authenticate(), ctrl.Delete)
}
