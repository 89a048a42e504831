package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/schedule/controller"
	"confku_backend/internals/features/conference/schedule/service"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleController(service.NewScheduleService(db))

	r := api.Group("/schedule")

	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	r.Post("/", authMiddleware.Authenticate(), ctrl.Create)
	r.Patch("/:id", authMiddleware.Authenticate(), ctrl.Update)
	r.Delete("/:id", authMiddleware.Authenticate(), ctrl.Delete)
}
