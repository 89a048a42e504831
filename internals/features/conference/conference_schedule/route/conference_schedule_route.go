package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/conference_schedule/controller"
	"confku_backend/internals/features/conference/conference_schedule/service"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

func ConferenceScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConferenceScheduleController(service.NewConferenceScheduleService(db))

	r := api.Group("/conference-schedule")

	r.Get("/", ctrl.GetAll)
	r.Get("/active/:type", ctrl.GetActive)
	r.Get("/user-view/:year/:type", ctrl.GetForUserView)
	r.Get("/:id", ctrl.GetByID)

	r.Post("/", authMiddleware.Authenticate(), ctrl.Create)
	r.Patch("/:id", authMiddleware.Authenticate(), ctrl.Update)
	r.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.AuthorizeRoles(constants.RoleSuperAdmin),
		ctrl.Delete,
	)
}
