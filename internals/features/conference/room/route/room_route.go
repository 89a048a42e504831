package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/room/controller"
	"confku_backend/internals/features/conference/room/service"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

func RoomRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRoomController(service.NewRoomService(db))

	r := api.Group("/room")

	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	r.Post("/", authMiddleware.Authenticate(), ctrl.Create)
	r.Patch("/:id", authMiddleware.Authenticate(), ctrl.Update)
	r.Delete("/:id", authMiddleware.Authenticate(), ctrl.Delete)
}
