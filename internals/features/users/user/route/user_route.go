package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/users/user/controller"
	"confku_backend/internals/features/users/user/service"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(service.NewUserService(db))

	r := api.Group("/user", authMiddleware.Authenticate())

	superAdminOnly := authMiddleware.AuthorizeRoles(constants.RoleSuperAdmin)

	r.Get("/", superAdminOnly, ctrl.GetAll)
	r.Get("/:id", superAdminOnly, ctrl.GetByID)
	r.Post("/", superAdminOnly, ctrl.Create)

	// pemilik akun boleh update dirinya sendiri; cek di controller
	r.Patch("/:id", ctrl.Update)

	r.Delete("/:id", superAdminOnly, ctrl.Delete)
}
