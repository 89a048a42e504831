package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/users/user/dto"
	"confku_backend/internals/features/users/user/service"
	helper "confku_backend/internals/helpers"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

type UserController struct {
	service *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{service: s}
}

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	query, errs := dto.ListSchema.Parse(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	data, meta, err := ctrl.service.GetAll(query)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Users data retrieved successfully", data, meta)
}

func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "User data retrieved successfully", data)
}

func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := ctrl.service.Create(req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "User created successfully", data)
}

// Update: hanya pemilik akun atau SUPER_ADMIN.
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	actor := authMiddleware.ActorFromCtx(c)
	if actor.ID != id && actor.Role != constants.RoleSuperAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not allowed to update this user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := ctrl.service.Update(id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "User updated successfully", data)
}

// Delete: ?permanent=true → hard delete (wajib sudah soft-deleted).
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	permanent := false
	if raw := strings.TrimSpace(c.Query("permanent")); raw != "" {
		permanent, err = strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonFieldErrors(c, helper.NewFieldError("Permanent must be a boolean.", "permanent"))
		}
	}

	if permanent {
		data, err := ctrl.service.HardDelete(id)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "User permanently deleted.", data)
	}

	data, err := ctrl.service.SoftDelete(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "User deleted successfully", data)
}
