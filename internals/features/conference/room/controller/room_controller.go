package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/features/conference/room/dto"
	"confku_backend/internals/features/conference/room/service"
	helper "confku_backend/internals/helpers"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

type RoomController struct {
	service *service.RoomService
}

func NewRoomController(s *service.RoomService) *RoomController {
	return &RoomController{service: s}
}

func (ctrl *RoomController) GetAll(c *fiber.Ctx) error {
	query, errs := dto.ListSchema.Parse(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}
	adv, errs := dto.ParseAdvSearch(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	data, meta, err := ctrl.service.GetAll(query, adv)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Rooms data retrieved successfully", data, meta)
}

func (ctrl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Room data retrieved successfully", data)
}

func (ctrl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := ctrl.service.Create(req, authMiddleware.ActorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Room created successfully", data)
}

func (ctrl *RoomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := ctrl.service.Update(id, req, authMiddleware.ActorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Room updated successfully", data)
}

func (ctrl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.Delete(id, authMiddleware.ActorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Room and its associated data permanently deleted.", data)
}
