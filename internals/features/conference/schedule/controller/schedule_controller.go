package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/features/conference/schedule/dto"
	"confku_backend/internals/features/conference/schedule/service"
	helper "confku_backend/internals/helpers"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

type ScheduleController struct {
	service *service.ScheduleService
}

func NewScheduleController(s *service.ScheduleService) *ScheduleController {
	return &ScheduleController{service: s}
}

func (ctrl *ScheduleController) GetAll(c *fiber.Ctx) error {
	query, errs := dto.ListSchema.Parse(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	data, meta, err := ctrl.service.GetAll(query)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Schedules data retrieved successfully", data, meta)
}

func (ctrl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Schedule data retrieved successfully", data)
}

func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
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
	return helper.JsonCreated(c, "Schedule created successfully", data)
}

func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	var req dto.UpdateScheduleRequest
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
	return helper.JsonOK(c, "Schedule updated successfully", data)
}

func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.Delete(id, authMiddleware.ActorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Schedule deleted successfully", data)
}
