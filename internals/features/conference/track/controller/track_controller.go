package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/features/conference/track/dto"
	"confku_backend/internals/features/conference/track/service"
	helper "confku_backend/internals/helpers"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

type TrackController struct {
	service *service.TrackService
}

func NewTrackController(s *service.TrackService) *TrackController {
	return &TrackController{service: s}
}

func (ctrl *TrackController) GetAll(c *fiber.Ctx) error {
	query, errs := dto.ListSchema.Parse(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	data, meta, err := ctrl.service.GetAll(query)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Tracks data retrieved successfully", data, meta)
}

func (ctrl *TrackController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Track data retrieved successfully", data)
}

func (ctrl *TrackController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	var req dto.UpdateTrackRequest
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
	return helper.JsonOK(c, "Track updated successfully", data)
}

func (ctrl *TrackController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.Delete(id, authMiddleware.ActorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Track and its associated data permanently deleted.", data)
}
