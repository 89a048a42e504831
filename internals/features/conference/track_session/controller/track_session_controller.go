package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/features/conference/track_session/dto"
	"confku_backend/internals/features/conference/track_session/service"
	helper "confku_backend/internals/helpers"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

type TrackSessionController struct {
	service *service.TrackSessionService
}

func NewTrackSessionController(s *service.TrackSessionService) *TrackSessionController {
	return &TrackSessionController{service: s}
}

func (ctrl *TrackSessionController) GetAll(c *fiber.Ctx) error {
	query, errs := dto.ListSchema.Parse(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	data, meta, err := ctrl.service.GetAll(query)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Track Sessions data retrieved successfully", data, meta)
}

func (ctrl *TrackSessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Track Session data retrieved successfully", data)
}

func (ctrl *TrackSessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateTrackSessionRequest
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
	return helper.JsonCreated(c, "Track Session created successfully", data)
}

func (ctrl *TrackSessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	var req dto.UpdateTrackSessionRequest
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
	return helper.JsonOK(c, "Track Session updated successfully", data)
}

func (ctrl *TrackSessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.Delete(id, authMiddleware.ActorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Track Session permanently deleted.", data)
}
