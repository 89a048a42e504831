package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/conference_schedule/dto"
	"confku_backend/internals/features/conference/conference_schedule/service"
	helper "confku_backend/internals/helpers"
	authMiddleware "confku_backend/internals/middlewares/auth"
)

type ConferenceScheduleController struct {
	service *service.ConferenceScheduleService
}

func NewConferenceScheduleController(s *service.ConferenceScheduleService) *ConferenceScheduleController {
	return &ConferenceScheduleController{service: s}
}

func (ctrl *ConferenceScheduleController) GetAll(c *fiber.Ctx) error {
	query, errs := dto.ListSchema.Parse(c)
	if errs != nil {
		return helper.JsonFieldErrors(c, errs)
	}

	data, meta, err := ctrl.service.GetAll(query)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Conference Schedules data retrieved successfully", data, meta)
}

func (ctrl *ConferenceScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	data, err := ctrl.service.GetByID(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Conference Schedule data retrieved successfully", data)
}

func (ctrl *ConferenceScheduleController) GetActive(c *fiber.Ctx) error {
	confType := strings.ToUpper(strings.TrimSpace(c.Params("type")))
	if !constants.OneOf(confType, constants.ConferenceTypes) {
		return helper.JsonFieldErrors(c, helper.NewFieldError(
			"Type must be one of: "+constants.JoinAllowed(constants.ConferenceTypes)+".", "type"))
	}

	data, err := ctrl.service.GetActive(confType)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Conference Schedule data retrieved successfully", data)
}

func (ctrl *ConferenceScheduleController) GetForUserView(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Params("year"))
	confType := strings.ToUpper(strings.TrimSpace(c.Params("type")))

	var errs helper.FieldErrors
	if len(year) != 4 {
		errs.Add("Year must be 4 digits (e.g., 2025).", "year")
	} else if _, err := strconv.Atoi(year); err != nil {
		errs.Add("Year must only contain numbers.", "year")
	}
	if !constants.OneOf(confType, constants.ConferenceTypes) {
		errs.Add("Type must be one of: "+constants.JoinAllowed(constants.ConferenceTypes)+".", "type")
	}
	if len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	data, err := ctrl.service.GetForUserView(year, confType)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Conference Schedule data retrieved successfully", data)
}

func (ctrl *ConferenceScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateConferenceScheduleRequest
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
	return helper.JsonCreated(c, "Conference Schedule created successfully", data)
}

func (ctrl *ConferenceScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID must be a valid UUID.")
	}

	var req dto.UpdateConferenceScheduleRequest
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
	return helper.JsonOK(c, "Conference Schedule updated successfully", data)
}

// Delete: ?permanent=true → hard delete (wajib sudah soft-deleted).
func (ctrl *ConferenceScheduleController) Delete(c *fiber.Ctx) error {
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

	actor := authMiddleware.ActorFromCtx(c)
	if permanent {
		data, err := ctrl.service.HardDelete(id, actor)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, "Conference Schedule permanently deleted.", data)
	}

	data, err := ctrl.service.SoftDelete(id, actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Conference Schedule deleted successfully", data)
}
