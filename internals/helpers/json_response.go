// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===============================
   JSON responses (standard success)
   Envelope: {success, message, data, meta?}
=================================*/

// JsonOK: response sukses generic (GET detail, update, delete, dsb)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonCreated: response sukses create (POST → 201)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonList: list + meta pagination. meta harus nil-able supaya mode
// get_all mengirim meta: null seperti kontrak API.
func JsonList(c *fiber.Ctx, message string, data any, meta any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

/* ===============================
   Error responses
=================================*/

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonFieldErrors: error validasi / pelanggaran invariant per-field.
func JsonFieldErrors(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": errs.Error(),
		"errors":  errs,
	})
}

// JsonFromError: satu pintu mapping error service → HTTP envelope.
// Tidak ada error domain yang ditelan; yang tak dikenal jadi 500.
func JsonFromError(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return JsonError(c, apiErr.Status, apiErr.Message)
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return JsonFieldErrors(c, fieldErrs)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make(FieldErrors, 0, len(ve))
		for _, fe := range ve {
			out.Add(validationMessage(fe), fe.Field())
		}
		return JsonFieldErrors(c, out)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonError(c, fiberErr.Code, fiberErr.Message)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Record not found.")
	}

	log.Printf("[ERROR] unhandled: %v", err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return fe.Field() + " must be a valid email address."
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters long."
	case "max":
		return fe.Field() + " cannot exceed " + fe.Param() + " characters."
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "uuid":
		return fe.Field() + " must be a valid UUID."
	case "url", "uri":
		return fe.Field() + " must be a valid URL."
	case "len":
		return fe.Field() + " must be " + fe.Param() + " characters."
	default:
		return fe.Field() + " is invalid."
	}
}
