// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ===============================
   ApiError — error domain bertipe
   (NotFound / BadRequest / Forbidden / Unauthorized)
=================================*/

type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string { return e.Message }

func NotFound(message string) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: message}
}

func BadRequest(message string) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: message}
}

func Forbidden(message string) *ApiError {
	return &ApiError{Status: fiber.StatusForbidden, Message: message}
}

func Unauthorized(message string) *ApiError {
	return &ApiError{Status: fiber.StatusUnauthorized, Message: message}
}

/* ===============================
   FieldError — error validasi per-field, bentuknya sama dengan
   error schema-validation supaya client menanganinya seragam.
=================================*/

type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msg := e[0].Message
	if len(e) > 1 {
		msg = fmt.Sprintf("%s (+%d more)", msg, len(e)-1)
	}
	return msg
}

// NewFieldError: shortcut untuk satu pelanggaran field (mis. uniqueness).
func NewFieldError(message, path string) FieldErrors {
	return FieldErrors{{Message: message, Path: path}}
}

func (e *FieldErrors) Add(message, path string) {
	*e = append(*e, FieldError{Message: message, Path: path})
}

/* ===============================
   Postgres constraint inspection
=================================*/

// IsUniqueViolation: true bila err adalah pelanggaran unique index
// dengan nama constraint tertentu ("" = constraint apa pun).
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
