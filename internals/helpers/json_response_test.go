package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func runHandler(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonListIncludesNullMeta(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return JsonList(c, "ok", []string{}, nil)
	})

	assert.Equal(t, fiber.StatusOK, status)
	meta, present := body["meta"]
	assert.True(t, present)
	assert.Nil(t, meta)
}

func TestJsonFromErrorApiError(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return JsonFromError(c, NotFound("Conference Schedule not found."))
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Conference Schedule not found.", body["message"])
}

func TestJsonFromErrorFieldErrors(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return JsonFromError(c, NewFieldError("Email already taken.", "email"))
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	errsRaw, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errsRaw, 1)

	first := errsRaw[0].(map[string]any)
	assert.Equal(t, "Email already taken.", first["message"])
	assert.Equal(t, "email", first["path"])
}

func TestJsonFromErrorGormNotFound(t *testing.T) {
	status, _ := runHandler(t, func(c *fiber.Ctx) error {
		return JsonFromError(c, gorm.ErrRecordNotFound)
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestJsonFromErrorUnknownIs500(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return JsonFromError(c, errors.New("boom"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_conference_schedules_year_type"}

	assert.True(t, IsUniqueViolation(dup, "uq_conference_schedules_year_type"))
	assert.True(t, IsUniqueViolation(dup, ""))
	assert.False(t, IsUniqueViolation(dup, "uq_rooms_schedule_main"))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))

	notDup := &pgconn.PgError{Code: "23503"}
	assert.False(t, IsUniqueViolation(notDup, ""))
}
