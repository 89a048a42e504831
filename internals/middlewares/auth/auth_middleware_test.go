package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confku_backend/internals/configs"
	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/guard"
	authService "confku_backend/internals/features/users/auth/service"
	"github.com/google/uuid"
)

func setupSecrets(t *testing.T) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	configs.AccessTokenTTL = 15 * time.Minute
	configs.RefreshTokenTTL = 7 * 24 * time.Hour
}

func protectedApp(extra ...fiber.Handler) (*fiber.App, *guard.Actor) {
	var actor guard.Actor

	app := fiber.New()
	handlers := append([]fiber.Handler{Authenticate()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		actor = ActorFromCtx(c)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/protected", handlers...)
	return app, &actor
}

func TestAuthenticateAcceptsAccessToken(t *testing.T) {
	setupSecrets(t)

	userID := uuid.New()
	token, err := authService.GenerateAccessToken(userID, constants.RoleAdminICODSA)
	require.NoError(t, err)

	app, actor := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, constants.RoleAdminICODSA, actor.Role)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	setupSecrets(t)

	app, _ := protectedApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	setupSecrets(t)

	token, err := authService.GenerateRefreshToken(uuid.New(), constants.RoleSuperAdmin)
	require.NoError(t, err)

	app, _ := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateRejectsUnknownRole(t *testing.T) {
	setupSecrets(t)

	token, err := authService.GenerateAccessToken(uuid.New(), "AUDITOR")
	require.NoError(t, err)

	app, _ := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorizeRoles(t *testing.T) {
	setupSecrets(t)

	token, err := authService.GenerateAccessToken(uuid.New(), constants.RoleAdminICICYTA)
	require.NoError(t, err)

	app, _ := protectedApp(AuthorizeRoles(constants.RoleSuperAdmin))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
