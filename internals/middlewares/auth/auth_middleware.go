// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"confku_backend/internals/configs"
	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/guard"
	helper "confku_backend/internals/helpers"
)

// Authenticate: verifikasi bearer JWT (HS256, type=access) lalu simpan
// user_id + user_role ke locals untuk dipakai controller.
func Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		if typ, _ := claims["type"].(string); typ != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Not an access token")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		role, _ := claims["role"].(string)
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Unknown role")
		}

		c.Locals("user_id", userID.String())
		c.Locals("user_role", role)
		return c.Next()
	}
}

// AuthorizeRoles: batasi route ke role tertentu (dipasang setelah Authenticate).
func AuthorizeRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "You are not allowed to access this resource!")
	}
}

// ActorFromCtx: identitas user hasil Authenticate.
func ActorFromCtx(c *fiber.Ctx) guard.Actor {
	idStr, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)
	id, _ := uuid.Parse(idStr)
	return guard.Actor{ID: id, Role: role}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" {
		return "", helper.Unauthorized("Unauthorized - Missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", helper.Unauthorized("Unauthorized - Malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
