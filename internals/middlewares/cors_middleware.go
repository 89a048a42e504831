package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"confku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS; origin tambahan bisa
// disuntik lewat CORS_ALLOW_ORIGINS (comma separated).
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5500",
	}
	if extra := strings.TrimSpace(configs.GetEnv("CORS_ALLOW_ORIGINS")); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
