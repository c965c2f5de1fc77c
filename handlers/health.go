package handlers

import (
	"context"
	"items-api/app"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the service can reach its database
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := a.DB.Ping(ctx); err != nil {
			a.Logger.Warn("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}

		return success(c, fiber.Map{"status": "ok"})
	}
}
