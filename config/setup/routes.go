package setup

import (
	"items-api/app"
	"items-api/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))

	// Non-integer ids fall through to fiber's 404
	api := fiberApp.Group("/api")
	api.Get("/items", handlers.GetItems(application))
	api.Post("/items", handlers.CreateItem(application))
	api.Get("/items/:id<int>", handlers.GetItem(application))
	api.Put("/items/:id<int>", handlers.UpdateItem(application))
	api.Delete("/items/:id<int>", handlers.DeleteItem(application))
}
