package app

import (
	"items-api/database"
	"items-api/services"
	"items-api/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB          *database.DB
	ItemService *services.ItemService
	Logger      *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, logger *slog.Logger) *App {
	repo := database.NewRepository(db)

	return &App{
		DB:          db,
		ItemService: services.NewItemService(repo, validator.New()),
		Logger:      logger,
	}
}
