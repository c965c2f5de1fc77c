package handlers

import (
	"errors"
	"items-api/app"
	"items-api/models"
	"items-api/services"
	"items-api/validator"

	"github.com/gofiber/fiber/v2"
)

const itemNotFoundMessage = "Item not found"

// itemID reads the :id route parameter. ok is false when it is not an integer.
func itemID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false
	}
	return int64(id), true
}

// itemError maps service errors to responses
func itemError(c *fiber.Ctx, a *app.App, err error, message string) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		return notFound(c, itemNotFoundMessage)
	case errors.As(err, &verrs):
		return validationError(c, verrs)
	default:
		return serverErrorWithDetails(c, a.Logger, message, err)
	}
}

// GetItems lists every item
func GetItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := a.ItemService.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch items", err)
		}

		return success(c, items)
	}
}

// GetItem returns a single item
func GetItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := itemID(c)
		if !ok {
			return notFound(c, itemNotFoundMessage)
		}

		item, err := a.ItemService.Get(c.UserContext(), id)
		if err != nil {
			return itemError(c, a, err, "Failed to fetch item")
		}

		return success(c, item)
	}
}

// CreateItem creates a new item
func CreateItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateItemRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		item, err := a.ItemService.Create(c.UserContext(), req)
		if err != nil {
			return itemError(c, a, err, "Failed to create item")
		}

		return created(c, item)
	}
}

// UpdateItem renames an existing item
func UpdateItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := itemID(c)
		if !ok {
			return notFound(c, itemNotFoundMessage)
		}

		// Existence is checked before the body so an unknown id is always 404
		item, err := a.ItemService.Get(c.UserContext(), id)
		if err != nil {
			return itemError(c, a, err, "Failed to fetch item")
		}

		var req models.UpdateItemRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		item, err = a.ItemService.Rename(c.UserContext(), item, req)
		if err != nil {
			return itemError(c, a, err, "Failed to update item")
		}

		return success(c, item)
	}
}

// DeleteItem removes an item
func DeleteItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := itemID(c)
		if !ok {
			return notFound(c, itemNotFoundMessage)
		}

		if err := a.ItemService.Delete(c.UserContext(), id); err != nil {
			return itemError(c, a, err, "Failed to delete item")
		}

		return success(c, fiber.Map{
			"message": "Item deleted successfully",
		})
	}
}
