package services

import (
	"context"
	"items-api/models"
)

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItemName(ctx context.Context, id int64, name string) error
	DeleteItem(ctx context.Context, id int64) error
}

// Validator checks request structs against their validate tags
type Validator interface {
	Validate(i interface{}) error
}
