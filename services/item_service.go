package services

import (
	"context"
	"errors"
	"items-api/database"
	"items-api/models"
)

// ItemService handles business logic for items
type ItemService struct {
	repo      ItemRepository
	validator Validator
}

// NewItemService creates a new item service
func NewItemService(repo ItemRepository, validator Validator) *ItemService {
	return &ItemService{
		repo:      repo,
		validator: validator,
	}
}

// List retrieves all items ordered by id
func (is *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return is.repo.ListItems(ctx)
}

// Get retrieves a single item
func (is *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := is.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Create validates the request and stores a new item
func (is *ItemService) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	if err := is.validator.Validate(&req); err != nil {
		return nil, err
	}

	item := &models.Item{Name: req.Name}
	if err := is.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update renames an existing item. A missing item is reported before an
// invalid request.
func (is *ItemService) Update(ctx context.Context, id int64, req models.UpdateItemRequest) (*models.Item, error) {
	item, err := is.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return is.Rename(ctx, item, req)
}

// Rename validates the request and stores the new name of an item already
// loaded with Get.
func (is *ItemService) Rename(ctx context.Context, item *models.Item, req models.UpdateItemRequest) (*models.Item, error) {
	if err := is.validator.Validate(&req); err != nil {
		return nil, err
	}

	if err := is.repo.UpdateItemName(ctx, item.ID, req.Name); err != nil {
		// Deleted between the read and the write
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return &models.Item{ID: item.ID, Name: req.Name}, nil
}

// Delete removes an item
func (is *ItemService) Delete(ctx context.Context, id int64) error {
	if err := is.repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}
