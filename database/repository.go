package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"items-api/models"
)

// ErrNotFound is returned by writes that matched no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== ITEMS ====================

func (r *Repository) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM items
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM items
		WHERE id = ?
	`, id).Scan(&item.ID, &item.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	return &item, nil
}

// CreateItem inserts the item and sets item.ID to the id assigned by SQLite.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, item.Name)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read item id: %w", err)
	}

	item.ID = id
	return nil
}

func (r *Repository) UpdateItemName(ctx context.Context, id int64, name string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE items SET
			name = ?
		WHERE id = ?
	`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	return requireAffected(result)
}

func (r *Repository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
