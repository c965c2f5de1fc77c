package models

type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateItemRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateItemRequest struct {
	Name string `json:"name" validate:"required"`
}
