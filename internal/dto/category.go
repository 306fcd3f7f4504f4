package dto

import "time"

// Category Request DTOs

// CreateCategoryRequest contains a new category name
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Category Response DTOs

// CategoryResponse represents a stored category
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListCategoriesResponse wraps the category list. Fallback is true when
// the store was unreachable and the built-in list was served instead.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Fallback   bool               `json:"fallback,omitempty"`
}
