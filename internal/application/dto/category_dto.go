package dto

import "time"

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name    string `json:"name"`
	Photo   string `json:"photo,omitempty"`
	Tagline string `json:"tagline,omitempty"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id (campos opcionales).
type UpdateCategoryRequest struct {
	Name    *string `json:"name,omitempty"`
	Photo   *string `json:"photo,omitempty"`
	Tagline *string `json:"tagline,omitempty"`
}

// CategoryResponse representación de una categoría en respuestas.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Photo     string    `json:"photo,omitempty"`
	Tagline   string    `json:"tagline,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse listado paginado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
