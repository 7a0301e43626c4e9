package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" example:"Electronics"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. Name nil = sin cambio.
type UpdateCategoryRequest struct {
	Name *string `json:"name" example:"Home appliances"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Electronics"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryEnvelope respuesta con una categoría.
type CategoryEnvelope struct {
	Message  string           `json:"message"`
	Category CategoryResponse `json:"category"`
}

// CategoryListResponse listado completo de categorías.
type CategoryListResponse struct {
	Message    string             `json:"message"`
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}
