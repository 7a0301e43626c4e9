package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las búsquedas devuelven (nil, nil) si no existe la fila.
type CategoryRepository interface {
	// Create persiste la categoría y completa ID y timestamps.
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	// Update persiste Name y refresca UpdatedAt.
	Update(ctx context.Context, category *entity.Category) error
	// List devuelve todas las categorías ordenadas por nombre ascendente.
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
