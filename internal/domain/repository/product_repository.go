package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven el producto con Category ({id, name}) resuelta.
type ProductRepository interface {
	// Create persiste el producto y completa ID.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// GetByNameExcluding busca otro producto (id distinto) con el mismo nombre.
	GetByNameExcluding(ctx context.Context, name string, excludeID int64) (*entity.Product, error)
	// Update persiste todos los campos editables del producto.
	Update(ctx context.Context, product *entity.Product) error
	// List devuelve todos los productos ordenados por id.
	List(ctx context.Context) ([]*entity.Product, error)
	// ListByCategory devuelve los productos de la categoría ordenados por nombre.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
