package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Mensajes de error de categorías tal como los recibe el cliente.
const (
	MsgCategoryNameRequired = "Category name is required"
	MsgCategoryExists       = "Category already exists"
	MsgCategoryIDRequired   = "Category ID is required"
	MsgCategoryNotFound     = "Category not found"
	MsgCategoryInUse        = "Category id is being used by products"
)

// CategoryUseCase casos de uso CRUD para categorías.
// Necesita productos para impedir borrar una categoría en uso.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// Create crea una categoría con nombre único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.Invalid(MsgCategoryNameRequired)
	}
	existing, err := uc.categories.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate(MsgCategoryExists)
	}
	category := &entity.Category{Name: in.Name}
	if err := uc.categories.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Duplicate(MsgCategoryExists)
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update cambia el nombre. El nombre no se revalida: si viene (aunque vacío) se aplica.
func (uc *CategoryUseCase) Update(ctx context.Context, rawID string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, domain.Invalid(MsgCategoryIDRequired)
	}
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound(MsgCategoryNotFound)
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if err := uc.categories.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, domain.Duplicate(MsgCategoryExists)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NotFound(MsgCategoryNotFound)
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría si ningún producto la referencia y devuelve el registro borrado.
func (uc *CategoryUseCase) Delete(ctx context.Context, rawID string) (*dto.CategoryResponse, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, domain.Invalid(MsgCategoryIDRequired)
	}
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound(MsgCategoryNotFound)
	}
	if err := uc.ensureUnused(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Se creó un producto entre el conteo y el borrado.
			if err := uc.ensureUnused(ctx, id); err != nil {
				return nil, err
			}
			return nil, domain.Conflict(MsgCategoryInUse)
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (uc *CategoryUseCase) ensureUnused(ctx context.Context, id int64) error {
	count, err := uc.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict(fmt.Sprintf("Category id being used in %d product(s)", count))
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
