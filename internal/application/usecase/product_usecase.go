package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Mensajes de error de productos tal como los recibe el cliente.
const (
	MsgProductNameRequired      = "Product name is required"
	MsgProductPriceInvalid      = "Valid product price is required"
	MsgProductCategoryRequired  = "Category ID is required"
	MsgProductCategoryMissing   = "Category does not exist"
	MsgProductExists            = "Product already exists"
	MsgProductIDRequired        = "Product id is required"
	MsgProductNotFound          = "Product not found"
	MsgProductNegative          = "Price and quantity cannot be negative"
	MsgProductNameTaken         = "Product name already exists"
	MsgProductCategoryNotExists = "Category id is required or not found"
)

// ProductUseCase casos de uso CRUD para productos. Toda escritura valida que la categoría exista.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create crea un producto. Orden de validación: name, price, categoryId, categoría existente, nombre único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.Invalid(MsgProductNameRequired)
	}
	price, ok := in.ParsePrice()
	if !ok || !price.IsPositive() {
		return nil, domain.Invalid(MsgProductPriceInvalid)
	}
	if in.CategoryID == 0 {
		return nil, domain.Invalid(MsgProductCategoryRequired)
	}
	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound(MsgProductCategoryMissing)
	}
	existing, err := uc.products.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate(MsgProductExists)
	}

	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Currency:    in.Currency,
		Quantity:    in.Quantity,
		Active:      in.Active,
		CategoryID:  category.ID,
		Category:    category.Ref(),
	}
	if err := uc.products.Create(ctx, product); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, domain.Duplicate(MsgProductExists)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NotFound(MsgProductCategoryMissing)
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos con su categoría embebida.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, rawID string) (*dto.ProductResponse, error) {
	product, err := uc.mustGet(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica un update parcial. categoryId es obligatorio y debe existir en cada update,
// y name debe venir aunque no se persiste: solo se aplican description, price, currency,
// quantity, active y categoryId.
func (uc *ProductUseCase) Update(ctx context.Context, rawID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	// Solo se rechaza si ambos son negativos.
	if in.Price != nil && in.Price.IsNegative() && in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.Invalid(MsgProductNegative)
	}
	if in.CategoryID == nil {
		return nil, domain.NotFound(MsgProductCategoryMissing)
	}
	category, err := uc.categories.GetByID(ctx, *in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound(MsgProductCategoryMissing)
	}
	id, ok := parseID(rawID)
	if !ok {
		return nil, domain.Invalid(MsgProductIDRequired)
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid(MsgProductNameRequired)
	}
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(MsgProductNotFound)
	}
	other, err := uc.products.GetByNameExcluding(ctx, *in.Name, id)
	if err != nil {
		return nil, err
	}
	if other != nil {
		return nil, domain.Conflict(MsgProductNameTaken)
	}

	if in.Description != nil {
		product.Description = in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Currency != nil {
		product.Currency = in.Currency
	}
	if in.Quantity != nil {
		product.Quantity = in.Quantity
	}
	if in.Active != nil {
		product.Active = in.Active
	}
	product.CategoryID = category.ID
	product.Category = category.Ref()

	if err := uc.products.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, domain.Conflict(MsgProductNameTaken)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NotFound(MsgProductNotFound)
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y devuelve el registro borrado.
func (uc *ProductUseCase) Delete(ctx context.Context, rawID string) (*dto.ProductResponse, error) {
	product, err := uc.mustGet(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := uc.products.Delete(ctx, product.ID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListByCategory lista los productos de una categoría existente, por nombre.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, rawCategoryID string) ([]dto.ProductResponse, error) {
	categoryID, ok := parseID(rawCategoryID)
	if !ok {
		return nil, domain.Invalid(MsgProductCategoryNotExists)
	}
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.Invalid(MsgProductCategoryNotExists)
	}
	list, err := uc.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func (uc *ProductUseCase) mustGet(ctx context.Context, rawID string) (*entity.Product, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, domain.Invalid(MsgProductIDRequired)
	}
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(MsgProductNotFound)
	}
	return product, nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Active:      p.Active,
		Category:    dto.CategorySummary{ID: p.Category.ID, Name: p.Category.Name},
	}
}
