package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Toda lectura trae el resumen de la categoría.
const productSelect = `
		SELECT p.id, p.name, p.description, p.price, p.currency, p.quantity, p.active, p.category_id, c.id, c.name
		FROM products p JOIN categories c ON c.id = p.category_id`

// productFromCTE lee la fila escrita por un CTE "p" con las mismas columnas que productSelect.
const productFromCTE = `
		SELECT p.id, p.name, p.description, p.price, p.currency, p.quantity, p.active, p.category_id, c.id, c.name
		FROM p JOIN categories c ON c.id = p.category_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y lo relee tal como quedó guardado (ID, price, categoría).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		WITH p AS (
			INSERT INTO products (name, description, price, currency, quantity, active, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)` + productFromCTE
	saved, err := scanProduct(r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Currency,
		product.Quantity, product.Active, product.CategoryID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	*product = *saved
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, productSelect+` WHERE p.id = $1`, id)
}

// GetByName obtiene un producto por nombre exacto.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.getOne(ctx, productSelect+` WHERE p.name = $1`, name)
}

// GetByNameExcluding busca un producto con ese nombre cuyo id sea distinto de excludeID.
func (r *ProductRepo) GetByNameExcluding(ctx context.Context, name string, excludeID int64) (*entity.Product, error) {
	return r.getOne(ctx, productSelect+` WHERE p.name = $1 AND p.id <> $2 LIMIT 1`, name, excludeID)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables de un producto existente y lo relee de la base.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		WITH p AS (
			UPDATE products
			SET name = $2, description = $3, price = $4, currency = $5, quantity = $6, active = $7, category_id = $8
			WHERE id = $1
			RETURNING *
		)` + productFromCTE
	saved, err := scanProduct(r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Currency,
		product.Quantity, product.Active, product.CategoryID,
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrNotFound
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	*product = *saved
	return nil
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, productSelect+` ORDER BY p.id ASC`)
}

// ListByCategory lista los productos de una categoría por nombre ascendente.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.list(ctx, productSelect+` WHERE p.category_id = $1 ORDER BY p.name ASC`, categoryID)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los productos que referencian la categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE category_id = $1`, categoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Quantity, &p.Active,
		&p.CategoryID, &p.Category.ID, &p.Category.Name,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
