// Package memory implementa los puertos de repositorio en memoria (DB_DRIVER=memory y tests).
// Reproduce las restricciones de la base: nombres únicos, llave foránea y ordenamiento.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// Store guarda ambas tablas; los repositorios comparten el mismo Store.
type Store struct {
	mu          sync.RWMutex
	categories  map[int64]entity.Category
	products    map[int64]entity.Product
	categorySeq int64
	productSeq  int64
	now         func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
		now:        time.Now,
	}
}

// Categories devuelve el repositorio de categorías sobre este almacén.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devuelve el repositorio de productos sobre este almacén.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// CategoryRepo adaptador en memoria de CategoryRepository.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.categoryNameTaken(category.Name, 0) {
		return domain.ErrDuplicate
	}
	s.categorySeq++
	now := s.now()
	category.ID = s.categorySeq
	category.CreatedAt = now
	category.UpdatedAt = now
	s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.categories[category.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if s.categoryNameTaken(category.Name, category.ID) {
		return domain.ErrDuplicate
	}
	current.Name = category.Name
	current.UpdatedAt = s.now()
	s.categories[current.ID] = current
	*category = current
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.CategoryID == id {
			return domain.ErrConflict
		}
	}
	delete(s.categories, id)
	return nil
}

// ProductRepo adaptador en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.productNameTaken(product.Name, 0) {
		return domain.ErrDuplicate
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	s.productSeq++
	product.ID = s.productSeq
	s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.s.withCategory(p), nil
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.GetByNameExcluding(ctx, name, 0)
}

func (r *ProductRepo) GetByNameExcluding(_ context.Context, name string, excludeID int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Name == name && p.ID != excludeID {
			return r.s.withCategory(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	if s.productNameTaken(product.Name, product.ID) {
		return domain.ErrDuplicate
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	stored := *product
	stored.Category = entity.CategoryRef{}
	s.products[product.ID] = stored
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	list := r.s.filterProducts(func(entity.Product) bool { return true })
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *ProductRepo) ListByCategory(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	list := r.s.filterProducts(func(p entity.Product) bool { return p.CategoryID == categoryID })
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ProductRepo) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// Helpers; el llamador ya tiene el lock.

func (s *Store) categoryNameTaken(name string, exceptID int64) bool {
	for _, c := range s.categories {
		if c.Name == name && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) productNameTaken(name string, exceptID int64) bool {
	for _, p := range s.products {
		if p.Name == name && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) withCategory(p entity.Product) *entity.Product {
	if c, ok := s.categories[p.CategoryID]; ok {
		p.Category = c.Ref()
	}
	return &p
}

func (s *Store) filterProducts(keep func(entity.Product) bool) []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Product, 0)
	for _, p := range s.products {
		if keep(p) {
			list = append(list, s.withCategory(p))
		}
	}
	return list
}
