package entity

import "time"

// Category agrupa productos. Name es único.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref devuelve el resumen {id, name} que se embebe en los productos.
func (c *Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name}
}

// CategoryRef resumen de categoría embebido en Product.
type CategoryRef struct {
	ID   int64
	Name string
}
