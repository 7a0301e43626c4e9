package entity

import "github.com/shopspring/decimal"

// Product representa un artículo vendible que pertenece a una sola categoría.
// Los campos puntero son opcionales (NULL en la base).
type Product struct {
	ID          int64
	Name        string // único
	Description *string
	Price       decimal.Decimal
	Currency    *string
	Quantity    *int
	Active      *bool
	CategoryID  int64
	Category    CategoryRef // se llena al leer (JOIN con categories)
}
