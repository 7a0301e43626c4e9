package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// price sale como número JSON (699.99), no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateProductRequest entrada para crear un producto.
// Price llega crudo: se acepta número o string numérico y se valida en el caso de uso.
type CreateProductRequest struct {
	Name        string          `json:"name" example:"Phone"`
	Description *string         `json:"description" example:"Android smartphone"`
	Price       json.RawMessage `json:"price" swaggertype:"number" example:"699.99"`
	Currency    *string         `json:"currency" example:"USD"`
	Quantity    *int            `json:"quantity" example:"10"`
	Active      *bool           `json:"active" example:"true"`
	CategoryID  int64           `json:"categoryId" example:"1"`
}

// ParsePrice interpreta Price. ok=false si falta, es null o no es numérico.
func (r CreateProductRequest) ParsePrice() (decimal.Decimal, bool) {
	raw := bytes.TrimSpace(r.Price)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, false
		}
		s = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// UpdateProductRequest entrada para actualizar un producto. Los nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"name" example:"Phone X"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number" example:"649.5"`
	Currency    *string          `json:"currency"`
	Quantity    *int             `json:"quantity"`
	Active      *bool            `json:"active"`
	CategoryID  *int64           `json:"categoryId" example:"1"`
}

// CategorySummary resumen {id, name} embebido en cada producto.
type CategorySummary struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Electronics"`
}

// ProductResponse salida de un producto: categoryId nunca se expone.
type ProductResponse struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"Phone"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"699.99"`
	Currency    *string         `json:"currency"`
	Quantity    *int            `json:"quantity"`
	Active      *bool           `json:"active"`
	Category    CategorySummary `json:"category"`
}

// ProductEnvelope respuesta con un producto.
type ProductEnvelope struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// ProductListResponse listado de productos con conteo.
type ProductListResponse struct {
	Message  string            `json:"message"`
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}
