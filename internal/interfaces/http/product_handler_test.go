package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// seedCatalog crea las categorías Electronics (1) y Books (2).
func seedCatalog(t *testing.T) *fiber.App {
	t.Helper()
	app, _ := newMemoryApp()
	for _, n := range []string{"Electronics", "Books"} {
		status, _ := doJSON(t, app, http.MethodPost, "/categories", `{"name":"`+n+`"}`)
		require.Equal(t, http.StatusCreated, status)
	}
	return app
}

const phoneBody = `{"name":"Phone","description":"Android","price":699.99,"currency":"USD","quantity":3,"active":true,"categoryId":1}`

func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	app, _ := newMemoryApp()

	status, body := doJSON(t, app, http.MethodPost, "/products", `{"name":"Phone","price":699.99,"categoryId":1}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"error": "Category does not exist"}, body)

	_, list := doJSON(t, app, http.MethodGet, "/products", "")
	assert.EqualValues(t, 0, list["count"])
}

func TestCreateProduct_RoundTrip(t *testing.T) {
	app := seedCatalog(t)

	status, created := doJSON(t, app, http.MethodPost, "/products", phoneBody)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Product created successfully", created["message"])
	product := created["product"].(map[string]any)
	assert.NotContains(t, product, "categoryId")
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Electronics"}, product["category"])

	status, fetched := doJSON(t, app, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product fetched successfully", fetched["message"])
	assert.Equal(t, product, fetched["product"])

	got := fetched["product"].(map[string]any)
	assert.Equal(t, "Phone", got["name"])
	assert.Equal(t, "Android", got["description"])
	assert.Equal(t, 699.99, got["price"])
	assert.Equal(t, "USD", got["currency"])
	assert.EqualValues(t, 3, got["quantity"])
	assert.Equal(t, true, got["active"])
}

func TestCreateProduct_PrecioSinRedondeo(t *testing.T) {
	app := seedCatalog(t)

	status, created := doJSON(t, app, http.MethodPost, "/products", `{"name":"Tiny","price":0.001,"categoryId":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 0.001, created["product"].(map[string]any)["price"])

	status, fetched := doJSON(t, app, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created["product"], fetched["product"])
}

func TestCreateProduct_PrecioEsNumeroJSON(t *testing.T) {
	app := seedCatalog(t)
	status, _ := doJSON(t, app, http.MethodPost, "/products", `{"name":"Novel","price":"15.50","categoryId":2}`)
	require.Equal(t, http.StatusCreated, status)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products/1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":15.5`)
	assert.NotContains(t, string(raw), `"price":"`)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	app := seedCatalog(t)

	cases := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"sin nombre", `{"price":10,"categoryId":1}`, http.StatusUnprocessableEntity, "Product name is required"},
		{"precio ausente", `{"name":"A","categoryId":1}`, http.StatusUnprocessableEntity, "Valid product price is required"},
		{"precio texto", `{"name":"A","price":"abc","categoryId":1}`, http.StatusUnprocessableEntity, "Valid product price is required"},
		{"precio cero", `{"name":"A","price":0,"categoryId":1}`, http.StatusUnprocessableEntity, "Valid product price is required"},
		{"precio negativo", `{"name":"A","price":-1,"categoryId":1}`, http.StatusUnprocessableEntity, "Valid product price is required"},
		{"sin categoría", `{"name":"A","price":10}`, http.StatusUnprocessableEntity, "Category ID is required"},
		{"cuerpo inválido", `{"name":`, http.StatusUnprocessableEntity, "Invalid request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doJSON(t, app, http.MethodPost, "/products", tc.body)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, map[string]any{"error": tc.msg}, body)
		})
	}

	_, list := doJSON(t, app, http.MethodGet, "/products", "")
	assert.EqualValues(t, 0, list["count"])
}

func TestCreateProduct_Duplicado(t *testing.T) {
	app := seedCatalog(t)
	status, _ := doJSON(t, app, http.MethodPost, "/products", phoneBody)
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/products", phoneBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, map[string]any{"error": "Product already exists"}, body)
}

func TestGetProduct_Errores(t *testing.T) {
	app := seedCatalog(t)

	status, body := doJSON(t, app, http.MethodGet, "/products/7", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"error": "Product not found"}, body)

	status, body = doJSON(t, app, http.MethodGet, "/products/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]any{"error": "Product id is required"}, body)
}

func TestListProducts(t *testing.T) {
	app := seedCatalog(t)
	doJSON(t, app, http.MethodPost, "/products", phoneBody)
	doJSON(t, app, http.MethodPost, "/products", `{"name":"Novel","price":"15","categoryId":2}`)

	status, body := doJSON(t, app, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Products fetched successfully", body["message"])
	assert.EqualValues(t, 2, body["count"])
	for _, p := range body["products"].([]any) {
		assert.NotContains(t, p.(map[string]any), "categoryId")
		assert.Contains(t, p.(map[string]any), "category")
	}
}

func TestUpdateProduct(t *testing.T) {
	app := seedCatalog(t)
	doJSON(t, app, http.MethodPost, "/products", phoneBody)
	doJSON(t, app, http.MethodPost, "/products", `{"name":"Tablet","price":300,"categoryId":1}`)

	t.Run("ambos negativos", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/products/1", `{"name":"Phone","price":-1,"quantity":-1,"categoryId":1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, map[string]any{"error": "Price and quantity cannot be negative"}, body)
	})

	t.Run("sin categoryId", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/products/1", `{"name":"Phone","price":10}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, map[string]any{"error": "Category does not exist"}, body)
	})

	t.Run("nombre en blanco", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/products/1", `{"name":"  ","categoryId":1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, map[string]any{"error": "Product name is required"}, body)
	})

	t.Run("producto inexistente", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/products/99", `{"name":"Phone","categoryId":1}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, map[string]any{"error": "Product not found"}, body)
	})

	t.Run("nombre de otro producto usa message", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/products/1", `{"name":"Tablet","categoryId":1}`)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, map[string]any{"message": "Product name already exists"}, body)
	})

	t.Run("parcial con cambio de categoría", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/products/1", `{"name":"Phone","price":"650.5","active":false,"categoryId":2}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Product updated successfully", body["message"])
		p := body["product"].(map[string]any)
		assert.Equal(t, 650.5, p["price"])
		assert.Equal(t, false, p["active"])
		assert.Equal(t, "Android", p["description"])
		assert.Equal(t, map[string]any{"id": float64(2), "name": "Books"}, p["category"])
		assert.NotContains(t, p, "categoryId")
	})
}

func TestDeleteProduct(t *testing.T) {
	app := seedCatalog(t)
	doJSON(t, app, http.MethodPost, "/products", phoneBody)

	status, body := doJSON(t, app, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product successfully deleted", body["message"])
	assert.Equal(t, "Electronics", body["product"].(map[string]any)["category"].(map[string]any)["name"])

	status, body = doJSON(t, app, http.MethodDelete, "/products/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"error": "Product not found"}, body)

	// Sin productos la categoría ya se puede borrar.
	status, _ = doJSON(t, app, http.MethodDelete, "/categories/1", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestListProductsByCategory(t *testing.T) {
	app := seedCatalog(t)
	doJSON(t, app, http.MethodPost, "/products", `{"name":"Tablet","price":300,"categoryId":1}`)
	doJSON(t, app, http.MethodPost, "/products", phoneBody)
	doJSON(t, app, http.MethodPost, "/products", `{"name":"Novel","price":15,"categoryId":2}`)

	status, body := doJSON(t, app, http.MethodGet, "/products/category/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Products fetched successfully by categoryId", body["message"])
	assert.EqualValues(t, 2, body["count"])
	list := body["products"].([]any)
	assert.Equal(t, "Phone", list[0].(map[string]any)["name"])
	assert.Equal(t, "Tablet", list[1].(map[string]any)["name"])

	status, body = doJSON(t, app, http.MethodGet, "/products/category/999", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]any{"message": "Category id is required or not found"}, body)
}

func TestProducts_ErrorInterno(t *testing.T) {
	app := buildTestApp(failingCategories{}, memory.NewStore().Products())

	status, body := doJSON(t, app, http.MethodPost, "/products", `{"name":"Phone","price":1,"categoryId":1}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]any{"error": "Internal server error"}, body)

	status, body = doJSON(t, app, http.MethodGet, "/products/category/1", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]any{"message": "Internal server error"}, body)
}
