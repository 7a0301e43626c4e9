package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la app completa sobre repositorios dados.
func buildTestApp(categories repository.CategoryRepository, products repository.ProductRepository) *fiber.App {
	log := logger.Nop()
	app := apphttp.NewApp("catalogo-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categories, products),
		ProductUC:  usecase.NewProductUseCase(products, categories),
		Log:        log,
	})
	return app
}

// newMemoryApp arma la app sobre un almacén en memoria vacío.
func newMemoryApp() (*fiber.App, *memory.Store) {
	store := memory.NewStore()
	return buildTestApp(store.Categories(), store.Products()), store
}

// doJSON lanza una petición y decodifica el cuerpo JSON en un mapa.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	}
	return resp.StatusCode, out
}

// failingCategories simula una base caída en todas las operaciones.
type failingCategories struct{}

var errDBDown = errors.New("connection refused: 10.0.0.5:5432")

func (failingCategories) Create(context.Context, *entity.Category) error { return errDBDown }
func (failingCategories) GetByID(context.Context, int64) (*entity.Category, error) {
	return nil, errDBDown
}
func (failingCategories) GetByName(context.Context, string) (*entity.Category, error) {
	return nil, errDBDown
}
func (failingCategories) Update(context.Context, *entity.Category) error { return errDBDown }
func (failingCategories) List(context.Context) ([]*entity.Category, error) {
	return nil, errDBDown
}
func (failingCategories) Delete(context.Context, int64) error { return errDBDown }

var _ repository.CategoryRepository = failingCategories{}

func TestRoot(t *testing.T) {
	app, _ := newMemoryApp()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `"API is working fine"`, string(raw))
	require.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRutaInexistente(t *testing.T) {
	app, _ := newMemoryApp()
	status, body := doJSON(t, app, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body, "error")
}
