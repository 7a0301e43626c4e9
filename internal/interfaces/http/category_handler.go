package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.CategoryEnvelope
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return writeMessage(c, fiber.StatusUnprocessableEntity, msgInvalidBody, keyError)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CategoryEnvelope{
		Message:  "Category created successfully",
		Category: *out,
	})
}

// List godoc
// @Summary      Listar categorías (por nombre)
// @Tags         Categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.JSON(dto.CategoryListResponse{
		Message:    "Categories fetched successfully",
		Categories: items,
		Count:      len(items),
	})
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "ID de la categoría"
// @Param        body  body      dto.UpdateCategoryRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.CategoryEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return writeMessage(c, fiber.StatusUnprocessableEntity, msgInvalidBody, keyError)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.JSON(dto.CategoryEnvelope{
		Message:  "Category updated successfully",
		Category: *out,
	})
}

// Delete godoc
// @Summary      Eliminar categoría (solo si ningún producto la usa)
// @Tags         Categories
// @Produce      json
// @Param        id   path      int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryEnvelope
// @Failure      404  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.MessageResponse
// @Failure      422  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, keyMessage)
	}
	return c.JSON(dto.CategoryEnvelope{
		Message:  "Category deleted successfully",
		Category: *out,
	})
}
