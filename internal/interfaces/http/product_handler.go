package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeMessage(c, fiber.StatusUnprocessableEntity, msgInvalidBody, keyError)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductEnvelope{
		Message: "Product created successfully",
		Product: *out,
	})
}

// List godoc
// @Summary      Listar productos
// @Tags         Products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.JSON(dto.ProductListResponse{
		Message:  "Products fetched successfully",
		Products: items,
		Count:    len(items),
	})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         Products
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.ProductEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.JSON(dto.ProductEnvelope{
		Message: "Product fetched successfully",
		Product: *out,
	})
}

// Update godoc
// @Summary      Actualizar producto (parcial; categoryId y name obligatorios)
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "ID del producto"
// @Param        body  body      dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.MessageResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeMessage(c, fiber.StatusUnprocessableEntity, msgInvalidBody, keyError)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		// El conflicto de nombre responde con "message".
		if errors.Is(err, domain.ErrConflict) {
			return writeError(c, h.log, err, keyMessage)
		}
		return writeError(c, h.log, err, keyError)
	}
	return c.JSON(dto.ProductEnvelope{
		Message: "Product updated successfully",
		Product: *out,
	})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         Products
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.ProductEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, keyError)
	}
	return c.JSON(dto.ProductEnvelope{
		Message: "Product successfully deleted",
		Product: *out,
	})
}

// ListByCategory godoc
// @Summary      Listar productos de una categoría (por nombre)
// @Tags         Products
// @Produce      json
// @Param        categoryId  path      int  true  "ID de la categoría"
// @Success      200         {object}  dto.ProductListResponse
// @Failure      422         {object}  dto.MessageResponse
// @Failure      500         {object}  dto.MessageResponse
// @Router       /products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	items, err := h.uc.ListByCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return writeError(c, h.log, err, keyMessage)
	}
	return c.JSON(dto.ProductListResponse{
		Message:  "Products fetched successfully by categoryId",
		Products: items,
		Count:    len(items),
	})
}
