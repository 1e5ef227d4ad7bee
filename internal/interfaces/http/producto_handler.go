package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP para Producto.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// ListPublicos godoc
// @Summary      Productos activos del catálogo
// @Tags         productos
// @Produce      json
// @Param        categoria  query  string  false  "Slug de categoría"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) ListPublicos(c *fiber.Ctx) error {
	out, err := h.uc.ListPublicos(c.Query("categoria"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetPorSlug godoc
// @Summary      Producto activo por slug con su categoría
// @Tags         productos
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductoConCategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/slug/{slug} [get]
func (h *ProductoHandler) GetPorSlug(c *fiber.Ctx) error {
	out, err := h.uc.GetPublicoPorSlug(c.Params("slug"))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Producto no encontrado"})
	}
	return c.JSON(out)
}

// ListAll lista todos los productos con paginación (admin).
func (h *ProductoHandler) ListAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.ListAll(limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea un producto (admin).
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un producto (admin, patch parcial).
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un producto (admin).
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "producto eliminado"})
}
