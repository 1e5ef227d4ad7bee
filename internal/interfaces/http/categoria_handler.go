package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CategoriaHandler maneja las peticiones HTTP para Categoria.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// ListPublicas godoc
// @Summary      Categorías activas con conteo de productos
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaPublicaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) ListPublicas(c *fiber.Ctx) error {
	out, err := h.uc.ListPublicas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListAll lista todas las categorías sin filtro de visibilidad (admin).
func (h *CategoriaHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea una categoría (admin).
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza una categoría (admin, patch parcial).
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una categoría (admin).
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "categoría eliminada"})
}
