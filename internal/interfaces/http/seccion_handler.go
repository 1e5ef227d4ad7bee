package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// SeccionHandler maneja las peticiones HTTP para SeccionHomepage.
type SeccionHandler struct {
	uc *usecase.SeccionUseCase
}

// NewSeccionHandler construye el handler.
func NewSeccionHandler(uc *usecase.SeccionUseCase) *SeccionHandler {
	return &SeccionHandler{uc: uc}
}

// ListPublicas devuelve las secciones activas que componen la portada.
func (h *SeccionHandler) ListPublicas(c *fiber.Ctx) error {
	out, err := h.uc.ListPublicas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListAll lista todas las secciones (admin).
func (h *SeccionHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una sección (admin, patch parcial).
func (h *SeccionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSeccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "sección no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una sección (admin).
func (h *SeccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "sección eliminada"})
}
