package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// UsuarioHandler maneja las peticiones HTTP admin sobre usuarios.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// ListConPedidos lista todos los usuarios con su conteo de pedidos (admin).
func (h *UsuarioHandler) ListConPedidos(c *fiber.Ctx) error {
	out, err := h.uc.ListConPedidos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un usuario (admin, patch parcial). Cubre la gestión del
// programa mayorista: estado, unidades y vencimiento.
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un usuario (admin).
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "usuario eliminado"})
}
