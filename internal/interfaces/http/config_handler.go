package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ConfigHandler maneja las peticiones HTTP para Configuracion.
type ConfigHandler struct {
	uc *usecase.ConfiguracionUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfiguracionUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// GetPublica godoc
// @Summary      Configuración pública de la tienda
// @Tags         config
// @Produce      json
// @Success      200  {object}  dto.ConfigPublicaResponse
// @Router       /api/config [get]
func (h *ConfigHandler) GetPublica(c *fiber.Ctx) error {
	out, err := h.uc.GetPublica()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Actualizar upsertea pares clave/valor (admin).
func (h *ConfigHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.UpdateConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if len(in.Valores) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "valores es requerido"})
	}
	if err := h.uc.Actualizar(in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "configuración actualizada"})
}
