package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sync"
)

// SyncHandler dispara la exportación a Google Sheets desde el panel admin.
type SyncHandler struct {
	uc *sync.SyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *sync.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Exportar corre la sincronización completa. El primer fallo aborta y se
// responde como error; no hay éxito parcial.
func (h *SyncHandler) Exportar(c *fiber.Ctx) error {
	if h.uc == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: "sincronización con Sheets no configurada"})
	}
	if err := h.uc.Exportar(c.Context()); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "sincronización completada"})
}
