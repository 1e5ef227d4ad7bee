package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// NovedadHandler maneja las peticiones HTTP para Novedad, incluido el feed RSS.
type NovedadHandler struct {
	uc       *usecase.NovedadUseCase
	configUC *usecase.ConfiguracionUseCase
	baseURL  string
}

// NewNovedadHandler construye el handler.
func NewNovedadHandler(uc *usecase.NovedadUseCase, configUC *usecase.ConfiguracionUseCase, baseURL string) *NovedadHandler {
	return &NovedadHandler{uc: uc, configUC: configUC, baseURL: baseURL}
}

// ListPublicas godoc
// @Summary      Últimas novedades activas
// @Tags         novedades
// @Produce      json
// @Success      200  {array}  dto.NovedadResponse
// @Router       /api/novedades [get]
func (h *NovedadHandler) ListPublicas(c *fiber.Ctx) error {
	// El storefront muestra las 5 más recientes.
	out, err := h.uc.ListPublicas(5)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// FeedRSS sirve el feed RSS 2.0 de novedades activas.
func (h *NovedadHandler) FeedRSS(c *fiber.Ctx) error {
	nombre, err := h.configUC.NombreTienda()
	if err != nil {
		return responderError(c, err)
	}
	feed, err := h.uc.FeedRSS(nombre, h.baseURL)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(feed)
}

// ListAll lista todas las novedades (admin).
func (h *NovedadHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea una novedad (admin). La respuesta usa el envoltorio {novedad}
// que espera el panel.
func (h *NovedadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNovedadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovedadEnvelope{Novedad: *out})
}

// Update actualiza una novedad (admin, patch parcial).
func (h *NovedadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNovedadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "novedad no encontrada"})
	}
	return c.JSON(dto.NovedadEnvelope{Novedad: *out})
}

// Delete elimina una novedad (admin).
func (h *NovedadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "novedad eliminada"})
}
