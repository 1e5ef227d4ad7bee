package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// BannerHandler maneja las peticiones HTTP para Banner.
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler construye el handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// ListPublicos godoc
// @Summary      Banners activos del carrusel
// @Tags         banners
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/banners [get]
func (h *BannerHandler) ListPublicos(c *fiber.Ctx) error {
	out, err := h.uc.ListPublicos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListAll lista todos los banners (admin).
func (h *BannerHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea un banner (admin).
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un banner (admin, patch parcial).
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "banner no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un banner (admin).
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "banner eliminado"})
}
