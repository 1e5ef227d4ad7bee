package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ResenaHandler maneja las peticiones HTTP para Resena.
type ResenaHandler struct {
	uc *usecase.ResenaUseCase
}

// NewResenaHandler construye el handler.
func NewResenaHandler(uc *usecase.ResenaUseCase) *ResenaHandler {
	return &ResenaHandler{uc: uc}
}

// ListPublicas godoc
// @Summary      Reseñas activas en orden de publicación
// @Tags         resenas
// @Produce      json
// @Success      200  {array}  dto.ResenaResponse
// @Router       /api/resenas [get]
func (h *ResenaHandler) ListPublicas(c *fiber.Ctx) error {
	out, err := h.uc.ListPublicas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar una reseña (queda pendiente de moderación)
// @Tags         resenas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitResenaRequest  true  "Reseña"
// @Success      201  {object}  dto.ResenaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/resenas [post]
func (h *ResenaHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitResenaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAll lista todas las reseñas, incluidas las pendientes (admin).
func (h *ResenaHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea una reseña desde el panel, respetando el flag activa (admin).
func (h *ResenaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResenaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza una reseña (admin, patch parcial).
func (h *ResenaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateResenaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "reseña no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una reseña (admin).
func (h *ResenaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "reseña eliminada"})
}
