package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CuponHandler maneja las peticiones HTTP para Cupon.
type CuponHandler struct {
	uc *usecase.CuponUseCase
}

// NewCuponHandler construye el handler.
func NewCuponHandler(uc *usecase.CuponUseCase) *CuponHandler {
	return &CuponHandler{uc: uc}
}

// Validar godoc
// @Summary      Validar un cupón contra un total
// @Description  Un cupón inexistente o rechazado responde 200 con valido=false
// @Description  y el motivo; no consume usos.
// @Tags         cupones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarCuponRequest  true  "Código y total"
// @Success      200  {object}  dto.ValidarCuponResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cupones/validar [post]
func (h *CuponHandler) Validar(c *fiber.Ctx) error {
	var in dto.ValidarCuponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Validar(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListAll lista todos los cupones (admin).
func (h *CuponHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea un cupón (admin).
func (h *CuponHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCuponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un cupón (admin, patch parcial).
func (h *CuponHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCuponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "cupón no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un cupón (admin).
func (h *CuponHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "cupón eliminado"})
}
