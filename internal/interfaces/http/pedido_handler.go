package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// PedidoHandler maneja las peticiones HTTP para Pedido.
type PedidoHandler struct {
	uc       *usecase.PedidoUseCase
	configUC *usecase.ConfiguracionUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, configUC *usecase.ConfiguracionUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, configUC: configUC}
}

// Checkout godoc
// @Summary      Crear un pedido con el carrito actual
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Items y cupón opcional"
// @Success      201  {object}  dto.PedidoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MisPedidos godoc
// @Summary      Pedidos del usuario autenticado
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pedidos/mis-pedidos [get]
func (h *PedidoHandler) MisPedidos(c *fiber.Ctx) error {
	out, err := h.uc.ListByUsuario(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PDF descarga el comprobante PDF de un pedido. Un cliente solo puede pedir
// los suyos.
func (h *PedidoHandler) PDF(c *fiber.Ctx) error {
	nombre, err := h.configUC.NombreTienda()
	if err != nil {
		return responderError(c, err)
	}
	pdf, err := h.uc.GenerarPDF(c.Params("id"), GetUserID(c), GetRol(c), nombre)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// ListAll lista todos los pedidos con paginación (admin).
func (h *PedidoHandler) ListAll(c *fiber.Ctx) error {
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
