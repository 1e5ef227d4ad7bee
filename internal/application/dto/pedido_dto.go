package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CheckoutItemRequest una línea del carrito al crear un pedido.
type CheckoutItemRequest struct {
	ProductoID string `json:"productoId" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"min=1"`
}

// CheckoutRequest entrada para crear un pedido.
type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,min=1"`
	Cupon string                `json:"cupon"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID          string              `json:"id"`
	UsuarioID   string              `json:"usuarioId"`
	Items       []entity.PedidoItem `json:"items"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Descuento   decimal.Decimal     `json:"descuento"`
	Total       decimal.Decimal     `json:"total"`
	CuponCodigo string              `json:"cuponCodigo,omitempty"`
	Estado      string              `json:"estado"`
	CreatedAt   time.Time           `json:"createdAt"`
}
