package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	PedidoPendiente = "pendiente"
	PedidoPagado    = "pagado"
	PedidoEnviado   = "enviado"
	PedidoCancelado = "cancelado"
)

// Pedido es una compra de un usuario. Items guarda el detalle serializado
// (producto, cantidad, precio unitario al momento de la compra).
type Pedido struct {
	ID          string
	UsuarioID   string
	Items       json.RawMessage
	Subtotal    decimal.Decimal
	Descuento   decimal.Decimal
	Total       decimal.Decimal
	CuponCodigo string // vacío si no se aplicó cupón
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PedidoItem es una línea del pedido tal como se serializa en Items.
type PedidoItem struct {
	ProductoID string          `json:"productoId"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}
