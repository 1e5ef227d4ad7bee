package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cupón.
const (
	CuponPorcentaje = "porcentaje"
	CuponMonto      = "monto"
)

// Cupon es una regla de descuento con ventana de vigencia y tope de usos.
// Codigo es único.
type Cupon struct {
	ID              string
	Codigo          string // único
	Tipo            string // "porcentaje" | "monto"
	Valor           decimal.Decimal
	MinimoCompra    decimal.Decimal
	MaximoDescuento decimal.Decimal // 0 = sin tope (solo aplica a porcentaje)
	UsosMaximos     int             // 0 = ilimitado
	Usos            int
	FechaInicio     time.Time
	FechaFin        time.Time
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
