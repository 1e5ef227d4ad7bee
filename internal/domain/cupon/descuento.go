// Package cupon contiene la lógica pura de evaluación de cupones de descuento.
package cupon

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Motivos de rechazo de un cupón.
var (
	ErrInactivo          = errors.New("el cupón no está activo")
	ErrNoVigente         = errors.New("el cupón está fuera de su ventana de vigencia")
	ErrAgotado           = errors.New("el cupón alcanzó su máximo de usos")
	ErrMinimoNoAlcanzado = errors.New("el total no alcanza el mínimo de compra del cupón")
	ErrTipoDesconocido   = errors.New("tipo de cupón desconocido")
)

var cien = decimal.NewFromInt(100)

// Calcular evalúa el cupón contra un total de compra en el instante dado y
// devuelve el descuento a aplicar. El descuento nunca supera el total ni,
// para cupones porcentuales, el MaximoDescuento (si está definido).
func Calcular(c *entity.Cupon, total decimal.Decimal, ahora time.Time) (decimal.Decimal, error) {
	if !c.Activo {
		return decimal.Zero, ErrInactivo
	}
	if ahora.Before(c.FechaInicio) || ahora.After(c.FechaFin) {
		return decimal.Zero, ErrNoVigente
	}
	if c.UsosMaximos > 0 && c.Usos >= c.UsosMaximos {
		return decimal.Zero, ErrAgotado
	}
	if c.MinimoCompra.IsPositive() && total.LessThan(c.MinimoCompra) {
		return decimal.Zero, ErrMinimoNoAlcanzado
	}

	var descuento decimal.Decimal
	switch c.Tipo {
	case entity.CuponPorcentaje:
		descuento = total.Mul(c.Valor).Div(cien).Round(2)
		if c.MaximoDescuento.IsPositive() && descuento.GreaterThan(c.MaximoDescuento) {
			descuento = c.MaximoDescuento
		}
	case entity.CuponMonto:
		descuento = c.Valor
	default:
		return decimal.Zero, ErrTipoDesconocido
	}

	if descuento.GreaterThan(total) {
		descuento = total
	}
	return descuento, nil
}
