package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCuponRequest entrada admin para crear un cupón.
type CreateCuponRequest struct {
	Codigo          string          `json:"codigo" validate:"required,min=1,max=50"`
	Tipo            string          `json:"tipo" validate:"required"`
	Valor           decimal.Decimal `json:"valor"`
	MinimoCompra    decimal.Decimal `json:"minimoCompra"`
	MaximoDescuento decimal.Decimal `json:"maximoDescuento"`
	UsosMaximos     int             `json:"usosMaximos"`
	FechaInicio     time.Time       `json:"fechaInicio"`
	FechaFin        time.Time       `json:"fechaFin"`
	Activo          bool            `json:"activo"`
}

// UpdateCuponRequest entrada admin para actualizar un cupón (patch parcial).
type UpdateCuponRequest struct {
	Codigo          *string          `json:"codigo"`
	Tipo            *string          `json:"tipo"`
	Valor           *decimal.Decimal `json:"valor"`
	MinimoCompra    *decimal.Decimal `json:"minimoCompra"`
	MaximoDescuento *decimal.Decimal `json:"maximoDescuento"`
	UsosMaximos     *int             `json:"usosMaximos"`
	FechaInicio     *time.Time       `json:"fechaInicio"`
	FechaFin        *time.Time       `json:"fechaFin"`
	Activo          *bool            `json:"activo"`
}

// CuponResponse salida de un cupón.
type CuponResponse struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo"`
	Tipo            string          `json:"tipo"`
	Valor           decimal.Decimal `json:"valor"`
	MinimoCompra    decimal.Decimal `json:"minimoCompra"`
	MaximoDescuento decimal.Decimal `json:"maximoDescuento"`
	UsosMaximos     int             `json:"usosMaximos"`
	Usos            int             `json:"usos"`
	FechaInicio     time.Time       `json:"fechaInicio"`
	FechaFin        time.Time       `json:"fechaFin"`
	Activo          bool            `json:"activo"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ValidarCuponRequest entrada pública: código + total del carrito.
type ValidarCuponRequest struct {
	Codigo string          `json:"codigo" validate:"required"`
	Total  decimal.Decimal `json:"total"`
}

// ValidarCuponResponse salida pública de la validación de un cupón.
type ValidarCuponResponse struct {
	Valido    bool            `json:"valido"`
	Descuento decimal.Decimal `json:"descuento"`
	Motivo    string          `json:"motivo,omitempty"` // vacío si el cupón es válido
}
