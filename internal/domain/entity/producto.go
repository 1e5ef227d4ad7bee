package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un artículo del catálogo. Slug es único a nivel global y sirve
// como clave de consulta pública. PrecioMayorista aplica a usuarios con
// programa mayorista vigente; si es cero se usa Precio.
type Producto struct {
	ID              string
	CategoriaID     string
	Nombre          string
	Slug            string // único
	Descripcion     string
	Precio          decimal.Decimal
	PrecioMayorista decimal.Decimal
	Imagen          string
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PrecioPara devuelve el precio aplicable según condición mayorista.
func (p *Producto) PrecioPara(mayorista bool) decimal.Decimal {
	if mayorista && p.PrecioMayorista.IsPositive() {
		return p.PrecioMayorista
	}
	return p.Precio
}

// ProductoConCategoria es la proyección pública por slug: producto + subset
// desnormalizado de su categoría (solo nombre y slug).
type ProductoConCategoria struct {
	Producto
	CategoriaNombre string
	CategoriaSlug   string
}
