package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto. Si Slug viene vacío
// se deriva del nombre.
type CreateProductoRequest struct {
	CategoriaID     string          `json:"categoriaId" validate:"required"`
	Nombre          string          `json:"nombre" validate:"required,min=1,max=200"`
	Slug            string          `json:"slug"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	PrecioMayorista decimal.Decimal `json:"precioMayorista"`
	Imagen          string          `json:"imagen"`
	Activo          *bool           `json:"activo"`
}

// UpdateProductoRequest entrada para actualizar un producto (patch parcial).
type UpdateProductoRequest struct {
	CategoriaID     *string          `json:"categoriaId"`
	Nombre          *string          `json:"nombre"`
	Slug            *string          `json:"slug"`
	Descripcion     *string          `json:"descripcion"`
	Precio          *decimal.Decimal `json:"precio"`
	PrecioMayorista *decimal.Decimal `json:"precioMayorista"`
	Imagen          *string          `json:"imagen"`
	Activo          *bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID              string          `json:"id"`
	CategoriaID     string          `json:"categoriaId"`
	Nombre          string          `json:"nombre"`
	Slug            string          `json:"slug"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	PrecioMayorista decimal.Decimal `json:"precioMayorista"`
	Imagen          string          `json:"imagen"`
	Activo          bool            `json:"activo"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CategoriaResumen subset desnormalizado de la categoría en la respuesta por slug.
type CategoriaResumen struct {
	Nombre string `json:"nombre"`
	Slug   string `json:"slug"`
}

// ProductoConCategoriaResponse salida pública del producto por slug.
type ProductoConCategoriaResponse struct {
	ProductoResponse
	Categoria CategoriaResumen `json:"categoria"`
}
