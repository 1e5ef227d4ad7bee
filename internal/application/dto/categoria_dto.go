package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría. Si Slug viene vacío
// se deriva del nombre.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
	Slug   string `json:"slug"`
	Activo *bool  `json:"activo"`
	Orden  int    `json:"orden"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría (patch parcial).
type UpdateCategoriaRequest struct {
	Nombre *string `json:"nombre"`
	Slug   *string `json:"slug"`
	Activo *bool   `json:"activo"`
	Orden  *int    `json:"orden"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Slug      string    `json:"slug"`
	Activo    bool      `json:"activo"`
	Orden     int       `json:"orden"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoriaPublicaResponse salida pública: categoría + conteo de productos activos.
type CategoriaPublicaResponse struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	Slug           string `json:"slug"`
	Orden          int    `json:"orden"`
	TotalProductos int    `json:"totalProductos"`
}
