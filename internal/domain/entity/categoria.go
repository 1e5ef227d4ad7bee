package entity

import "time"

// Categoria agrupa productos del catálogo. Slug es único y Activo controla
// la visibilidad en los listados públicos.
type Categoria struct {
	ID        string
	Nombre    string
	Slug      string // único
	Activo    bool
	Orden     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoriaConConteo es la proyección pública: categoría + cantidad de productos activos.
type CategoriaConConteo struct {
	Categoria
	TotalProductos int
}
