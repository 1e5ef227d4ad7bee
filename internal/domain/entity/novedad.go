package entity

import "time"

// Novedad es un anuncio o noticia de la tienda. Activa controla la visibilidad
// pública; el listado público ordena por FechaPublicacion descendente.
type Novedad struct {
	ID               string
	Titulo           string
	Contenido        string
	Imagen           string
	Activa           bool
	FechaPublicacion time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
