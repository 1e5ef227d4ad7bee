package entity

import "time"

// Banner es una pieza del carrusel de portada. Lista ordenada por Orden
// ascendente y filtrada por Activo en la lectura pública.
type Banner struct {
	ID        string
	Titulo    string
	Imagen    string
	Enlace    string
	Activo    bool
	Orden     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
