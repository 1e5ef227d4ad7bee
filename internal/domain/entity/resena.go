package entity

import "time"

// Resena es una reseña de cliente. Activa controla la visibilidad pública
// (las reseñas enviadas por el público nacen en false, pendientes de moderación).
// Orden es una secuencia densa de solo-append: la siguiente es max(orden)+1.
type Resena struct {
	ID        string
	Nombre    string
	Texto     string
	Rating    int // 1..5
	Imagen    string
	Activa    bool
	Orden     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
