package entity

import (
	"encoding/json"
	"time"
)

// SeccionHomepage es un bloque editable de la portada (hero, destacados, etc.).
// Config guarda los parámetros propios de cada tipo de bloque.
type SeccionHomepage struct {
	ID        string
	Titulo    string
	Subtitulo string
	Activa    bool
	Orden     int
	Config    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
