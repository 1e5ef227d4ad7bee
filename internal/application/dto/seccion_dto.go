package dto

import (
	"encoding/json"
	"time"
)

// UpdateSeccionRequest entrada admin para actualizar una sección de portada (patch parcial).
type UpdateSeccionRequest struct {
	Titulo    *string         `json:"titulo"`
	Subtitulo *string         `json:"subtitulo"`
	Activa    *bool           `json:"activa"`
	Orden     *int            `json:"orden"`
	Config    json.RawMessage `json:"config"`
}

// SeccionResponse salida de una sección de portada.
type SeccionResponse struct {
	ID        string          `json:"id"`
	Titulo    string          `json:"titulo"`
	Subtitulo string          `json:"subtitulo"`
	Activa    bool            `json:"activa"`
	Orden     int             `json:"orden"`
	Config    json.RawMessage `json:"config"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
