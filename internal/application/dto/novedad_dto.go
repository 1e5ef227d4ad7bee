package dto

import "time"

// CreateNovedadRequest entrada admin para crear una novedad. Si FechaPublicacion
// viene en cero se usa el instante actual.
type CreateNovedadRequest struct {
	Titulo           string    `json:"titulo" validate:"required,min=1,max=200"`
	Contenido        string    `json:"contenido"`
	Imagen           string    `json:"imagen"`
	Activa           bool      `json:"activa"`
	FechaPublicacion time.Time `json:"fechaPublicacion"`
}

// UpdateNovedadRequest entrada admin para actualizar una novedad (patch parcial).
type UpdateNovedadRequest struct {
	Titulo           *string    `json:"titulo"`
	Contenido        *string    `json:"contenido"`
	Imagen           *string    `json:"imagen"`
	Activa           *bool      `json:"activa"`
	FechaPublicacion *time.Time `json:"fechaPublicacion"`
}

// NovedadResponse salida de una novedad.
type NovedadResponse struct {
	ID               string    `json:"id"`
	Titulo           string    `json:"titulo"`
	Contenido        string    `json:"contenido"`
	Imagen           string    `json:"imagen"`
	Activa           bool      `json:"activa"`
	FechaPublicacion time.Time `json:"fechaPublicacion"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NovedadEnvelope respuesta admin de alta/edición: { "novedad": {...} }.
// El envoltorio es distinto al del resto de los recursos y se conserva así
// por compatibilidad con el panel.
type NovedadEnvelope struct {
	Novedad NovedadResponse `json:"novedad"`
}
