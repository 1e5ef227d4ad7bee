package dto

import "time"

// SubmitResenaRequest entrada pública para enviar una reseña. El campo Activa
// del payload se ignora: toda reseña pública nace pendiente de moderación.
type SubmitResenaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
	Texto  string `json:"texto" validate:"required,min=1"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Imagen string `json:"imagen"`
}

// CreateResenaRequest entrada admin para crear una reseña. A diferencia del
// envío público, Activa se respeta tal como viene.
type CreateResenaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
	Texto  string `json:"texto" validate:"required,min=1"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Imagen string `json:"imagen"`
	Activa bool   `json:"activa"`
}

// UpdateResenaRequest entrada admin para actualizar una reseña (patch parcial).
// Orden solo se reubica si viene explícito; nunca se recalcula en updates.
type UpdateResenaRequest struct {
	Nombre *string `json:"nombre"`
	Texto  *string `json:"texto"`
	Rating *int    `json:"rating"`
	Imagen *string `json:"imagen"`
	Activa *bool   `json:"activa"`
	Orden  *int    `json:"orden"`
}

// ResenaResponse salida de una reseña.
type ResenaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Texto     string    `json:"texto"`
	Rating    int       `json:"rating"`
	Imagen    string    `json:"imagen"`
	Activa    bool      `json:"activa"`
	Orden     int       `json:"orden"`
	CreatedAt time.Time `json:"createdAt"`
}
