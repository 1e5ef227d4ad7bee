package dto

import "time"

// CreateBannerRequest entrada admin para crear un banner. Orden en cero =
// append al final (max+1).
type CreateBannerRequest struct {
	Titulo string `json:"titulo"`
	Imagen string `json:"imagen" validate:"required"`
	Enlace string `json:"enlace"`
	Activo bool   `json:"activo"`
	Orden  int    `json:"orden"`
}

// UpdateBannerRequest entrada admin para actualizar un banner (patch parcial).
type UpdateBannerRequest struct {
	Titulo *string `json:"titulo"`
	Imagen *string `json:"imagen"`
	Enlace *string `json:"enlace"`
	Activo *bool   `json:"activo"`
	Orden  *int    `json:"orden"`
}

// BannerResponse salida de un banner.
type BannerResponse struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Imagen    string    `json:"imagen"`
	Enlace    string    `json:"enlace"`
	Activo    bool      `json:"activo"`
	Orden     int       `json:"orden"`
	CreatedAt time.Time `json:"createdAt"`
}
