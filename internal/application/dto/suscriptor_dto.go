package dto

// SuscribirRequest entrada pública del newsletter.
type SuscribirRequest struct {
	Email string `json:"email" validate:"required"`
}

// SuscribirResponse respuesta del newsletter. Siempre viaja con HTTP 200:
// los fallos internos se reportan como success=false con mensaje genérico,
// una decisión deliberada del contrato con el cliente.
type SuscribirResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
