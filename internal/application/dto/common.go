package dto

// ErrorResponse cuerpo de error HTTP: { "error": "..." }.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensajeResponse respuesta simple con mensaje (altas/bajas admin).
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
