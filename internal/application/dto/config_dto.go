package dto

// ConfigPublicaResponse respuesta del endpoint público de configuración.
// Lista blanca fija de claves con defaults tipados; los valores guardados
// se decodifican como JSON de forma oportunista, con fallback al texto crudo.
type ConfigPublicaResponse struct {
	ModoProximamente  bool   `json:"modoProximamente"`
	TextoProximamente string `json:"textoProximamente"`
	NombreTienda      string `json:"nombreTienda"`
	Whatsapp          string `json:"whatsapp"`
	Instagram         string `json:"instagram"`
	Email             string `json:"email"`
}

// UpdateConfigRequest entrada admin: pares clave/valor a upsertear.
type UpdateConfigRequest struct {
	Valores map[string]string `json:"valores" validate:"required"`
}
