package entity

import "time"

// Claves de configuración consumidas por el endpoint público y el tooling.
const (
	ClaveModoProximamente  = "modoProximamente"
	ClaveTextoProximamente = "textoProximamente"
	ClaveNombreTienda      = "nombreTienda"
	ClaveWhatsapp          = "whatsapp"
	ClaveInstagram         = "instagram"
	ClaveEmail             = "email"
	ClaveMaintenanceMode   = "MAINTENANCE_MODE" // inspeccionada por tooling fuera del HTTP
)

// Configuracion es un par clave/valor genérico. Valor puede ser texto plano o
// JSON serializado; el consumidor decodifica de forma oportunista.
type Configuracion struct {
	Clave     string // única
	Valor     string
	UpdatedAt time.Time
}
