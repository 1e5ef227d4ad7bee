package entity

import "time"

// Roles de usuario.
const (
	RolAdmin   = "admin"
	RolCliente = "cliente"
)

// Estados del programa mayorista.
const (
	MayoristaNinguno   = "ninguno"
	MayoristaPendiente = "pendiente"
	MayoristaActivo    = "activo"
)

// Usuario representa una cuenta de la tienda (cliente o administrador).
// PasswordHash nunca se serializa hacia afuera: los DTO de respuesta no lo incluyen.
type Usuario struct {
	ID                        string
	Nombre                    string
	Email                     string // único
	PasswordHash              string
	Rol                       string // "admin" | "cliente"
	EstadoMayorista           string // "ninguno" | "pendiente" | "activo"
	UnidadesMesActual         int    // unidades compradas en el mes (programa mayorista)
	FechaVencimientoMayorista *time.Time
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// EsMayoristaVigente indica si el usuario tiene tarifa mayorista activa en el instante dado.
func (u *Usuario) EsMayoristaVigente(ahora time.Time) bool {
	if u.EstadoMayorista != MayoristaActivo {
		return false
	}
	if u.FechaVencimientoMayorista == nil {
		return true
	}
	return ahora.Before(*u.FechaVencimientoMayorista)
}

// UsuarioConPedidos es la proyección del listado admin: usuario + total de pedidos.
type UsuarioConPedidos struct {
	Usuario
	TotalPedidos int
}
