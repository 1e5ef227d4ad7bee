package dto

import "time"

// RegistroRequest entrada para crear una cuenta.
type RegistroRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario. Nunca incluye el password:
// el hash no tiene campo en este DTO, así no puede filtrarse por serialización.
type UsuarioResponse struct {
	ID                        string     `json:"id"`
	Nombre                    string     `json:"nombre"`
	Email                     string     `json:"email"`
	Rol                       string     `json:"rol"`
	EstadoMayorista           string     `json:"estadoMayorista"`
	UnidadesMesActual         int        `json:"unidadesMesActual"`
	FechaVencimientoMayorista *time.Time `json:"fechaVencimientoMayorista,omitempty"`
	CreatedAt                 time.Time  `json:"createdAt"`
}

// LoginResponse salida del login: token + usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioConPedidosResponse salida admin: usuario + conteo de pedidos.
type UsuarioConPedidosResponse struct {
	UsuarioResponse
	TotalPedidos int `json:"totalPedidos"`
}

// UpdateUsuarioRequest entrada admin para actualizar un usuario (patch parcial).
type UpdateUsuarioRequest struct {
	Nombre                    *string    `json:"nombre"`
	Rol                       *string    `json:"rol"`
	EstadoMayorista           *string    `json:"estadoMayorista"`
	UnidadesMesActual         *int       `json:"unidadesMesActual"`
	FechaVencimientoMayorista *time.Time `json:"fechaVencimientoMayorista"`
}
