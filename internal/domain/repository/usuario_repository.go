package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	// ListConPedidos devuelve todos los usuarios con su conteo de pedidos,
	// ordenados por fecha de alta descendente (listado admin).
	ListConPedidos() ([]*entity.UsuarioConPedidos, error)
	Delete(id string) error
}
