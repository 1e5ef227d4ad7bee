package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	// ListByUsuario devuelve los pedidos del usuario, createdAt descendente.
	ListByUsuario(usuarioID string) ([]*entity.Pedido, error)
	// ListAll lista todos los pedidos, createdAt descendente (admin y
	// sync). limit 0 devuelve todas las filas.
	ListAll(limit, offset int) ([]*entity.Pedido, error)
}
