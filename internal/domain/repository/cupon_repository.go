package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CuponRepository define el puerto de persistencia para Cupon.
type CuponRepository interface {
	Create(cupon *entity.Cupon) error
	GetByID(id string) (*entity.Cupon, error)
	GetByCodigo(codigo string) (*entity.Cupon, error)
	ListAll() ([]*entity.Cupon, error)
	Update(cupon *entity.Cupon) error
	// IncrementarUsos suma 1 al contador de usos de forma atómica y
	// condicional: si el cupón ya agotó sus usos máximos no modifica nada
	// y devuelve cupon.ErrAgotado.
	IncrementarUsos(id string) error
	Delete(id string) error
}
