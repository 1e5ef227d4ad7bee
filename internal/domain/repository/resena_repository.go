package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ResenaRepository define el puerto de persistencia para Resena.
type ResenaRepository interface {
	// Create persiste la reseña. Si resena.Orden <= 0 el adaptador asigna
	// max(orden)+1 de forma atómica en el mismo statement y deja el valor
	// asignado en resena.Orden.
	Create(resena *entity.Resena) error
	GetByID(id string) (*entity.Resena, error)
	// ListActivas devuelve solo reseñas activas, orden ascendente (pública).
	ListActivas() ([]*entity.Resena, error)
	// ListAll devuelve todas las reseñas, orden ascendente (admin).
	ListAll() ([]*entity.Resena, error)
	// MaxOrden devuelve el mayor orden asignado (0 si no hay filas).
	MaxOrden() (int, error)
	Update(resena *entity.Resena) error
	Delete(id string) error
}
