package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// NovedadRepository define el puerto de persistencia para Novedad.
type NovedadRepository interface {
	Create(novedad *entity.Novedad) error
	GetByID(id string) (*entity.Novedad, error)
	// ListActivas devuelve novedades activas, fechaPublicacion descendente,
	// hasta limit filas (0 = sin límite).
	ListActivas(limit int) ([]*entity.Novedad, error)
	// ListAll devuelve todas las novedades, fechaPublicacion descendente (admin).
	ListAll() ([]*entity.Novedad, error)
	Update(novedad *entity.Novedad) error
	Delete(id string) error
}
