package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SuscriptorRepository define el puerto de persistencia para Suscriptor.
type SuscriptorRepository interface {
	Create(suscriptor *entity.Suscriptor) error
	GetByEmail(email string) (*entity.Suscriptor, error)
	ListAll() ([]*entity.Suscriptor, error)
}
