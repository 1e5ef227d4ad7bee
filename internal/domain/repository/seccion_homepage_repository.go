package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SeccionHomepageRepository define el puerto de persistencia para SeccionHomepage.
type SeccionHomepageRepository interface {
	Create(seccion *entity.SeccionHomepage) error
	GetByID(id string) (*entity.SeccionHomepage, error)
	// ListAll devuelve todas las secciones, orden ascendente.
	ListAll() ([]*entity.SeccionHomepage, error)
	Update(seccion *entity.SeccionHomepage) error
	Delete(id string) error
}
