package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// BannerRepository define el puerto de persistencia para Banner.
type BannerRepository interface {
	// Create persiste el banner. Si banner.Orden <= 0 el adaptador asigna
	// max(orden)+1 de forma atómica y deja el valor asignado en banner.Orden.
	Create(banner *entity.Banner) error
	GetByID(id string) (*entity.Banner, error)
	// ListActivos devuelve solo banners activos, orden ascendente (pública).
	ListActivos() ([]*entity.Banner, error)
	// ListAll devuelve todos los banners, orden ascendente (admin).
	ListAll() ([]*entity.Banner, error)
	Update(banner *entity.Banner) error
	Delete(id string) error
}
