package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// BannerUseCase casos de uso de banners: listado público y CRUD admin.
type BannerUseCase struct {
	repo repository.BannerRepository
}

// NewBannerUseCase construye el caso de uso.
func NewBannerUseCase(repo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{repo: repo}
}

// ListPublicos devuelve solo banners activos, orden ascendente.
func (uc *BannerUseCase) ListPublicos() ([]dto.BannerResponse, error) {
	banners, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return toBannerResponses(banners), nil
}

// ListAll devuelve todos los banners (admin).
func (uc *BannerUseCase) ListAll() ([]dto.BannerResponse, error) {
	banners, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toBannerResponses(banners), nil
}

// Create crea un banner. Orden <= 0 significa append al final.
func (uc *BannerUseCase) Create(in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	if in.Imagen == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	banner := &entity.Banner{
		ID:        uuid.New().String(),
		Titulo:    in.Titulo,
		Imagen:    in.Imagen,
		Enlace:    in.Enlace,
		Activo:    in.Activo,
		Orden:     in.Orden,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// Update actualiza un banner con semántica de patch parcial.
func (uc *BannerUseCase) Update(id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	banner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		banner.Titulo = *in.Titulo
	}
	if in.Imagen != nil {
		banner.Imagen = *in.Imagen
	}
	if in.Enlace != nil {
		banner.Enlace = *in.Enlace
	}
	if in.Activo != nil {
		banner.Activo = *in.Activo
	}
	if in.Orden != nil {
		banner.Orden = *in.Orden
	}
	banner.UpdatedAt = time.Now()
	if err := uc.repo.Update(banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// Delete elimina un banner por ID.
func (uc *BannerUseCase) Delete(id string) error {
	banner, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.ID,
		Titulo:    b.Titulo,
		Imagen:    b.Imagen,
		Enlace:    b.Enlace,
		Activo:    b.Activo,
		Orden:     b.Orden,
		CreatedAt: b.CreatedAt,
	}
}

func toBannerResponses(banners []*entity.Banner) []dto.BannerResponse {
	out := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, *toBannerResponse(b))
	}
	return out
}
