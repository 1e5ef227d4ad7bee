package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ResenaUseCase casos de uso de reseñas: envío público (moderado) y CRUD admin.
type ResenaUseCase struct {
	repo repository.ResenaRepository
}

// NewResenaUseCase construye el caso de uso.
func NewResenaUseCase(repo repository.ResenaRepository) *ResenaUseCase {
	return &ResenaUseCase{repo: repo}
}

// ListPublicas devuelve solo reseñas activas, orden ascendente.
func (uc *ResenaUseCase) ListPublicas() ([]dto.ResenaResponse, error) {
	resenas, err := uc.repo.ListActivas()
	if err != nil {
		return nil, err
	}
	return toResenaResponses(resenas), nil
}

// ListAll devuelve todas las reseñas sin filtro de visibilidad (admin).
func (uc *ResenaUseCase) ListAll() ([]dto.ResenaResponse, error) {
	resenas, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toResenaResponses(resenas), nil
}

// Submit registra una reseña enviada por el público. Nace siempre inactiva
// (pendiente de moderación) sin importar lo que traiga el payload, y se
// encola al final del orden.
func (uc *ResenaUseCase) Submit(in dto.SubmitResenaRequest) (*dto.ResenaResponse, error) {
	if in.Nombre == "" || in.Texto == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	resena := &entity.Resena{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Texto:     in.Texto,
		Rating:    in.Rating,
		Imagen:    in.Imagen,
		Activa:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(resena); err != nil {
		return nil, err
	}
	return toResenaResponse(resena), nil
}

// Create registra una reseña desde el panel admin, respetando Activa.
func (uc *ResenaUseCase) Create(in dto.CreateResenaRequest) (*dto.ResenaResponse, error) {
	if in.Nombre == "" || in.Texto == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	resena := &entity.Resena{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Texto:     in.Texto,
		Rating:    in.Rating,
		Imagen:    in.Imagen,
		Activa:    in.Activa,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(resena); err != nil {
		return nil, err
	}
	return toResenaResponse(resena), nil
}

// Update actualiza una reseña con semántica de patch parcial. Orden solo
// cambia si viene explícito.
func (uc *ResenaUseCase) Update(id string, in dto.UpdateResenaRequest) (*dto.ResenaResponse, error) {
	resena, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resena == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		resena.Nombre = *in.Nombre
	}
	if in.Texto != nil {
		resena.Texto = *in.Texto
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		resena.Rating = *in.Rating
	}
	if in.Imagen != nil {
		resena.Imagen = *in.Imagen
	}
	if in.Activa != nil {
		resena.Activa = *in.Activa
	}
	if in.Orden != nil {
		resena.Orden = *in.Orden
	}
	resena.UpdatedAt = time.Now()
	if err := uc.repo.Update(resena); err != nil {
		return nil, err
	}
	return toResenaResponse(resena), nil
}

// Delete elimina una reseña por ID. El hueco de orden que deja no se compacta.
func (uc *ResenaUseCase) Delete(id string) error {
	resena, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if resena == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toResenaResponse(r *entity.Resena) *dto.ResenaResponse {
	return &dto.ResenaResponse{
		ID:        r.ID,
		Nombre:    r.Nombre,
		Texto:     r.Texto,
		Rating:    r.Rating,
		Imagen:    r.Imagen,
		Activa:    r.Activa,
		Orden:     r.Orden,
		CreatedAt: r.CreatedAt,
	}
}

func toResenaResponses(resenas []*entity.Resena) []dto.ResenaResponse {
	out := make([]dto.ResenaResponse, 0, len(resenas))
	for _, r := range resenas {
		out = append(out, *toResenaResponse(r))
	}
	return out
}
