package usecase

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SeccionUseCase casos de uso de las secciones de portada.
type SeccionUseCase struct {
	repo repository.SeccionHomepageRepository
}

// NewSeccionUseCase construye el caso de uso.
func NewSeccionUseCase(repo repository.SeccionHomepageRepository) *SeccionUseCase {
	return &SeccionUseCase{repo: repo}
}

// ListPublicas devuelve solo las secciones activas, orden ascendente.
func (uc *SeccionUseCase) ListPublicas() ([]dto.SeccionResponse, error) {
	secciones, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeccionResponse, 0, len(secciones))
	for _, s := range secciones {
		if !s.Activa {
			continue
		}
		out = append(out, *toSeccionResponse(s))
	}
	return out, nil
}

// ListAll devuelve todas las secciones (admin).
func (uc *SeccionUseCase) ListAll() ([]dto.SeccionResponse, error) {
	secciones, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeccionResponse, 0, len(secciones))
	for _, s := range secciones {
		out = append(out, *toSeccionResponse(s))
	}
	return out, nil
}

// Update actualiza una sección con semántica de patch parcial. Config se
// reemplaza completo cuando viene presente.
func (uc *SeccionUseCase) Update(id string, in dto.UpdateSeccionRequest) (*dto.SeccionResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		s.Titulo = *in.Titulo
	}
	if in.Subtitulo != nil {
		s.Subtitulo = *in.Subtitulo
	}
	if in.Activa != nil {
		s.Activa = *in.Activa
	}
	if in.Orden != nil {
		s.Orden = *in.Orden
	}
	if len(in.Config) > 0 {
		s.Config = in.Config
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSeccionResponse(s), nil
}

// Delete elimina una sección por ID.
func (uc *SeccionUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSeccionResponse(s *entity.SeccionHomepage) *dto.SeccionResponse {
	return &dto.SeccionResponse{
		ID:        s.ID,
		Titulo:    s.Titulo,
		Subtitulo: s.Subtitulo,
		Activa:    s.Activa,
		Orden:     s.Orden,
		Config:    s.Config,
		UpdatedAt: s.UpdatedAt,
	}
}
