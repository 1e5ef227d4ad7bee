package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// NovedadUseCase casos de uso de novedades: listado público, feed RSS y CRUD admin.
type NovedadUseCase struct {
	repo repository.NovedadRepository
	feed FeedBuilder
}

// NewNovedadUseCase construye el caso de uso.
func NewNovedadUseCase(repo repository.NovedadRepository, feed FeedBuilder) *NovedadUseCase {
	return &NovedadUseCase{repo: repo, feed: feed}
}

// ListPublicas devuelve novedades activas, fecha de publicación descendente.
// limit 0 = sin límite.
func (uc *NovedadUseCase) ListPublicas(limit int) ([]dto.NovedadResponse, error) {
	novedades, err := uc.repo.ListActivas(limit)
	if err != nil {
		return nil, err
	}
	return toNovedadResponses(novedades), nil
}

// ListAll devuelve todas las novedades (admin).
func (uc *NovedadUseCase) ListAll() ([]dto.NovedadResponse, error) {
	novedades, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toNovedadResponses(novedades), nil
}

// FeedRSS arma el feed RSS con las novedades activas más recientes.
func (uc *NovedadUseCase) FeedRSS(nombreTienda, baseURL string) ([]byte, error) {
	novedades, err := uc.repo.ListActivas(20)
	if err != nil {
		return nil, err
	}
	return uc.feed.Construir(nombreTienda, baseURL, novedades)
}

// Create crea una novedad. FechaPublicacion en cero se reemplaza por ahora.
func (uc *NovedadUseCase) Create(in dto.CreateNovedadRequest) (*dto.NovedadResponse, error) {
	if in.Titulo == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	fecha := in.FechaPublicacion
	if fecha.IsZero() {
		fecha = now
	}
	novedad := &entity.Novedad{
		ID:               uuid.New().String(),
		Titulo:           in.Titulo,
		Contenido:        in.Contenido,
		Imagen:           in.Imagen,
		Activa:           in.Activa,
		FechaPublicacion: fecha,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(novedad); err != nil {
		return nil, err
	}
	return toNovedadResponse(novedad), nil
}

// Update actualiza una novedad con semántica de patch parcial.
func (uc *NovedadUseCase) Update(id string, in dto.UpdateNovedadRequest) (*dto.NovedadResponse, error) {
	novedad, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if novedad == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		novedad.Titulo = *in.Titulo
	}
	if in.Contenido != nil {
		novedad.Contenido = *in.Contenido
	}
	if in.Imagen != nil {
		novedad.Imagen = *in.Imagen
	}
	if in.Activa != nil {
		novedad.Activa = *in.Activa
	}
	if in.FechaPublicacion != nil {
		novedad.FechaPublicacion = *in.FechaPublicacion
	}
	novedad.UpdatedAt = time.Now()
	if err := uc.repo.Update(novedad); err != nil {
		return nil, err
	}
	return toNovedadResponse(novedad), nil
}

// Delete elimina una novedad por ID.
func (uc *NovedadUseCase) Delete(id string) error {
	novedad, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if novedad == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toNovedadResponse(n *entity.Novedad) *dto.NovedadResponse {
	return &dto.NovedadResponse{
		ID:               n.ID,
		Titulo:           n.Titulo,
		Contenido:        n.Contenido,
		Imagen:           n.Imagen,
		Activa:           n.Activa,
		FechaPublicacion: n.FechaPublicacion,
		CreatedAt:        n.CreatedAt,
	}
}

func toNovedadResponses(novedades []*entity.Novedad) []dto.NovedadResponse {
	out := make([]dto.NovedadResponse, 0, len(novedades))
	for _, n := range novedades {
		out = append(out, *toNovedadResponse(n))
	}
	return out
}
