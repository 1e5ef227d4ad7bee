package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/slug"
)

// CategoriaUseCase casos de uso de categorías: lectura pública y CRUD admin.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// ListPublicas devuelve las categorías activas con su conteo de productos
// activos, ordenadas por orden ascendente.
func (uc *CategoriaUseCase) ListPublicas() ([]dto.CategoriaPublicaResponse, error) {
	categorias, err := uc.repo.ListActivasConConteo()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaPublicaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaPublicaResponse{
			ID:             c.ID,
			Nombre:         c.Nombre,
			Slug:           c.Slug,
			Orden:          c.Orden,
			TotalProductos: c.TotalProductos,
		})
	}
	return out, nil
}

// ListAll devuelve todas las categorías sin filtro de visibilidad (admin).
func (uc *CategoriaUseCase) ListAll() ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, *toCategoriaResponse(c))
	}
	return out, nil
}

// Create crea una categoría. Si el slug viene vacío se deriva del nombre.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Nombre)
	}
	existing, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Slug:      s,
		Activo:    activo,
		Orden:     in.Orden,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Update actualiza una categoría con semántica de patch parcial.
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		categoria.Nombre = *in.Nombre
	}
	if in.Slug != nil {
		categoria.Slug = *in.Slug
	}
	if in.Activo != nil {
		categoria.Activo = *in.Activo
	}
	if in.Orden != nil {
		categoria.Orden = *in.Orden
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoriaUseCase) Delete(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Slug:      c.Slug,
		Activo:    c.Activo,
		Orden:     c.Orden,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
