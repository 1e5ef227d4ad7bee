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

// ProductoUseCase casos de uso del catálogo: lecturas públicas y CRUD admin.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// ListPublicos lista productos activos, opcionalmente filtrados por slug de categoría.
func (uc *ProductoUseCase) ListPublicos(categoriaSlug string) ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.ListActivos(categoriaSlug)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// GetPublicoPorSlug devuelve el producto activo por slug con el subset de su
// categoría. (nil, nil) si no existe o no está activo.
func (uc *ProductoUseCase) GetPublicoPorSlug(s string) (*dto.ProductoConCategoriaResponse, error) {
	p, err := uc.repo.GetBySlugConCategoria(s)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.ProductoConCategoriaResponse{
		ProductoResponse: *toProductoResponse(&p.Producto),
		Categoria: dto.CategoriaResumen{
			Nombre: p.CategoriaNombre,
			Slug:   p.CategoriaSlug,
		},
	}, nil
}

// ListAll lista todos los productos con paginación (admin).
func (uc *ProductoUseCase) ListAll(limit, offset int) ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// Create crea un producto. La categoría debe existir; el slug se deriva del
// nombre si viene vacío.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.CategoriaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() || in.PrecioMayorista.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrInvalidInput
	}
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Nombre)
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:              uuid.New().String(),
		CategoriaID:     in.CategoriaID,
		Nombre:          in.Nombre,
		Slug:            s,
		Descripcion:     in.Descripcion,
		Precio:          in.Precio,
		PrecioMayorista: in.PrecioMayorista,
		Imagen:          in.Imagen,
		Activo:          activo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Update actualiza un producto con semántica de patch parcial.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.CategoriaID != nil {
		categoria, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrInvalidInput
		}
		producto.CategoriaID = *in.CategoriaID
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Slug != nil {
		producto.Slug = *in.Slug
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.PrecioMayorista != nil {
		if in.PrecioMayorista.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.PrecioMayorista = *in.PrecioMayorista
	}
	if in.Imagen != nil {
		producto.Imagen = *in.Imagen
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:              p.ID,
		CategoriaID:     p.CategoriaID,
		Nombre:          p.Nombre,
		Slug:            p.Slug,
		Descripcion:     p.Descripcion,
		Precio:          p.Precio,
		PrecioMayorista: p.PrecioMayorista,
		Imagen:          p.Imagen,
		Activo:          p.Activo,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
