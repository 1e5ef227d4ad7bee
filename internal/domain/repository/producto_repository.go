package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetBySlugConCategoria devuelve el producto activo con el subset
	// desnormalizado de su categoría (nombre, slug). (nil, nil) si no existe.
	GetBySlugConCategoria(slug string) (*entity.ProductoConCategoria, error)
	// ListActivos lista productos activos; categoriaSlug vacío = todos.
	ListActivos(categoriaSlug string) ([]*entity.Producto, error)
	// ListAll lista todos los productos sin filtro de visibilidad
	// (admin y sync). limit 0 devuelve todas las filas.
	ListAll(limit, offset int) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
}
