package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetBySlug(slug string) (*entity.Categoria, error)
	// ListActivasConConteo devuelve las categorías activas con su cantidad de
	// productos activos, ordenadas por orden ascendente (lectura pública).
	ListActivasConConteo() ([]*entity.CategoriaConConteo, error)
	// ListAll devuelve todas las categorías sin filtro de visibilidad (admin).
	ListAll() ([]*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	Delete(id string) error
}
