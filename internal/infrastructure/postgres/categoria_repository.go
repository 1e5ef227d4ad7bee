package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

const categoriaCols = `id, nombre, slug, activo, orden, created_at, updated_at`

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (` + categoriaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Slug, c.Activo, c.Orden, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get categoria")
}

// GetBySlug obtiene una categoría por slug.
func (r *CategoriaRepo) GetBySlug(slug string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE slug = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, slug), "get categoria by slug")
}

func (r *CategoriaRepo) scanOne(row pgx.Row, op string) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(&c.ID, &c.Nombre, &c.Slug, &c.Activo, &c.Orden, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// ListActivasConConteo lista categorías activas con el conteo de productos activos (lectura pública).
func (r *CategoriaRepo) ListActivasConConteo() ([]*entity.CategoriaConConteo, error) {
	query := `
		SELECT c.id, c.nombre, c.slug, c.activo, c.orden, c.created_at, c.updated_at,
			COUNT(p.id) FILTER (WHERE p.activo) AS total_productos
		FROM categorias c
		LEFT JOIN productos p ON p.categoria_id = c.id
		WHERE c.activo
		GROUP BY c.id
		ORDER BY c.orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias activas: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoriaConConteo
	for rows.Next() {
		var c entity.CategoriaConConteo
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Slug, &c.Activo, &c.Orden,
			&c.CreatedAt, &c.UpdatedAt, &c.TotalProductos); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListAll lista todas las categorías sin filtro de visibilidad (admin).
func (r *CategoriaRepo) ListAll() ([]*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Slug, &c.Activo, &c.Orden, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $2, slug = $3, activo = $4, orden = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Slug, c.Activo, c.Orden, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
