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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, categoria_id, nombre, slug, descripcion, precio, precio_mayorista, imagen, activo, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CategoriaID, p.Nombre, p.Slug, p.Descripcion, p.Precio,
		p.PrecioMayorista, p.Imagen, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoriaID, &p.Nombre, &p.Slug, &p.Descripcion, &p.Precio,
		&p.PrecioMayorista, &p.Imagen, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// GetBySlugConCategoria obtiene un producto activo por slug con el subset de su categoría.
func (r *ProductoRepo) GetBySlugConCategoria(slug string) (*entity.ProductoConCategoria, error) {
	query := `
		SELECT p.id, p.categoria_id, p.nombre, p.slug, p.descripcion, p.precio,
			p.precio_mayorista, p.imagen, p.activo, p.created_at, p.updated_at,
			c.nombre, c.slug
		FROM productos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.slug = $1 AND p.activo`
	var p entity.ProductoConCategoria
	err := r.q.QueryRow(context.Background(), query, slug).Scan(
		&p.ID, &p.CategoriaID, &p.Nombre, &p.Slug, &p.Descripcion, &p.Precio,
		&p.PrecioMayorista, &p.Imagen, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoriaNombre, &p.CategoriaSlug,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by slug: %w", err)
	}
	return &p, nil
}

// ListActivos lista productos activos; categoriaSlug vacío = todos.
func (r *ProductoRepo) ListActivos(categoriaSlug string) ([]*entity.Producto, error) {
	query := `
		SELECT p.id, p.categoria_id, p.nombre, p.slug, p.descripcion, p.precio,
			p.precio_mayorista, p.imagen, p.activo, p.created_at, p.updated_at
		FROM productos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.activo AND ($1 = '' OR c.slug = $1)
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, categoriaSlug)
	if err != nil {
		return nil, fmt.Errorf("list productos activos: %w", err)
	}
	return r.collect(rows)
}

// ListAll lista todos los productos sin filtro de visibilidad (admin y sync;
// limit 0 = sin paginar).
func (r *ProductoRepo) ListAll(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	return r.collect(rows)
}

func (r *ProductoRepo) collect(rows pgx.Rows) ([]*entity.Producto, error) {
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.CategoriaID, &p.Nombre, &p.Slug, &p.Descripcion,
			&p.Precio, &p.PrecioMayorista, &p.Imagen, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET categoria_id = $2, nombre = $3, slug = $4, descripcion = $5,
			precio = $6, precio_mayorista = $7, imagen = $8, activo = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CategoriaID, p.Nombre, p.Slug, p.Descripcion, p.Precio,
		p.PrecioMayorista, p.Imagen, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
