package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.NovedadRepository = (*NovedadRepo)(nil)

// NovedadRepo implementación del puerto NovedadRepository sobre PostgreSQL.
type NovedadRepo struct {
	q Querier
}

// NewNovedadRepository construye el adaptador de persistencia para novedades.
func NewNovedadRepository(q Querier) *NovedadRepo {
	return &NovedadRepo{q: q}
}

const novedadCols = `id, titulo, contenido, imagen, activa, fecha_publicacion, created_at, updated_at`

// Create persiste una nueva novedad.
func (r *NovedadRepo) Create(n *entity.Novedad) error {
	query := `
		INSERT INTO novedades (` + novedadCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Titulo, n.Contenido, n.Imagen, n.Activa, n.FechaPublicacion,
		n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert novedad: %w", err)
	}
	return nil
}

// GetByID obtiene una novedad por ID.
func (r *NovedadRepo) GetByID(id string) (*entity.Novedad, error) {
	query := `SELECT ` + novedadCols + ` FROM novedades WHERE id = $1`
	var n entity.Novedad
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Titulo, &n.Contenido, &n.Imagen, &n.Activa, &n.FechaPublicacion,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get novedad: %w", err)
	}
	return &n, nil
}

// ListActivas lista novedades activas, fechaPublicacion descendente, hasta limit filas (0 = todas).
func (r *NovedadRepo) ListActivas(limit int) ([]*entity.Novedad, error) {
	query := `SELECT ` + novedadCols + ` FROM novedades WHERE activa ORDER BY fecha_publicacion DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list novedades activas: %w", err)
	}
	return r.collect(rows)
}

// ListAll lista todas las novedades, fechaPublicacion descendente (admin).
func (r *NovedadRepo) ListAll() ([]*entity.Novedad, error) {
	query := `SELECT ` + novedadCols + ` FROM novedades ORDER BY fecha_publicacion DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list novedades: %w", err)
	}
	return r.collect(rows)
}

func (r *NovedadRepo) collect(rows pgx.Rows) ([]*entity.Novedad, error) {
	defer rows.Close()
	var list []*entity.Novedad
	for rows.Next() {
		var n entity.Novedad
		if err := rows.Scan(&n.ID, &n.Titulo, &n.Contenido, &n.Imagen, &n.Activa,
			&n.FechaPublicacion, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan novedad: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Update actualiza una novedad existente.
func (r *NovedadRepo) Update(n *entity.Novedad) error {
	query := `
		UPDATE novedades SET titulo = $2, contenido = $3, imagen = $4, activa = $5,
			fecha_publicacion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Titulo, n.Contenido, n.Imagen, n.Activa, n.FechaPublicacion, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update novedad: %w", err)
	}
	return nil
}

// Delete elimina una novedad por ID.
func (r *NovedadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM novedades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete novedad: %w", err)
	}
	return nil
}
