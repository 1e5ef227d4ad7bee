package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SeccionHomepageRepository = (*SeccionHomepageRepo)(nil)

// SeccionHomepageRepo implementación del puerto SeccionHomepageRepository sobre PostgreSQL.
type SeccionHomepageRepo struct {
	q Querier
}

// NewSeccionHomepageRepository construye el adaptador de persistencia para secciones de portada.
func NewSeccionHomepageRepository(q Querier) *SeccionHomepageRepo {
	return &SeccionHomepageRepo{q: q}
}

const seccionCols = `id, titulo, subtitulo, activa, orden, config, created_at, updated_at`

// Create persiste una nueva sección.
func (r *SeccionHomepageRepo) Create(s *entity.SeccionHomepage) error {
	query := `
		INSERT INTO secciones_homepage (` + seccionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Titulo, s.Subtitulo, s.Activa, s.Orden, s.Config, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seccion: %w", err)
	}
	return nil
}

// GetByID obtiene una sección por ID.
func (r *SeccionHomepageRepo) GetByID(id string) (*entity.SeccionHomepage, error) {
	query := `SELECT ` + seccionCols + ` FROM secciones_homepage WHERE id = $1`
	var s entity.SeccionHomepage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Titulo, &s.Subtitulo, &s.Activa, &s.Orden, &s.Config, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seccion: %w", err)
	}
	return &s, nil
}

// ListAll lista todas las secciones, orden ascendente.
func (r *SeccionHomepageRepo) ListAll() ([]*entity.SeccionHomepage, error) {
	query := `SELECT ` + seccionCols + ` FROM secciones_homepage ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list secciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.SeccionHomepage
	for rows.Next() {
		var s entity.SeccionHomepage
		if err := rows.Scan(&s.ID, &s.Titulo, &s.Subtitulo, &s.Activa, &s.Orden,
			&s.Config, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan seccion: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una sección existente.
func (r *SeccionHomepageRepo) Update(s *entity.SeccionHomepage) error {
	query := `
		UPDATE secciones_homepage SET titulo = $2, subtitulo = $3, activa = $4,
			orden = $5, config = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Titulo, s.Subtitulo, s.Activa, s.Orden, s.Config, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update seccion: %w", err)
	}
	return nil
}

// Delete elimina una sección por ID.
func (r *SeccionHomepageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM secciones_homepage WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seccion: %w", err)
	}
	return nil
}
