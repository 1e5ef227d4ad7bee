package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ResenaRepository = (*ResenaRepo)(nil)

// ResenaRepo implementación del puerto ResenaRepository sobre PostgreSQL.
type ResenaRepo struct {
	q Querier
}

// NewResenaRepository construye el adaptador de persistencia para reseñas.
func NewResenaRepository(q Querier) *ResenaRepo {
	return &ResenaRepo{q: q}
}

const resenaCols = `id, nombre, texto, rating, imagen, activa, orden, created_at, updated_at`

// Create persiste una reseña. Si Orden <= 0 se asigna max(orden)+1 dentro del
// mismo INSERT, así dos altas concurrentes no pueden acuñar el mismo orden.
func (r *ResenaRepo) Create(re *entity.Resena) error {
	query := `
		INSERT INTO resenas (id, nombre, texto, rating, imagen, activa, orden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6,
			CASE WHEN $7 > 0 THEN $7 ELSE (SELECT COALESCE(MAX(orden), 0) + 1 FROM resenas) END,
			$8, $9)
		RETURNING orden`
	err := r.q.QueryRow(context.Background(), query,
		re.ID, re.Nombre, re.Texto, re.Rating, re.Imagen, re.Activa, re.Orden,
		re.CreatedAt, re.UpdatedAt,
	).Scan(&re.Orden)
	if err != nil {
		return fmt.Errorf("insert resena: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID.
func (r *ResenaRepo) GetByID(id string) (*entity.Resena, error) {
	query := `SELECT ` + resenaCols + ` FROM resenas WHERE id = $1`
	var re entity.Resena
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&re.ID, &re.Nombre, &re.Texto, &re.Rating, &re.Imagen, &re.Activa,
		&re.Orden, &re.CreatedAt, &re.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resena: %w", err)
	}
	return &re, nil
}

// ListActivas lista reseñas activas, orden ascendente (lectura pública).
func (r *ResenaRepo) ListActivas() ([]*entity.Resena, error) {
	query := `SELECT ` + resenaCols + ` FROM resenas WHERE activa ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list resenas activas: %w", err)
	}
	return r.collect(rows)
}

// ListAll lista todas las reseñas, orden ascendente (admin).
func (r *ResenaRepo) ListAll() ([]*entity.Resena, error) {
	query := `SELECT ` + resenaCols + ` FROM resenas ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list resenas: %w", err)
	}
	return r.collect(rows)
}

func (r *ResenaRepo) collect(rows pgx.Rows) ([]*entity.Resena, error) {
	defer rows.Close()
	var list []*entity.Resena
	for rows.Next() {
		var re entity.Resena
		if err := rows.Scan(&re.ID, &re.Nombre, &re.Texto, &re.Rating, &re.Imagen,
			&re.Activa, &re.Orden, &re.CreatedAt, &re.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resena: %w", err)
		}
		list = append(list, &re)
	}
	return list, rows.Err()
}

// MaxOrden devuelve el mayor orden asignado (0 si la tabla está vacía).
func (r *ResenaRepo) MaxOrden() (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(orden), 0) FROM resenas`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max orden resenas: %w", err)
	}
	return max, nil
}

// Update actualiza una reseña existente. Orden no se recalcula en updates.
func (r *ResenaRepo) Update(re *entity.Resena) error {
	query := `
		UPDATE resenas SET nombre = $2, texto = $3, rating = $4, imagen = $5,
			activa = $6, orden = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		re.ID, re.Nombre, re.Texto, re.Rating, re.Imagen, re.Activa, re.Orden, re.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resena: %w", err)
	}
	return nil
}

// Delete elimina una reseña por ID.
func (r *ResenaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM resenas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resena: %w", err)
	}
	return nil
}
