package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador de persistencia para banners.
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

const bannerCols = `id, titulo, imagen, enlace, activo, orden, created_at, updated_at`

// Create persiste un banner. Si Orden <= 0 se asigna max(orden)+1 dentro del
// mismo INSERT (mismo esquema atómico que las reseñas).
func (r *BannerRepo) Create(b *entity.Banner) error {
	query := `
		INSERT INTO banners (id, titulo, imagen, enlace, activo, orden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
			CASE WHEN $6 > 0 THEN $6 ELSE (SELECT COALESCE(MAX(orden), 0) + 1 FROM banners) END,
			$7, $8)
		RETURNING orden`
	err := r.q.QueryRow(context.Background(), query,
		b.ID, b.Titulo, b.Imagen, b.Enlace, b.Activo, b.Orden, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.Orden)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtiene un banner por ID.
func (r *BannerRepo) GetByID(id string) (*entity.Banner, error) {
	query := `SELECT ` + bannerCols + ` FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Titulo, &b.Imagen, &b.Enlace, &b.Activo, &b.Orden, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// ListActivos lista banners activos, orden ascendente (lectura pública).
func (r *BannerRepo) ListActivos() ([]*entity.Banner, error) {
	query := `SELECT ` + bannerCols + ` FROM banners WHERE activo ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list banners activos: %w", err)
	}
	return r.collect(rows)
}

// ListAll lista todos los banners, orden ascendente (admin).
func (r *BannerRepo) ListAll() ([]*entity.Banner, error) {
	query := `SELECT ` + bannerCols + ` FROM banners ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return r.collect(rows)
}

func (r *BannerRepo) collect(rows pgx.Rows) ([]*entity.Banner, error) {
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.Titulo, &b.Imagen, &b.Enlace, &b.Activo,
			&b.Orden, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un banner existente.
func (r *BannerRepo) Update(b *entity.Banner) error {
	query := `
		UPDATE banners SET titulo = $2, imagen = $3, enlace = $4, activo = $5,
			orden = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Titulo, b.Imagen, b.Enlace, b.Activo, b.Orden, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

// Delete elimina un banner por ID.
func (r *BannerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}
