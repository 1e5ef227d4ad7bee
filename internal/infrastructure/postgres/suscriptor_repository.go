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

var _ repository.SuscriptorRepository = (*SuscriptorRepo)(nil)

// SuscriptorRepo implementación del puerto SuscriptorRepository sobre PostgreSQL.
type SuscriptorRepo struct {
	q Querier
}

// NewSuscriptorRepository construye el adaptador de persistencia para suscriptores.
func NewSuscriptorRepository(q Querier) *SuscriptorRepo {
	return &SuscriptorRepo{q: q}
}

// Create persiste un suscriptor. Email duplicado retorna domain.ErrDuplicate
// (el caso de uso lo traduce a "ya suscripto", que no es un error para el cliente).
func (r *SuscriptorRepo) Create(s *entity.Suscriptor) error {
	query := `INSERT INTO suscriptores (id, email, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Email, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert suscriptor: %w", err)
	}
	return nil
}

// GetByEmail obtiene un suscriptor por email.
func (r *SuscriptorRepo) GetByEmail(email string) (*entity.Suscriptor, error) {
	query := `SELECT id, email, created_at FROM suscriptores WHERE email = $1`
	var s entity.Suscriptor
	err := r.q.QueryRow(context.Background(), query, email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suscriptor: %w", err)
	}
	return &s, nil
}

// ListAll lista todos los suscriptores, más recientes primero.
func (r *SuscriptorRepo) ListAll() ([]*entity.Suscriptor, error) {
	query := `SELECT id, email, created_at FROM suscriptores ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suscriptores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Suscriptor
	for rows.Next() {
		var s entity.Suscriptor
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan suscriptor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
