package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo implementación del puerto ConfiguracionRepository sobre PostgreSQL.
type ConfiguracionRepo struct {
	q Querier
}

// NewConfiguracionRepository construye el adaptador de persistencia para configuración.
func NewConfiguracionRepository(q Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// GetByClaves devuelve las filas cuya clave esté en el conjunto dado.
func (r *ConfiguracionRepo) GetByClaves(claves []string) ([]*entity.Configuracion, error) {
	query := `SELECT clave, valor, updated_at FROM configuracion WHERE clave = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, claves)
	if err != nil {
		return nil, fmt.Errorf("get configuracion por claves: %w", err)
	}
	defer rows.Close()
	var list []*entity.Configuracion
	for rows.Next() {
		var c entity.Configuracion
		if err := rows.Scan(&c.Clave, &c.Valor, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan configuracion: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByClave obtiene una fila por clave.
func (r *ConfiguracionRepo) GetByClave(clave string) (*entity.Configuracion, error) {
	query := `SELECT clave, valor, updated_at FROM configuracion WHERE clave = $1`
	var c entity.Configuracion
	err := r.q.QueryRow(context.Background(), query, clave).Scan(&c.Clave, &c.Valor, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracion: %w", err)
	}
	return &c, nil
}

// Upsert crea o reemplaza el valor de una clave.
func (r *ConfiguracionRepo) Upsert(clave, valor string) error {
	query := `
		INSERT INTO configuracion (clave, valor, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, clave, valor)
	if err != nil {
		return fmt.Errorf("upsert configuracion: %w", err)
	}
	return nil
}
