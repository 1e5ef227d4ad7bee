package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/cupon"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CuponRepository = (*CuponRepo)(nil)

// CuponRepo implementación del puerto CuponRepository sobre PostgreSQL (usable con pool o tx).
type CuponRepo struct {
	q Querier
}

// NewCuponRepository construye el adaptador de persistencia para cupones. Pasar pool o tx (Querier).
func NewCuponRepository(q Querier) *CuponRepo {
	return &CuponRepo{q: q}
}

const cuponCols = `id, codigo, tipo, valor, minimo_compra, maximo_descuento, usos_maximos, usos, fecha_inicio, fecha_fin, activo, created_at, updated_at`

// Create persiste un nuevo cupón.
func (r *CuponRepo) Create(c *entity.Cupon) error {
	query := `
		INSERT INTO cupones (` + cuponCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Codigo, c.Tipo, c.Valor, c.MinimoCompra, c.MaximoDescuento,
		c.UsosMaximos, c.Usos, c.FechaInicio, c.FechaFin, c.Activo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cupon: %w", err)
	}
	return nil
}

// GetByID obtiene un cupón por ID.
func (r *CuponRepo) GetByID(id string) (*entity.Cupon, error) {
	query := `SELECT ` + cuponCols + ` FROM cupones WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get cupon")
}

// GetByCodigo obtiene un cupón por código.
func (r *CuponRepo) GetByCodigo(codigo string) (*entity.Cupon, error) {
	query := `SELECT ` + cuponCols + ` FROM cupones WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo), "get cupon by codigo")
}

func (r *CuponRepo) scanOne(row pgx.Row, op string) (*entity.Cupon, error) {
	var c entity.Cupon
	err := row.Scan(
		&c.ID, &c.Codigo, &c.Tipo, &c.Valor, &c.MinimoCompra, &c.MaximoDescuento,
		&c.UsosMaximos, &c.Usos, &c.FechaInicio, &c.FechaFin, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// ListAll lista todos los cupones (admin), más recientes primero.
func (r *CuponRepo) ListAll() ([]*entity.Cupon, error) {
	query := `SELECT ` + cuponCols + ` FROM cupones ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cupones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cupon
	for rows.Next() {
		var c entity.Cupon
		if err := rows.Scan(&c.ID, &c.Codigo, &c.Tipo, &c.Valor, &c.MinimoCompra,
			&c.MaximoDescuento, &c.UsosMaximos, &c.Usos, &c.FechaInicio, &c.FechaFin,
			&c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cupon: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cupón existente.
func (r *CuponRepo) Update(c *entity.Cupon) error {
	query := `
		UPDATE cupones SET codigo = $2, tipo = $3, valor = $4, minimo_compra = $5,
			maximo_descuento = $6, usos_maximos = $7, fecha_inicio = $8, fecha_fin = $9,
			activo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Codigo, c.Tipo, c.Valor, c.MinimoCompra, c.MaximoDescuento,
		c.UsosMaximos, c.FechaInicio, c.FechaFin, c.Activo, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cupon: %w", err)
	}
	return nil
}

// IncrementarUsos consume un uso en un solo statement condicional. Si el
// cupón ya alcanzó usos_maximos el UPDATE no toca ninguna fila y devuelve
// ErrAgotado: dos checkouts concurrentes no pueden superar el máximo.
func (r *CuponRepo) IncrementarUsos(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE cupones SET usos = usos + 1, updated_at = now()
		 WHERE id = $1 AND (usos_maximos = 0 OR usos < usos_maximos)`, id)
	if err != nil {
		return fmt.Errorf("incrementar usos cupon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cupon.ErrAgotado
	}
	return nil
}

// Delete elimina un cupón por ID.
func (r *CuponRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cupones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cupon: %w", err)
	}
	return nil
}
