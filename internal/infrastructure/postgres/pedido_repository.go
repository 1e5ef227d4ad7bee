package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoCols = `id, usuario_id, items, subtotal, descuento, total, cupon_codigo, estado, created_at, updated_at`

// Create persiste un nuevo pedido.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (` + pedidoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UsuarioID, p.Items, p.Subtotal, p.Descuento, p.Total,
		p.CuponCodigo, p.Estado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UsuarioID, &p.Items, &p.Subtotal, &p.Descuento, &p.Total,
		&p.CuponCodigo, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// ListByUsuario lista los pedidos del usuario, createdAt descendente.
func (r *PedidoRepo) ListByUsuario(usuarioID string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE usuario_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por usuario: %w", err)
	}
	return r.collect(rows)
}

// ListAll lista todos los pedidos, createdAt descendente (admin y sync;
// limit 0 = sin paginar).
func (r *PedidoRepo) ListAll(limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return r.collect(rows)
}

func (r *PedidoRepo) collect(rows pgx.Rows) ([]*entity.Pedido, error) {
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.Items, &p.Subtotal, &p.Descuento,
			&p.Total, &p.CuponCodigo, &p.Estado, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
