package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CheckoutTxRunner.
var _ usecase.CheckoutTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout inicia una transacción con los repos del checkout (pedido +
// cupón + usuario) y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	cuponRepo repository.CuponRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidoRepo := NewPedidoRepository(tx)
	cuponRepo := NewCuponRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)

	if err := fn(pedidoRepo, cuponRepo, usuarioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
