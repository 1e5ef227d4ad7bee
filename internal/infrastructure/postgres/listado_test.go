package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturaQuerier registra el último SQL emitido y corta la ejecución con un
// error, así no hace falta simular filas de pgx.
type capturaQuerier struct {
	sql  string
	args []any
}

var errSinFilas = errors.New("captura: ejecución cortada")

func (c *capturaQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, errSinFilas
}

func (c *capturaQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, errSinFilas
}

func (c *capturaQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.sql, c.args = sql, args
	return nil
}

func TestProductoListAllSinLimiteTraeTodo(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewProductoRepository(q)

	_, err := repo.ListAll(0, 0)
	require.Error(t, err)

	// limit 0 significa "todas las filas": un LIMIT 0 literal devolvería
	// cero productos y dejaría la exportación a Sheets siempre vacía.
	assert.NotContains(t, q.sql, "LIMIT")
	assert.Empty(t, q.args)
}

func TestProductoListAllConLimitePagina(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewProductoRepository(q)

	_, err := repo.ListAll(10, 5)
	require.Error(t, err)

	assert.Contains(t, q.sql, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 5}, q.args)
}

func TestPedidoListAllSinLimiteTraeTodo(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewPedidoRepository(q)

	_, err := repo.ListAll(0, 0)
	require.Error(t, err)

	assert.NotContains(t, q.sql, "LIMIT")
	assert.Empty(t, q.args)
}

func TestPedidoListAllConLimitePagina(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewPedidoRepository(q)

	_, err := repo.ListAll(50, 100)
	require.Error(t, err)

	assert.Contains(t, q.sql, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{50, 100}, q.args)
}
