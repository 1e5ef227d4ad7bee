package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	cupondom "github.com/jhoicas/tienda-api/internal/domain/cupon"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type fakeProductoRepo struct {
	porID map[string]*entity.Producto
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error { f.porID[p.ID] = p; return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.porID[id], nil
}
func (f *fakeProductoRepo) GetBySlugConCategoria(slug string) (*entity.ProductoConCategoria, error) {
	return nil, nil
}
func (f *fakeProductoRepo) ListActivos(categoriaSlug string) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) ListAll(limit, offset int) ([]*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) Update(p *entity.Producto) error                       { return nil }
func (f *fakeProductoRepo) Delete(id string) error                                { return nil }

type fakeUsuarioRepo struct {
	porID map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error { f.porID[u.ID] = u; return nil }
func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return f.porID[id], nil
}
func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsuarioRepo) Update(u *entity.Usuario) error { f.porID[u.ID] = u; return nil }
func (f *fakeUsuarioRepo) ListConPedidos() ([]*entity.UsuarioConPedidos, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) Delete(id string) error { delete(f.porID, id); return nil }

type fakePedidoRepo struct {
	pedidos []*entity.Pedido
}

func (f *fakePedidoRepo) Create(p *entity.Pedido) error { f.pedidos = append(f.pedidos, p); return nil }
func (f *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	for _, p := range f.pedidos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePedidoRepo) ListByUsuario(usuarioID string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.UsuarioID == usuarioID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePedidoRepo) ListAll(limit, offset int) ([]*entity.Pedido, error) {
	return f.pedidos, nil
}

type fakeCuponRepo struct {
	porCodigo map[string]*entity.Cupon
	usos      map[string]int
}

func (f *fakeCuponRepo) Create(c *entity.Cupon) error { f.porCodigo[c.Codigo] = c; return nil }
func (f *fakeCuponRepo) GetByID(id string) (*entity.Cupon, error) {
	for _, c := range f.porCodigo {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCuponRepo) GetByCodigo(codigo string) (*entity.Cupon, error) {
	return f.porCodigo[codigo], nil
}
func (f *fakeCuponRepo) ListAll() ([]*entity.Cupon, error) { return nil, nil }
func (f *fakeCuponRepo) Update(c *entity.Cupon) error      { return nil }
// IncrementarUsos replica el incremento condicional del adaptador real: un
// cupón que ya llegó a su máximo no se consume, aunque el snapshot leído
// antes dijera lo contrario.
func (f *fakeCuponRepo) IncrementarUsos(id string) error {
	c, _ := f.GetByID(id)
	if c == nil {
		return cupondom.ErrAgotado
	}
	if f.usos == nil {
		f.usos = map[string]int{}
	}
	if c.UsosMaximos > 0 && c.Usos+f.usos[id] >= c.UsosMaximos {
		return cupondom.ErrAgotado
	}
	f.usos[id]++
	return nil
}
func (f *fakeCuponRepo) Delete(id string) error { return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	pedidoRepo  repository.PedidoRepository
	cuponRepo   repository.CuponRepository
	usuarioRepo repository.UsuarioRepository
}

func (f *fakeTxRunner) RunCheckout(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	cuponRepo repository.CuponRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	return fn(f.pedidoRepo, f.cuponRepo, f.usuarioRepo)
}

func armarCheckout(t *testing.T) (*PedidoUseCase, *fakePedidoRepo, *fakeCuponRepo, *fakeUsuarioRepo) {
	t.Helper()
	productos := &fakeProductoRepo{porID: map[string]*entity.Producto{
		"p1": {
			ID:              "p1",
			Nombre:          "PLA Negro",
			Precio:          decimal.NewFromInt(100),
			PrecioMayorista: decimal.NewFromInt(80),
			Activo:          true,
		},
	}}
	usuarios := &fakeUsuarioRepo{porID: map[string]*entity.Usuario{
		"u1": {ID: "u1", Nombre: "Ana", Rol: entity.RolCliente, EstadoMayorista: entity.MayoristaNinguno},
		"u2": {ID: "u2", Nombre: "Mayorista", Rol: entity.RolCliente, EstadoMayorista: entity.MayoristaActivo},
	}}
	pedidos := &fakePedidoRepo{}
	cupones := &fakeCuponRepo{porCodigo: map[string]*entity.Cupon{}}
	tx := &fakeTxRunner{pedidoRepo: pedidos, cuponRepo: cupones, usuarioRepo: usuarios}
	uc := NewPedidoUseCase(pedidos, productos, usuarios, tx, nil)
	return uc, pedidos, cupones, usuarios
}

func TestCheckoutPrecioMinorista(t *testing.T) {
	uc, pedidos, _, usuarios := armarCheckout(t)

	out, err := uc.Checkout(context.Background(), "u1", dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductoID: "p1", Cantidad: 2}},
	})
	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, entity.PedidoPendiente, out.Estado)
	require.Len(t, pedidos.pedidos, 1)
	assert.Equal(t, 2, usuarios.porID["u1"].UnidadesMesActual)
}

func TestCheckoutPrecioMayorista(t *testing.T) {
	uc, _, _, _ := armarCheckout(t)

	out, err := uc.Checkout(context.Background(), "u2", dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductoID: "p1", Cantidad: 1}},
	})
	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(80)),
		"el mayorista vigente paga la tarifa mayorista")
}

func TestCheckoutAplicaCupon(t *testing.T) {
	uc, _, cupones, _ := armarCheckout(t)
	now := time.Now()
	cupones.porCodigo["DESC10"] = &entity.Cupon{
		ID:          "c1",
		Codigo:      "DESC10",
		Tipo:        entity.CuponPorcentaje,
		Valor:       decimal.NewFromInt(10),
		FechaInicio: now.Add(-time.Hour),
		FechaFin:    now.Add(time.Hour),
		Activo:      true,
	}

	out, err := uc.Checkout(context.Background(), "u1", dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductoID: "p1", Cantidad: 2}},
		Cupon: "DESC10",
	})
	require.NoError(t, err)
	assert.True(t, out.Descuento.Equal(decimal.NewFromInt(20)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, "DESC10", out.CuponCodigo)
	assert.Equal(t, 1, cupones.usos["c1"], "el checkout consume un uso del cupón")
}

func TestCheckoutCuponVencidoRechaza(t *testing.T) {
	uc, pedidos, cupones, _ := armarCheckout(t)
	now := time.Now()
	cupones.porCodigo["VIEJO"] = &entity.Cupon{
		ID:          "c2",
		Codigo:      "VIEJO",
		Tipo:        entity.CuponMonto,
		Valor:       decimal.NewFromInt(50),
		FechaInicio: now.Add(-48 * time.Hour),
		FechaFin:    now.Add(-24 * time.Hour),
		Activo:      true,
	}

	_, err := uc.Checkout(context.Background(), "u1", dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductoID: "p1", Cantidad: 1}},
		Cupon: "VIEJO",
	})
	assert.ErrorIs(t, err, cupondom.ErrNoVigente)
	assert.Empty(t, pedidos.pedidos, "un cupón rechazado aborta el pedido completo")
}

func TestCheckoutCuponAgotadoNoSuperaElMaximo(t *testing.T) {
	uc, pedidos, cupones, _ := armarCheckout(t)
	now := time.Now()
	cupones.porCodigo["UNICO"] = &entity.Cupon{
		ID:          "c3",
		Codigo:      "UNICO",
		Tipo:        entity.CuponMonto,
		Valor:       decimal.NewFromInt(10),
		UsosMaximos: 1,
		FechaInicio: now.Add(-time.Hour),
		FechaFin:    now.Add(time.Hour),
		Activo:      true,
	}
	req := dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductoID: "p1", Cantidad: 1}},
		Cupon: "UNICO",
	}

	_, err := uc.Checkout(context.Background(), "u1", req)
	require.NoError(t, err)

	// El segundo checkout lee el mismo snapshot del cupón (usos todavía en
	// 0), pero el incremento condicional rechaza y aborta el pedido.
	_, err = uc.Checkout(context.Background(), "u2", req)
	assert.ErrorIs(t, err, cupondom.ErrAgotado)
	assert.Len(t, pedidos.pedidos, 1)
	assert.Equal(t, 1, cupones.usos["c3"])
}

func TestCheckoutProductoInactivoRechaza(t *testing.T) {
	uc, _, _, _ := armarCheckout(t)

	_, err := uc.Checkout(context.Background(), "u1", dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductoID: "no-existe", Cantidad: 1}},
	})
	assert.Error(t, err)
}
