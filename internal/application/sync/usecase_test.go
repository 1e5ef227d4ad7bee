package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

type fakeProductoRepo struct{ productos []*entity.Producto }

func (f *fakeProductoRepo) Create(p *entity.Producto) error             { return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) GetBySlugConCategoria(slug string) (*entity.ProductoConCategoria, error) {
	return nil, nil
}
func (f *fakeProductoRepo) ListActivos(categoriaSlug string) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) ListAll(limit, offset int) ([]*entity.Producto, error) {
	return paginar(f.productos, limit, offset), nil
}
func (f *fakeProductoRepo) Update(p *entity.Producto) error { return nil }
func (f *fakeProductoRepo) Delete(id string) error          { return nil }

type fakeUsuarioRepo struct{ usuarios []*entity.UsuarioConPedidos }

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error                 { return nil }
func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error)     { return nil, nil }
func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarioRepo) Update(u *entity.Usuario) error                 { return nil }
func (f *fakeUsuarioRepo) ListConPedidos() ([]*entity.UsuarioConPedidos, error) {
	return f.usuarios, nil
}
func (f *fakeUsuarioRepo) Delete(id string) error { return nil }

type fakePedidoRepo struct{ pedidos []*entity.Pedido }

func (f *fakePedidoRepo) Create(p *entity.Pedido) error             { return nil }
func (f *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) { return nil, nil }
func (f *fakePedidoRepo) ListByUsuario(usuarioID string) ([]*entity.Pedido, error) {
	return nil, nil
}
func (f *fakePedidoRepo) ListAll(limit, offset int) ([]*entity.Pedido, error) {
	return paginar(f.pedidos, limit, offset), nil
}

// paginar replica el contrato del puerto: limit 0 devuelve todas las filas,
// limit > 0 pagina. Los fakes lo respetan para no esconder un ListAll(0, 0)
// interpretado como "cero filas".
func paginar[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// fakeExporter registra las hojas escritas y puede fallar en una hoja puntual.
type fakeExporter struct {
	hojas    []string
	filas    map[string][][]any
	fallarEn string
}

func (f *fakeExporter) Exportar(ctx context.Context, hoja string, encabezados []string, filas [][]any) error {
	if hoja == f.fallarEn {
		return errors.New("spreadsheet API caída")
	}
	f.hojas = append(f.hojas, hoja)
	if f.filas == nil {
		f.filas = map[string][][]any{}
	}
	f.filas[hoja] = filas
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func armarSync(exporter Exporter) *SyncUseCase {
	productos := &fakeProductoRepo{productos: []*entity.Producto{
		{ID: "p1", Nombre: "PLA Negro", Slug: "pla-negro", Precio: decimal.NewFromInt(100), Activo: true},
		{ID: "p2", Nombre: "Resina Gris", Slug: "resina-gris", Precio: decimal.NewFromInt(250), Activo: false},
	}}
	usuarios := &fakeUsuarioRepo{usuarios: []*entity.UsuarioConPedidos{
		{Usuario: entity.Usuario{ID: "u1", Nombre: "Ana", Email: "ana@example.com"}, TotalPedidos: 3},
	}}
	pedidos := &fakePedidoRepo{pedidos: []*entity.Pedido{
		{ID: "o1", UsuarioID: "u1", Total: decimal.NewFromInt(300), Estado: entity.PedidoPagado},
		{ID: "o2", UsuarioID: "u1", Total: decimal.NewFromInt(150), Estado: entity.PedidoPendiente},
	}}
	return NewSyncUseCase(productos, usuarios, pedidos, exporter, testLogger())
}

func TestExportarEscribeLasCuatroHojas(t *testing.T) {
	exporter := &fakeExporter{}
	uc := armarSync(exporter)

	require.NoError(t, uc.Exportar(context.Background()))
	assert.Equal(t, []string{HojaProductos, HojaClientes, HojaPedidos, HojaEstadisticas}, exporter.hojas)
	assert.Len(t, exporter.filas[HojaProductos], 2)
	assert.Len(t, exporter.filas[HojaClientes], 1)
	assert.Len(t, exporter.filas[HojaPedidos], 2)
}

func TestExportarIncluyeVentasTotales(t *testing.T) {
	exporter := &fakeExporter{}
	uc := armarSync(exporter)

	require.NoError(t, uc.Exportar(context.Background()))
	stats := exporter.filas[HojaEstadisticas]
	var ventas any
	for _, fila := range stats {
		if fila[0] == "Ventas totales" {
			ventas = fila[1]
		}
	}
	assert.Equal(t, "450", ventas)
}

func TestExportarEstadisticasCuentaElSnapshotCompleto(t *testing.T) {
	exporter := &fakeExporter{}
	uc := armarSync(exporter)

	require.NoError(t, uc.Exportar(context.Background()))
	conteos := map[any]any{}
	for _, fila := range exporter.filas[HojaEstadisticas] {
		conteos[fila[0]] = fila[1]
	}
	assert.Equal(t, 2, conteos["Productos"])
	assert.Equal(t, 1, conteos["Clientes"])
	assert.Equal(t, 2, conteos["Pedidos"])
}

func TestExportarPrimerFalloAborta(t *testing.T) {
	exporter := &fakeExporter{fallarEn: HojaClientes}
	uc := armarSync(exporter)

	err := uc.Exportar(context.Background())
	require.Error(t, err)
	// Productos alcanzó a escribirse; pedidos y estadísticas no: no hay
	// éxito parcial reportado ni reintentos.
	assert.Equal(t, []string{HojaProductos}, exporter.hojas)
}
