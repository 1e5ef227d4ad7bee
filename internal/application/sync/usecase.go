// Package sync implementa la exportación bajo demanda hacia Google Sheets.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Exporter es el puerto hacia el documento de hojas de cálculo.
type Exporter interface {
	Exportar(ctx context.Context, hoja string, encabezados []string, filas [][]any) error
}

// Nombres de las hojas destino.
const (
	HojaProductos    = "Productos"
	HojaClientes     = "Clientes"
	HojaPedidos      = "Pedidos"
	HojaEstadisticas = "Estadisticas"
)

// SyncUseCase exporta snapshots de productos, clientes y pedidos más una hoja
// de estadísticas agregadas. El primer fallo aborta la sincronización completa:
// no hay reporte de éxito parcial ni reintentos por fila.
type SyncUseCase struct {
	productoRepo repository.ProductoRepository
	usuarioRepo  repository.UsuarioRepository
	pedidoRepo   repository.PedidoRepository
	exporter     Exporter
	log          *logger.Logger
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
	pedidoRepo repository.PedidoRepository,
	exporter Exporter,
	log *logger.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		productoRepo: productoRepo,
		usuarioRepo:  usuarioRepo,
		pedidoRepo:   pedidoRepo,
		exporter:     exporter,
		log:          log,
	}
}

// Exportar corre la sincronización completa en orden fijo: productos,
// clientes, pedidos, estadísticas.
func (uc *SyncUseCase) Exportar(ctx context.Context) error {
	inicio := time.Now()

	productos, err := uc.productoRepo.ListAll(0, 0)
	if err != nil {
		return fmt.Errorf("sync: leer productos: %w", err)
	}
	filasProductos := make([][]any, 0, len(productos))
	for _, p := range productos {
		filasProductos = append(filasProductos, []any{
			p.ID, p.Nombre, p.Slug, p.Precio.String(), p.PrecioMayorista.String(), p.Activo,
		})
	}
	if err := uc.exporter.Exportar(ctx, HojaProductos,
		[]string{"ID", "Nombre", "Slug", "Precio", "Precio Mayorista", "Activo"},
		filasProductos); err != nil {
		return err
	}

	clientes, err := uc.usuarioRepo.ListConPedidos()
	if err != nil {
		return fmt.Errorf("sync: leer clientes: %w", err)
	}
	filasClientes := make([][]any, 0, len(clientes))
	for _, u := range clientes {
		filasClientes = append(filasClientes, []any{
			u.ID, u.Nombre, u.Email, u.EstadoMayorista, u.TotalPedidos,
		})
	}
	if err := uc.exporter.Exportar(ctx, HojaClientes,
		[]string{"ID", "Nombre", "Email", "Estado Mayorista", "Total Pedidos"},
		filasClientes); err != nil {
		return err
	}

	pedidos, err := uc.pedidoRepo.ListAll(0, 0)
	if err != nil {
		return fmt.Errorf("sync: leer pedidos: %w", err)
	}
	filasPedidos := make([][]any, 0, len(pedidos))
	totalVentas := decimal.Zero
	for _, p := range pedidos {
		filasPedidos = append(filasPedidos, []any{
			p.ID, p.UsuarioID, p.Total.String(), p.Estado, p.CreatedAt.Format(time.RFC3339),
		})
		totalVentas = totalVentas.Add(p.Total)
	}
	if err := uc.exporter.Exportar(ctx, HojaPedidos,
		[]string{"ID", "Usuario", "Total", "Estado", "Fecha"},
		filasPedidos); err != nil {
		return err
	}

	filasStats := [][]any{
		{"Productos", len(productos)},
		{"Clientes", len(clientes)},
		{"Pedidos", len(pedidos)},
		{"Ventas totales", totalVentas.String()},
		{"Última sincronización", inicio.Format(time.RFC3339)},
	}
	if err := uc.exporter.Exportar(ctx, HojaEstadisticas,
		[]string{"Métrica", "Valor"}, filasStats); err != nil {
		return err
	}

	uc.log.Info().
		Int("productos", len(productos)).
		Int("clientes", len(clientes)).
		Int("pedidos", len(pedidos)).
		Dur("duracion", time.Since(inicio)).
		Msg("sincronización con Sheets completada")
	return nil
}
