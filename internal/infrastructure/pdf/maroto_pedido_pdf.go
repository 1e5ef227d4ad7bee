// Package pdf genera el comprobante en PDF de un pedido para el panel admin.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Pedido + Fecha   │
//	│  ──────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + email                             │
//	│  ──────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal          │
//	│  ──────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento (cupón) / TOTAL       │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"encoding/json"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPedidoPDF implementa usecase.PedidoPDFGenerator usando Maroto v2.
type MarotoPedidoPDF struct{}

// NewMarotoPedidoPDF construye el generador.
func NewMarotoPedidoPDF() *MarotoPedidoPDF {
	return &MarotoPedidoPDF{}
}

// Generar genera el comprobante y devuelve sus bytes.
func (g *MarotoPedidoPDF) Generar(pedido *entity.Pedido, usuario *entity.Usuario, nombreTienda string) ([]byte, error) {
	var items []entity.PedidoItem
	if len(pedido.Items) > 0 {
		if err := json.Unmarshal(pedido.Items, &items); err != nil {
			return nil, fmt.Errorf("pdf: decodificar items del pedido: %w", err)
		}
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(pedido, nombreTienda))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(usuario))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRows(pedido)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y N° pedido + fecha (der).
func headerRow(pedido *entity.Pedido, nombreTienda string) core.Row {
	fecha := pedido.CreatedAt.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nombreTienda, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+pedido.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func clienteRow(usuario *entity.Usuario) core.Row {
	nombre := "—"
	email := ""
	if usuario != nil {
		nombre = usuario.Nombre
		email = usuario.Email
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente: "+nombre, props.Text{Size: 9, Top: 1}),
			text.New(email, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", h)),
		col.New(6).Add(text.New("Producto", h)),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func itemRow(it entity.PedidoItem) core.Row {
	subtotal := it.Precio.Mul(decimal.NewFromInt(int64(it.Cantidad)))
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Cantidad), props.Text{Size: 9})),
		col.New(6).Add(text.New(it.Nombre, props.Text{Size: 9})),
		col.New(2).Add(text.New("$"+it.Precio.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New("$"+subtotal.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalesRows(pedido *entity.Pedido) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("Subtotal", props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New("$"+pedido.Subtotal.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		),
	}
	if pedido.Descuento.IsPositive() {
		etiqueta := "Descuento"
		if pedido.CuponCodigo != "" {
			etiqueta = "Descuento (" + pedido.CuponCodigo + ")"
		}
		rows = append(rows, row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(etiqueta, props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New("-$"+pedido.Descuento.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary})),
		col.New(2).Add(text.New("$"+pedido.Total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary})),
	))
	return rows
}
