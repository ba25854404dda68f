// Package pdf genera el ticket imprimible de una venta.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────┐
//	│  NOMBRE DEL NEGOCIO    Ticket N° id  │
//	│  Fecha / Cliente                      │
//	│  ──────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.U. | Tot │
//	│  ──────────────────────────────────  │
//	│                    TOTAL: $ ...      │
//	└──────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jpcarreon/ventastock/internal/domain/entity"
)

var (
	colorTitulo = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorSuave  = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// TicketGenerator genera el ticket de venta con Maroto v2.
type TicketGenerator struct {
	negocio string
}

// NewTicketGenerator construye el generador; negocio encabeza el ticket.
func NewTicketGenerator(negocio string) *TicketGenerator {
	return &TicketGenerator{negocio: negocio}
}

// GenerateTicket genera el PDF del ticket y devuelve sus bytes.
func (g *TicketGenerator) GenerateTicket(_ context.Context, venta *entity.Venta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de venta "+venta.IDVenta, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.encabezado(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorTitulo, Thickness: 0.4}))
	m.AddRows(tablaEncabezado())
	for _, r := range tablaLineas(venta.Lineas) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorTitulo, Thickness: 0.3}))
	m.AddRows(totalRow(venta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezado: negocio a la izquierda, número y fecha a la derecha.
func (g *TicketGenerator) encabezado(venta *entity.Venta) core.Row {
	cliente := venta.Cliente
	if cliente == "" {
		cliente = "Consumidor final"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.negocio, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorTitulo, Top: 1,
			}),
			text.New("Cliente: "+cliente, props.Text{
				Size: 8, Top: 9, Color: colorSuave,
			}),
		),
		col.New(5).Add(
			text.New("TICKET DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorTitulo, Top: 1,
			}),
			text.New("N° "+venta.IDVenta, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+venta.Fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorSuave,
			}),
		),
	)
}

// tablaEncabezado: cabecera de la tabla de líneas.
func tablaEncabezado() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Artículo", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tablaLineas: una fila por línea de la venta.
func tablaLineas(lineas []entity.VentaLinea) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		nombre := l.Nombre
		if nombre == "" {
			nombre = l.IDArticulo
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la venta alineado a la derecha.
func totalRow(venta *entity.Venta) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorTitulo, Top: 2,
		})),
		col.New(3).Add(text.New("$"+venta.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorTitulo, Top: 2,
		})),
	)
}
