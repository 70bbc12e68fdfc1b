// Package pdf genera el resumen imprimible de un pedido en composición, para
// archivar o adjuntar al acta de entrega antes del envío al backend.
package pdf

import (
	"fmt"
	"time"

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

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// OrderSummaryGenerator genera el PDF del resumen de pedido usando Maroto v2.
type OrderSummaryGenerator struct{}

// NewOrderSummaryGenerator construye el generador.
func NewOrderSummaryGenerator() *OrderSummaryGenerator { return &OrderSummaryGenerator{} }

// OrderSummaryInput datos del resumen: cliente institucional, líneas y totales.
type OrderSummaryInput struct {
	InstitutionName string
	InstitutionID   string
	Lines           []entity.CartLine
	Totals          entity.CartTotals
	GeneratedAt     time.Time
}

// GenerateOrderSummary genera el PDF y devuelve sus bytes.
func (g *OrderSummaryGenerator) GenerateOrderSummary(in OrderSummaryInput) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(in.Lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(in.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: institución (izq) y fecha de generación (der).
func headerRow(in OrderSummaryInput) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(in.InstitutionName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+in.InstitutionID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+in.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del carrito.
func tableLineRows(lines []entity.CartLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Name,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$ "+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$ "+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, IVA y total a pagar.
func totalsRow(t entity.CartTotals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top, Color: colorGray})
	}
	value := func(s string, top float64, bold bool) core.Component {
		p := props.Text{Size: 9, Align: align.Right, Top: top}
		if bold {
			p.Style = fontstyle.Bold
			p.Size = 11
			p.Color = colorPrimary
		}
		return text.New(s, p)
	}
	return row.New(22).Add(
		col.New(8),
		col.New(2).Add(
			label("Subtotal:", 1),
			label("IVA:", 7),
			label("TOTAL:", 14),
		),
		col.New(2).Add(
			value("$ "+t.Subtotal.StringFixed(2), 1, false),
			value("$ "+t.Tax.StringFixed(2), 7, false),
			value("$ "+t.Total.StringFixed(2), 13, true),
		),
	)
}
