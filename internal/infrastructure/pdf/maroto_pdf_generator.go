// Package pdf implementa el impreso de una solicitud de reposición, pensado
// para firma física en la recepción de la mercadería.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Propiedad  │  N° Solicitud + Fecha necesaria       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITANTE: Nombre + Rol + Notas                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Tipo | Stock | Mín | Uso 7d | Sug. | Solic.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CADENA DE APROBACIÓN: una fila por aprobador + estado      │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 76, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa replenishment.RequestPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRequestPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRequestPDF(_ context.Context, req *entity.ReplenishmentRequest) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Solicitud de Reposición "+req.ID, true).
		WithAuthor(req.Property, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(req))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(requestorRow(req))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(req.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range approvalRows(req.Approvals) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: propiedad (izq) y N° de solicitud + fechas (der).
func headerRow(req *entity.ReplenishmentRequest) core.Row {
	needed := "—"
	if req.NeededDate != nil {
		needed = req.NeededDate.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(req.Property, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Solicitud de reposición de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SOLICITUD DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(req.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Necesaria para: "+needed, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// requestorRow: datos del solicitante y notas generales.
func requestorRow(req *entity.ReplenishmentRequest) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", req.RequestorName, req.RequestorRole), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Estado: %s   |   Creada: %s   |   Notas: %s",
				req.Status,
				req.CreatedAt.Format("02/01/2006"),
				nonEmpty(req.Notes, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
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
		h("Ítem", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Stock", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Uso 7d", 1, align.Right),
		h("Sugerido", 2, align.Right),
		h("Solicitado", 2, align.Right),
	)
}

// tableItemRows: una fila por línea de la solicitud.
func tableItemRows(items []entity.ReplenishmentItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				it.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.ItemType,
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.CurrentStock.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.MinStock.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.Last7DayUsage.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				it.SuggestedQty.StringFixed(0)+" "+it.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				it.RequestedQty.StringFixed(0)+" "+it.Unit,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// approvalRows: cadena de aprobación, una fila por aprobador con su estado.
func approvalRows(approvals []entity.Approval) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CADENA DE APROBACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, a := range approvals {
		at := "—"
		if a.At != nil {
			at = a.At.Format("02/01/2006 15:04")
		}
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(a.Name, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(a.Role, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(a.Status, props.Text{
				Size: 8, Top: 1, Align: align.Center,
			})),
			col.New(2).Add(text.New(at, props.Text{
				Size: 8, Top: 1, Align: align.Right, Right: 1, Color: colorGray,
			})),
		))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento acompaña la recepción física de la mercadería. "+
				"Verifique cantidades contra la columna Solicitado antes de firmar.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
