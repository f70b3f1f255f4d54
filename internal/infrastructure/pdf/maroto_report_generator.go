// Package pdf implementa la representación gráfica (PDF) del reporte
// financiero de período.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  Período del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: facturado / cotizado / pagado / pendiente          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Cantidad | Total                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
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

	"github.com/jhoicas/Gestion-api/internal/application/reporting"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles por tipo de documento.
var typeLabels = map[string]string{
	entity.DocumentTypeInvoice: "Facturas",
	entity.DocumentTypeQuote:   "Cotizaciones",
	entity.DocumentTypePayment: "Pagos",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporting.PeriodReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.PeriodReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{}
}

// GeneratePeriodReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePeriodReportPDF(
	_ context.Context,
	company *entity.Company,
	rep *report.PeriodReport,
) ([]byte, error) {
	if company == nil || rep == nil {
		return nil, fmt.Errorf("pdf: faltan empresa o reporte")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero de Período", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range typeSummaryRows(rep.ByType) {
		m.AddRows(r)
	}
	if len(rep.ByType) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin documentos en el período.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y período del reporte (der).
func headerRow(company *entity.Company, rep *report.PeriodReport) core.Row {
	periodo := fmt.Sprintf("%s — %s",
		rep.PeriodStart.Format("02/01/2006"),
		rep.PeriodEnd.AddDate(0, 0, -1).Format("02/01/2006"),
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE FINANCIERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("%d documentos", rep.DocumentCount), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// totalsRow: los cuatro totales del período en una banda horizontal.
func totalsRow(rep *report.PeriodReport) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7.5, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New("$"+value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		cell("TOTAL FACTURADO", rep.TotalInvoiced.StringFixed(2)),
		cell("TOTAL COTIZADO", rep.TotalQuotes.StringFixed(2)),
		cell("TOTAL PAGADO", rep.TotalPaid.StringFixed(2)),
		cell("TOTAL PENDIENTE", rep.TotalPending.StringFixed(2)),
	)
}

// tableHeaderRow: cabecera de la tabla por tipo de documento.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo de documento", 6, align.Left),
		h("Cantidad", 2, align.Center),
		h("Total", 4, align.Right),
	)
}

// typeSummaryRows: una fila por tipo, en el orden estable del reporte.
func typeSummaryRows(summaries []report.TypeSummary) []core.Row {
	result := make([]core.Row, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				typeLabel(s.Type),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", s.Count),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				"$"+s.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow(rep *report.PeriodReport) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado a partir de los documentos registrados en el sistema. "+
				"Los totales corresponden al período indicado en el encabezado.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

func typeLabel(t string) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return t
}
