// Package report: agregación financiera de documentos (facturas, cotizaciones,
// pagos) por período y por año calendario.
//
// Funciones puras sobre colecciones en memoria: sin estado compartido, sin
// acceso a base de datos. Pueden invocarse concurrentemente mientras la
// colección de entrada no se mute durante el cálculo.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// TypeSummary es el agregado por tipo de documento dentro de un período.
// Derivado y efímero: nunca se persiste.
type TypeSummary struct {
	Type  string
	Count int
	Total decimal.Decimal
}

// PeriodReport es el resumen financiero de un período semiabierto [start, end).
//
// Invariantes: DocumentCount == suma de los Count de ByType; los totales
// nunca son negativos si los montos de entrada no lo son.
type PeriodReport struct {
	PeriodStart   time.Time
	PeriodEnd     time.Time
	TotalInvoiced decimal.Decimal // suma de documentos tipo invoice
	TotalQuotes   decimal.Decimal // suma de documentos tipo quote
	TotalPaid     decimal.Decimal // suma por estado paid, cualquier tipo
	TotalPending  decimal.Decimal // suma por estado pending, cualquier tipo
	DocumentCount int
	ByType        []TypeSummary // orden estable: primera aparición de cada tipo
}

// AnnualReport es el resumen de un año calendario: doce PeriodReport
// mensuales y los totales anuales, que por construcción son la suma de los
// totales mensuales correspondientes.
type AnnualReport struct {
	Year          int
	TotalInvoiced decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalPending  decimal.Decimal
	Months        []PeriodReport // longitud 12, enero a diciembre
}

// ComputePeriodReport agrega los documentos cuya fecha de emisión cae en
// [start, end). Determinista para el mismo orden de entrada; ByType conserva
// el orden de primera aparición de cada tipo.
//
// Retorna domain.ErrInvalidPeriod si start es posterior a end. Una colección
// vacía (o sin documentos en el período) produce un reporte con totales en
// cero y ByType vacío; no es un error.
//
// El estado paid/pending se suma sin importar el tipo: una cotización pagada
// cuenta en TotalPaid igual que una factura pagada.
func ComputePeriodReport(docs []*entity.Document, start, end time.Time) (*PeriodReport, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidPeriod
	}

	rep := &PeriodReport{
		PeriodStart:   start,
		PeriodEnd:     end,
		TotalInvoiced: decimal.Zero,
		TotalQuotes:   decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalPending:  decimal.Zero,
		ByType:        []TypeSummary{},
	}

	// Índice tipo → posición en ByType para mantener orden de inserción.
	typeIndex := make(map[string]int)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if doc.IssueDate.Before(start) || !doc.IssueDate.Before(end) {
			continue
		}

		rep.DocumentCount++

		idx, seen := typeIndex[doc.Type]
		if !seen {
			idx = len(rep.ByType)
			typeIndex[doc.Type] = idx
			rep.ByType = append(rep.ByType, TypeSummary{Type: doc.Type, Total: decimal.Zero})
		}
		rep.ByType[idx].Count++
		rep.ByType[idx].Total = rep.ByType[idx].Total.Add(doc.Amount)

		switch doc.Type {
		case entity.DocumentTypeInvoice:
			rep.TotalInvoiced = rep.TotalInvoiced.Add(doc.Amount)
		case entity.DocumentTypeQuote:
			rep.TotalQuotes = rep.TotalQuotes.Add(doc.Amount)
		}

		switch doc.Status {
		case entity.DocumentStatusPaid:
			rep.TotalPaid = rep.TotalPaid.Add(doc.Amount)
		case entity.DocumentStatusPending:
			rep.TotalPending = rep.TotalPending.Add(doc.Amount)
		}
	}

	return rep, nil
}

// ComputeAnnualReport calcula los doce reportes mensuales del año y suma los
// totales anuales a partir de ellos. Los límites de mes se construyen en UTC;
// las fechas de emisión deben venir normalizadas igual desde la persistencia.
func ComputeAnnualReport(docs []*entity.Document, year int) (*AnnualReport, error) {
	annual := &AnnualReport{
		Year:          year,
		TotalInvoiced: decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalPending:  decimal.Zero,
		Months:        make([]PeriodReport, 0, 12),
	}

	for month := time.January; month <= time.December; month++ {
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		monthly, err := ComputePeriodReport(docs, start, end)
		if err != nil {
			return nil, err
		}
		annual.Months = append(annual.Months, *monthly)

		annual.TotalInvoiced = annual.TotalInvoiced.Add(monthly.TotalInvoiced)
		annual.TotalPaid = annual.TotalPaid.Add(monthly.TotalPaid)
		annual.TotalPending = annual.TotalPending.Add(monthly.TotalPending)
	}

	return annual, nil
}

// MonthBounds devuelve el período semiabierto [primer día del mes, primer día
// del mes siguiente) en UTC. Helper para el caso de uso de reporte mensual.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
