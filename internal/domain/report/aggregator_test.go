package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/report"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

func doc(docType string, amount float64, status string, issue time.Time) *entity.Document {
	return &entity.Document{
		ID:        identifier.New(),
		CompanyID: identifier.New(),
		Type:      docType,
		Amount:    decimal.NewFromFloat(amount),
		Status:    status,
		IssueDate: issue,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestComputePeriodReport_VectorEnero replica el ejemplo de referencia:
// dos facturas de enero (100 pagada, 50 pendiente) sobre [2024-01-01, 2024-02-01).
func TestComputePeriodReport_VectorEnero(t *testing.T) {
	docs := []*entity.Document{
		doc(entity.DocumentTypeInvoice, 100, entity.DocumentStatusPaid, date(2024, time.January, 15)),
		doc(entity.DocumentTypeInvoice, 50, entity.DocumentStatusPending, date(2024, time.January, 20)),
	}

	rep, err := report.ComputePeriodReport(docs, date(2024, time.January, 1), date(2024, time.February, 1))
	require.NoError(t, err)

	assert.True(t, rep.TotalInvoiced.Equal(decimal.NewFromInt(150)), "total facturado = 150")
	assert.True(t, rep.TotalPaid.Equal(decimal.NewFromInt(100)), "total pagado = 100")
	assert.True(t, rep.TotalPending.Equal(decimal.NewFromInt(50)), "total pendiente = 50")
	assert.True(t, rep.TotalQuotes.IsZero(), "sin cotizaciones")
	assert.Equal(t, 2, rep.DocumentCount)

	require.Len(t, rep.ByType, 1)
	assert.Equal(t, entity.DocumentTypeInvoice, rep.ByType[0].Type)
	assert.Equal(t, 2, rep.ByType[0].Count)
	assert.True(t, rep.ByType[0].Total.Equal(decimal.NewFromInt(150)))
}

func TestComputePeriodReport_PeriodoInvertido(t *testing.T) {
	_, err := report.ComputePeriodReport(nil, date(2024, time.March, 1), date(2024, time.February, 1))
	require.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestComputePeriodReport_ColeccionVacia(t *testing.T) {
	rep, err := report.ComputePeriodReport(nil, date(2024, time.January, 1), date(2024, time.February, 1))
	require.NoError(t, err)

	assert.Zero(t, rep.DocumentCount)
	assert.True(t, rep.TotalInvoiced.IsZero())
	assert.True(t, rep.TotalQuotes.IsZero())
	assert.True(t, rep.TotalPaid.IsZero())
	assert.True(t, rep.TotalPending.IsZero())
	assert.NotNil(t, rep.ByType, "ByType debe ser slice vacío, no nil")
	assert.Empty(t, rep.ByType)
}

// TestComputePeriodReport_LimitesSemiabiertos: start entra, end no.
func TestComputePeriodReport_LimitesSemiabiertos(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.February, 1)
	docs := []*entity.Document{
		doc(entity.DocumentTypeInvoice, 10, entity.DocumentStatusPaid, start),                   // incluido
		doc(entity.DocumentTypeInvoice, 20, entity.DocumentStatusPaid, end),                     // excluido
		doc(entity.DocumentTypeInvoice, 30, entity.DocumentStatusPaid, start.AddDate(0, 0, -1)), // excluido
	}

	rep, err := report.ComputePeriodReport(docs, start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.DocumentCount)
	assert.True(t, rep.TotalInvoiced.Equal(decimal.NewFromInt(10)))
}

func TestComputePeriodReport_PeriodoVacioValido(t *testing.T) {
	d := date(2024, time.May, 1)
	docs := []*entity.Document{doc(entity.DocumentTypeInvoice, 10, entity.DocumentStatusPaid, d)}

	// start == end es un período válido pero sin documentos posibles.
	rep, err := report.ComputePeriodReport(docs, d, d)
	require.NoError(t, err)
	assert.Zero(t, rep.DocumentCount)
}

// TestComputePeriodReport_OrdenPorPrimeraAparicion: el orden de ByType es el
// orden en que cada tipo aparece por primera vez en la entrada.
func TestComputePeriodReport_OrdenPorPrimeraAparicion(t *testing.T) {
	jan := date(2024, time.January, 10)
	docs := []*entity.Document{
		doc(entity.DocumentTypeQuote, 5, entity.DocumentStatusPending, jan),
		doc(entity.DocumentTypeInvoice, 10, entity.DocumentStatusPaid, jan),
		doc(entity.DocumentTypeQuote, 7, entity.DocumentStatusPending, jan),
		doc(entity.DocumentTypePayment, 3, entity.DocumentStatusPaid, jan),
		doc(entity.DocumentTypeInvoice, 20, entity.DocumentStatusPending, jan),
	}

	rep, err := report.ComputePeriodReport(docs, date(2024, time.January, 1), date(2024, time.February, 1))
	require.NoError(t, err)

	require.Len(t, rep.ByType, 3)
	assert.Equal(t, entity.DocumentTypeQuote, rep.ByType[0].Type)
	assert.Equal(t, entity.DocumentTypeInvoice, rep.ByType[1].Type)
	assert.Equal(t, entity.DocumentTypePayment, rep.ByType[2].Type)

	assert.Equal(t, 2, rep.ByType[0].Count)
	assert.True(t, rep.ByType[0].Total.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 2, rep.ByType[1].Count)
	assert.True(t, rep.ByType[1].Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 1, rep.ByType[2].Count)
}

// TestComputePeriodReport_DocumentCountEsSumaDeByType: invariante
// DocumentCount == Σ ByType[i].Count sobre una mezcla variada.
func TestComputePeriodReport_DocumentCountEsSumaDeByType(t *testing.T) {
	var docs []*entity.Document
	types := []string{entity.DocumentTypeInvoice, entity.DocumentTypeQuote, entity.DocumentTypePayment}
	statuses := []string{entity.DocumentStatusPaid, entity.DocumentStatusPending}
	for i := 0; i < 37; i++ {
		docs = append(docs, doc(types[i%3], float64(i)+0.5, statuses[i%2], date(2024, time.March, 1+i%28)))
	}

	rep, err := report.ComputePeriodReport(docs, date(2024, time.March, 1), date(2024, time.April, 1))
	require.NoError(t, err)

	sum := 0
	for _, ts := range rep.ByType {
		sum += ts.Count
	}
	assert.Equal(t, rep.DocumentCount, sum)
	assert.Equal(t, 37, rep.DocumentCount)
}

// TestComputePeriodReport_PagadoYPendienteCruzanTipos: el eje de estado es
// independiente del eje de tipo — una cotización pagada suma en TotalPaid.
func TestComputePeriodReport_PagadoYPendienteCruzanTipos(t *testing.T) {
	jan := date(2024, time.January, 10)
	docs := []*entity.Document{
		doc(entity.DocumentTypeQuote, 40, entity.DocumentStatusPaid, jan),
		doc(entity.DocumentTypePayment, 60, entity.DocumentStatusPaid, jan),
		doc(entity.DocumentTypeInvoice, 25, entity.DocumentStatusPending, jan),
	}

	rep, err := report.ComputePeriodReport(docs, date(2024, time.January, 1), date(2024, time.February, 1))
	require.NoError(t, err)

	assert.True(t, rep.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, rep.TotalPending.Equal(decimal.NewFromInt(25)))
	assert.True(t, rep.TotalInvoiced.Equal(decimal.NewFromInt(25)))
	assert.True(t, rep.TotalQuotes.Equal(decimal.NewFromInt(40)))

	// paid + pending cubre el total del período.
	totalPeriodo := rep.TotalPaid.Add(rep.TotalPending)
	assert.True(t, totalPeriodo.Equal(decimal.NewFromInt(125)))
}

// TestComputePeriodReport_Idempotente: el mismo input produce siempre el
// mismo resultado.
func TestComputePeriodReport_Idempotente(t *testing.T) {
	docs := []*entity.Document{
		doc(entity.DocumentTypeInvoice, 99.99, entity.DocumentStatusPaid, date(2024, time.June, 3)),
		doc(entity.DocumentTypeQuote, 12.34, entity.DocumentStatusPending, date(2024, time.June, 9)),
	}
	start, end := date(2024, time.June, 1), date(2024, time.July, 1)

	rep1, err1 := report.ComputePeriodReport(docs, start, end)
	rep2, err2 := report.ComputePeriodReport(docs, start, end)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, rep1, rep2)
}

// TestComputeAnnualReport_TotalesSonSumaDeMeses: invariante anual sobre los
// tres campos de total.
func TestComputeAnnualReport_TotalesSonSumaDeMeses(t *testing.T) {
	var docs []*entity.Document
	for month := time.January; month <= time.December; month++ {
		docs = append(docs,
			doc(entity.DocumentTypeInvoice, float64(month)*100, entity.DocumentStatusPaid, date(2024, month, 5)),
			doc(entity.DocumentTypeQuote, float64(month)*10, entity.DocumentStatusPending, date(2024, month, 20)),
		)
	}
	// Ruido fuera del año: no debe aparecer en ningún mes.
	docs = append(docs, doc(entity.DocumentTypeInvoice, 9999, entity.DocumentStatusPaid, date(2023, time.December, 31)))
	docs = append(docs, doc(entity.DocumentTypeInvoice, 9999, entity.DocumentStatusPaid, date(2025, time.January, 1)))

	annual, err := report.ComputeAnnualReport(docs, 2024)
	require.NoError(t, err)
	require.Len(t, annual.Months, 12)
	assert.Equal(t, 2024, annual.Year)

	sumInvoiced, sumPaid, sumPending := decimal.Zero, decimal.Zero, decimal.Zero
	for _, m := range annual.Months {
		sumInvoiced = sumInvoiced.Add(m.TotalInvoiced)
		sumPaid = sumPaid.Add(m.TotalPaid)
		sumPending = sumPending.Add(m.TotalPending)
	}
	assert.True(t, annual.TotalInvoiced.Equal(sumInvoiced))
	assert.True(t, annual.TotalPaid.Equal(sumPaid))
	assert.True(t, annual.TotalPending.Equal(sumPending))

	// 1+2+...+12 = 78 → facturado 7800, pendiente 780.
	assert.True(t, annual.TotalInvoiced.Equal(decimal.NewFromInt(7800)))
	assert.True(t, annual.TotalPaid.Equal(decimal.NewFromInt(7800)))
	assert.True(t, annual.TotalPending.Equal(decimal.NewFromInt(780)))
}

func TestComputeAnnualReport_MesesCalendario(t *testing.T) {
	annual, err := report.ComputeAnnualReport(nil, 2024)
	require.NoError(t, err)
	require.Len(t, annual.Months, 12)

	for i, m := range annual.Months {
		assert.Equal(t, time.Month(i+1), m.PeriodStart.Month())
		assert.Equal(t, 1, m.PeriodStart.Day())
		assert.Equal(t, m.PeriodStart.AddDate(0, 1, 0), m.PeriodEnd)
		assert.Zero(t, m.DocumentCount)
	}
	// Febrero bisiesto: [feb 1, mar 1).
	assert.Equal(t, date(2024, time.March, 1), annual.Months[1].PeriodEnd)
}

func TestMonthBounds(t *testing.T) {
	start, end := report.MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.March, 1), end)
}
