package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/reporting"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// fakeDocumentRepo repositorio en memoria para los tests del caso de uso.
// Filtra por empresa y período igual que la implementación Postgres.
type fakeDocumentRepo struct {
	docs []*entity.Document
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id identifier.UID) (*entity.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) ListByCompany(ctx context.Context, companyID identifier.UID, filter repository.DocumentFilter) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) ListByPeriod(ctx context.Context, companyID identifier.UID, start, end time.Time) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.CompanyID != companyID {
			continue
		}
		if d.IssueDate.Before(start) || !d.IssueDate.Before(end) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDocumentRepo) ListByYear(ctx context.Context, companyID identifier.UID, year int) ([]*entity.Document, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return f.ListByPeriod(ctx, companyID, start, start.AddDate(1, 0, 0))
}

func (f *fakeDocumentRepo) UpdateStatus(ctx context.Context, id identifier.UID, status string, updatedAt time.Time) error {
	return nil
}

func (f *fakeDocumentRepo) NextNumber(ctx context.Context, companyID identifier.UID, docType string) (int64, error) {
	return 1, nil
}

var _ repository.DocumentRepository = (*fakeDocumentRepo)(nil)

func seedDocs(companyID identifier.UID) *fakeDocumentRepo {
	mk := func(t string, amount float64, status string, issue time.Time) *entity.Document {
		return &entity.Document{
			ID:        identifier.New(),
			CompanyID: companyID,
			Type:      t,
			Amount:    decimal.NewFromFloat(amount),
			Status:    status,
			IssueDate: issue,
		}
	}
	return &fakeDocumentRepo{docs: []*entity.Document{
		mk(entity.DocumentTypeInvoice, 100, entity.DocumentStatusPaid, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)),
		mk(entity.DocumentTypeInvoice, 50, entity.DocumentStatusPending, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
		mk(entity.DocumentTypeQuote, 80, entity.DocumentStatusPending, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)),
	}}
}

func TestGetPeriodReport_Enero(t *testing.T) {
	companyID := identifier.New()
	uc := reporting.NewReportUseCase(seedDocs(companyID), nil, nil, nil)

	rep, err := uc.GetPeriodReport(context.Background(), companyID,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, rep.DocumentCount)
	assert.True(t, rep.TotalInvoiced.Equal(decimal.NewFromInt(150)))
	assert.True(t, rep.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, rep.TotalPending.Equal(decimal.NewFromInt(50)))
	require.Len(t, rep.ByType, 1)
	assert.Equal(t, entity.DocumentTypeInvoice, rep.ByType[0].Type)
}

func TestGetPeriodReport_PeriodoInvertido(t *testing.T) {
	companyID := identifier.New()
	uc := reporting.NewReportUseCase(seedDocs(companyID), nil, nil, nil)

	_, err := uc.GetPeriodReport(context.Background(), companyID,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestGetPeriodReport_AislamientoPorEmpresa(t *testing.T) {
	companyID := identifier.New()
	uc := reporting.NewReportUseCase(seedDocs(companyID), nil, nil, nil)

	// Otra empresa no ve los documentos sembrados.
	rep, err := uc.GetPeriodReport(context.Background(), identifier.New(),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, rep.DocumentCount)
	assert.Empty(t, rep.ByType)
}

func TestGetMonthlyReport_MesInvalido(t *testing.T) {
	companyID := identifier.New()
	uc := reporting.NewReportUseCase(seedDocs(companyID), nil, nil, nil)

	_, err := uc.GetMonthlyReport(context.Background(), companyID, 2024, time.Month(13))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetAnnualReport_TotalesYMeses(t *testing.T) {
	companyID := identifier.New()
	uc := reporting.NewReportUseCase(seedDocs(companyID), nil, nil, nil)

	annual, err := uc.GetAnnualReport(context.Background(), companyID, 2024)
	require.NoError(t, err)
	require.Len(t, annual.Months, 12)
	assert.Equal(t, 2024, annual.Year)

	assert.True(t, annual.TotalInvoiced.Equal(decimal.NewFromInt(150)))
	assert.True(t, annual.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, annual.TotalPending.Equal(decimal.NewFromInt(130)))

	// Enero concentra las dos facturas; marzo la cotización.
	assert.Equal(t, 2, annual.Months[0].DocumentCount)
	assert.Equal(t, 1, annual.Months[2].DocumentCount)
	assert.Equal(t, 0, annual.Months[5].DocumentCount)
}

func TestGetMonthlyReport_Marzo(t *testing.T) {
	companyID := identifier.New()
	uc := reporting.NewReportUseCase(seedDocs(companyID), nil, nil, nil)

	rep, err := uc.GetMonthlyReport(context.Background(), companyID, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.DocumentCount)
	assert.True(t, rep.TotalQuotes.Equal(decimal.NewFromInt(80)))
}
