// Package reporting contiene los casos de uso de reportes financieros:
// resumen por período arbitrario, por mes y por año calendario, más las
// exportaciones PDF y XML del reporte de período.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/report"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// ReportUseCase carga los documentos del período desde la persistencia y
// delega el cálculo en el agregador puro de internal/domain/report.
// Los reportes se computan bajo demanda y nunca se persisten.
type ReportUseCase struct {
	docRepo     repository.DocumentRepository
	companyRepo repository.CompanyRepository
	pdfGen      PeriodReportPDFGenerator
	xmlExporter PeriodReportXMLExporter
}

// NewReportUseCase construye el caso de uso. pdfGen y xmlExporter pueden ser
// nil si la instalación no expone exportaciones.
func NewReportUseCase(
	docRepo repository.DocumentRepository,
	companyRepo repository.CompanyRepository,
	pdfGen PeriodReportPDFGenerator,
	xmlExporter PeriodReportXMLExporter,
) *ReportUseCase {
	return &ReportUseCase{
		docRepo:     docRepo,
		companyRepo: companyRepo,
		pdfGen:      pdfGen,
		xmlExporter: xmlExporter,
	}
}

// GetPeriodReport calcula el resumen de [start, end) para la empresa.
// Devuelve domain.ErrInvalidPeriod si start es posterior a end.
func (uc *ReportUseCase) GetPeriodReport(ctx context.Context, companyID identifier.UID, start, end time.Time) (*dto.PeriodReportResponse, error) {
	rep, err := uc.computePeriod(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	return periodReportToResponse(rep), nil
}

// GetMonthlyReport calcula el resumen del mes calendario indicado.
func (uc *ReportUseCase) GetMonthlyReport(ctx context.Context, companyID identifier.UID, year int, month time.Month) (*dto.PeriodReportResponse, error) {
	if month < time.January || month > time.December {
		return nil, domain.ErrInvalidInput
	}
	start, end := report.MonthBounds(year, month)
	return uc.GetPeriodReport(ctx, companyID, start, end)
}

// GetAnnualReport calcula los doce meses del año y los totales anuales.
func (uc *ReportUseCase) GetAnnualReport(ctx context.Context, companyID identifier.UID, year int) (*dto.AnnualReportResponse, error) {
	docs, err := uc.docRepo.ListByYear(ctx, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("reporte anual: cargar documentos: %w", err)
	}
	annual, err := report.ComputeAnnualReport(docs, year)
	if err != nil {
		return nil, err
	}

	months := make([]dto.PeriodReportResponse, 0, len(annual.Months))
	for i := range annual.Months {
		months = append(months, *periodReportToResponse(&annual.Months[i]))
	}
	return &dto.AnnualReportResponse{
		Year:          annual.Year,
		TotalInvoiced: annual.TotalInvoiced,
		TotalPaid:     annual.TotalPaid,
		TotalPending:  annual.TotalPending,
		Months:        months,
	}, nil
}

// ExportPeriodReportPDF genera el PDF del reporte de período.
// Retorna (bytes, nombre de archivo, error).
func (uc *ReportUseCase) ExportPeriodReportPDF(ctx context.Context, companyID identifier.UID, start, end time.Time) ([]byte, string, error) {
	if uc.pdfGen == nil {
		return nil, "", domain.ErrInvalidInput
	}
	company, rep, err := uc.companyAndPeriod(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdfGen.GeneratePeriodReportPDF(ctx, company, rep)
	if err != nil {
		return nil, "", fmt.Errorf("exportar reporte PDF: %w", err)
	}
	filename := fmt.Sprintf("reporte_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	return pdf, filename, nil
}

// ExportPeriodReportXML genera el XML del reporte de período.
func (uc *ReportUseCase) ExportPeriodReportXML(ctx context.Context, companyID identifier.UID, start, end time.Time) ([]byte, string, error) {
	if uc.xmlExporter == nil {
		return nil, "", domain.ErrInvalidInput
	}
	company, rep, err := uc.companyAndPeriod(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}
	xml, err := uc.xmlExporter.ExportPeriodReportXML(company, rep)
	if err != nil {
		return nil, "", fmt.Errorf("exportar reporte XML: %w", err)
	}
	filename := fmt.Sprintf("reporte_%s_%s.xml", start.Format("20060102"), end.Format("20060102"))
	return xml, filename, nil
}

func (uc *ReportUseCase) computePeriod(ctx context.Context, companyID identifier.UID, start, end time.Time) (*report.PeriodReport, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidPeriod
	}
	docs, err := uc.docRepo.ListByPeriod(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte de período: cargar documentos: %w", err)
	}
	return report.ComputePeriodReport(docs, start, end)
}

func (uc *ReportUseCase) companyAndPeriod(ctx context.Context, companyID identifier.UID, start, end time.Time) (*entity.Company, *report.PeriodReport, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("exportar reporte: cargar empresa: %w", err)
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	rep, err := uc.computePeriod(ctx, companyID, start, end)
	if err != nil {
		return nil, nil, err
	}
	return company, rep, nil
}

func periodReportToResponse(rep *report.PeriodReport) *dto.PeriodReportResponse {
	byType := make([]dto.TypeSummaryDTO, 0, len(rep.ByType))
	for _, ts := range rep.ByType {
		byType = append(byType, dto.TypeSummaryDTO{Type: ts.Type, Count: ts.Count, Total: ts.Total})
	}
	return &dto.PeriodReportResponse{
		PeriodStart:   rep.PeriodStart.Format(time.RFC3339),
		PeriodEnd:     rep.PeriodEnd.Format(time.RFC3339),
		TotalInvoiced: rep.TotalInvoiced,
		TotalQuotes:   rep.TotalQuotes,
		TotalPaid:     rep.TotalPaid,
		TotalPending:  rep.TotalPending,
		DocumentCount: rep.DocumentCount,
		ByType:        byType,
	}
}
