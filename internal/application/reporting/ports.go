package reporting

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/report"
)

// PeriodReportPDFGenerator genera la representación gráfica (PDF) de un
// reporte de período. Implementado en infrastructure/pdf con Maroto.
type PeriodReportPDFGenerator interface {
	GeneratePeriodReportPDF(ctx context.Context, company *entity.Company, rep *report.PeriodReport) ([]byte, error)
}

// PeriodReportXMLExporter serializa un reporte de período como documento XML
// para integraciones contables. Implementado en infrastructure/export.
type PeriodReportXMLExporter interface {
	ExportPeriodReportXML(company *entity.Company, rep *report.PeriodReport) ([]byte, error)
}
