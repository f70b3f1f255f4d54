// Package export serializa reportes y bitácora para descarga e integración:
// XML del reporte de período (sistemas contables) y CSV de auditoría
// (compatible con Excel).
package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Gestion-api/internal/application/reporting"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/report"
)

var _ reporting.PeriodReportXMLExporter = (*XMLReportExporter)(nil)

// XMLReportExporter construye el documento XML del reporte de período.
type XMLReportExporter struct{}

// NewXMLReportExporter crea el exportador.
func NewXMLReportExporter() *XMLReportExporter {
	return &XMLReportExporter{}
}

// ExportPeriodReportXML genera el XML del reporte. Estructura:
//
//	<PeriodReport>
//	  <Company id="..." taxId="...">...</Company>
//	  <Period start="..." end="..."/>
//	  <Totals invoiced="..." quotes="..." paid="..." pending="..."/>
//	  <Documents count="N">
//	    <TypeSummary type="invoice" count="N" total="..."/>
//	  </Documents>
//	</PeriodReport>
func (e *XMLReportExporter) ExportPeriodReportXML(company *entity.Company, rep *report.PeriodReport) ([]byte, error) {
	if company == nil || rep == nil {
		return nil, fmt.Errorf("export: faltan empresa o reporte")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("PeriodReport")
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))

	companyEl := root.CreateElement("Company")
	companyEl.CreateAttr("id", company.ID.String())
	companyEl.CreateAttr("taxId", company.TaxID)
	companyEl.SetText(company.Name)

	periodEl := root.CreateElement("Period")
	periodEl.CreateAttr("start", rep.PeriodStart.Format(time.RFC3339))
	periodEl.CreateAttr("end", rep.PeriodEnd.Format(time.RFC3339))

	totalsEl := root.CreateElement("Totals")
	totalsEl.CreateAttr("invoiced", rep.TotalInvoiced.StringFixed(2))
	totalsEl.CreateAttr("quotes", rep.TotalQuotes.StringFixed(2))
	totalsEl.CreateAttr("paid", rep.TotalPaid.StringFixed(2))
	totalsEl.CreateAttr("pending", rep.TotalPending.StringFixed(2))

	docsEl := root.CreateElement("Documents")
	docsEl.CreateAttr("count", fmt.Sprintf("%d", rep.DocumentCount))
	for _, ts := range rep.ByType {
		tsEl := docsEl.CreateElement("TypeSummary")
		tsEl.CreateAttr("type", ts.Type)
		tsEl.CreateAttr("count", fmt.Sprintf("%d", ts.Count))
		tsEl.CreateAttr("total", ts.Total.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
