package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/report"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

func TestExportPeriodReportXML(t *testing.T) {
	company := &entity.Company{
		ID:    identifier.New(),
		Name:  "Distribuciones El Roble S.A.S.",
		TaxID: "901234567-8",
	}
	rep := &report.PeriodReport{
		PeriodStart:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		TotalInvoiced: decimal.NewFromInt(150),
		TotalPaid:     decimal.NewFromInt(100),
		TotalPending:  decimal.NewFromInt(50),
		TotalQuotes:   decimal.Zero,
		DocumentCount: 2,
		ByType: []report.TypeSummary{
			{Type: entity.DocumentTypeInvoice, Count: 2, Total: decimal.NewFromInt(150)},
		},
	}

	out, err := NewXMLReportExporter().ExportPeriodReportXML(company, rep)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<PeriodReport`)
	assert.Contains(t, xml, `taxId="901234567-8"`)
	assert.Contains(t, xml, `invoiced="150.00"`)
	assert.Contains(t, xml, `pending="50.00"`)
	assert.Contains(t, xml, `<TypeSummary type="invoice" count="2" total="150.00"/>`)
}

func TestExportPeriodReportXML_SinDatos(t *testing.T) {
	_, err := NewXMLReportExporter().ExportPeriodReportXML(nil, nil)
	assert.Error(t, err)
}

func TestExportAuditCSV(t *testing.T) {
	entryID := identifier.New()
	entries := []*entity.AuditLog{
		{
			ID:         identifier.New(),
			CompanyID:  identifier.New(),
			UserID:     identifier.New(),
			Action:     entity.AuditActionCreate,
			EntityType: "document",
			EntityID:   entryID,
			Details:    `{"number":"FV-000001"}`,
			CreatedAt:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        identifier.New(),
			CompanyID: identifier.New(),
			UserID:    identifier.New(),
			Action:    entity.AuditActionLogin,
			CreatedAt: time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
		},
	}

	out, err := NewCSVAuditExporter().ExportAuditCSV(entries)
	require.NoError(t, err)

	// El CSV viene en ISO-8859-1; se decodifica para las aserciones.
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(decoded)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "fecha;usuario;accion;entidad;entity_id;detalles", lines[0])
	assert.Contains(t, lines[1], "create")
	assert.Contains(t, lines[1], entryID.String())
	assert.Contains(t, lines[2], "login")
	// Acción sin entidad asociada deja entity_id vacío.
	assert.Contains(t, lines[2], ";;")
}

func TestExportAuditCSV_Vacio(t *testing.T) {
	out, err := NewCSVAuditExporter().ExportAuditCSV(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "fecha;usuario")
}
