package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

var _ audit.CSVExporter = (*CSVAuditExporter)(nil)

// CSVAuditExporter serializa la bitácora como CSV con punto y coma y
// codificación ISO-8859-1, el formato que Excel en Windows abre sin
// asistente de importación.
type CSVAuditExporter struct{}

// NewCSVAuditExporter crea el exportador.
func NewCSVAuditExporter() *CSVAuditExporter {
	return &CSVAuditExporter{}
}

// ExportAuditCSV genera el CSV de la bitácora. Columnas fijas; entity_id
// vacío cuando la acción no aplica a una entidad concreta.
func (e *CSVAuditExporter) ExportAuditCSV(entries []*entity.AuditLog) ([]byte, error) {
	var buf bytes.Buffer
	enc := transform.NewWriter(&buf, charmap.ISO8859_1.NewEncoder())

	w := csv.NewWriter(enc)
	w.Comma = ';'

	header := []string{"fecha", "usuario", "accion", "entidad", "entity_id", "detalles"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export: escribir encabezado CSV: %w", err)
	}

	for _, entry := range entries {
		entityID := ""
		if !entry.EntityID.IsZero() {
			entityID = entry.EntityID.String()
		}
		row := []string{
			entry.CreatedAt.Format(time.RFC3339),
			entry.UserID.String(),
			entry.Action,
			entry.EntityType,
			entityID,
			entry.Details,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export: escribir fila CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: volcar CSV: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: cerrar codificador ISO-8859-1: %w", err)
	}
	return buf.Bytes(), nil
}
