package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// DocumentFilter acota los listados de documentos. Los campos vacíos no filtran.
type DocumentFilter struct {
	Type   string // invoice | quote | payment
	Status string // paid | pending
	Limit  int
	Offset int
}

// DocumentRepository define la persistencia de documentos financieros.
// Las implementaciones son el único punto de contacto del reporte con la DB:
// el agregador trabaja sobre las colecciones que estos métodos devuelven.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id identifier.UID) (*entity.Document, error)
	ListByCompany(ctx context.Context, companyID identifier.UID, filter DocumentFilter) ([]*entity.Document, error)
	// ListByPeriod devuelve los documentos con fecha de emisión en [start, end),
	// ordenados por fecha de emisión ascendente y luego por creación, para que
	// la agregación sea determinista.
	ListByPeriod(ctx context.Context, companyID identifier.UID, start, end time.Time) ([]*entity.Document, error)
	// ListByYear es ListByPeriod sobre el año calendario completo (UTC).
	ListByYear(ctx context.Context, companyID identifier.UID, year int) ([]*entity.Document, error)
	UpdateStatus(ctx context.Context, id identifier.UID, status string, updatedAt time.Time) error
	// NextNumber devuelve el siguiente consecutivo por empresa y tipo (ej: 124).
	NextNumber(ctx context.Context, companyID identifier.UID, docType string) (int64, error)
}
