package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// AuditLogFilter acota los listados de auditoría. Los campos vacíos no filtran.
type AuditLogFilter struct {
	Action     string
	EntityType string
	Limit      int
	Offset     int
}

// AuditLogRepository define la persistencia de la bitácora de auditoría.
// Solo inserción y lectura: las entradas son inmutables.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	// ListByCompany devuelve entradas de la empresa, más recientes primero.
	ListByCompany(ctx context.Context, companyID identifier.UID, filter AuditLogFilter) ([]*entity.AuditLog, error)
	CountByCompany(ctx context.Context, companyID identifier.UID, filter AuditLogFilter) (int, error)
}
