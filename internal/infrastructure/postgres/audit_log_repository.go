package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository (usable con pool o tx).
// Solo INSERT y SELECT: las entradas de auditoría son inmutables.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste una entrada. entity_id va NULL cuando la acción no refiere
// a una entidad concreta.
func (r *AuditLogRepo) Create(ctx context.Context, entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, company_id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var entityID any
	if !entry.EntityID.IsZero() {
		entityID = entry.EntityID
	}
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.CompanyID, entry.UserID, entry.Action, entry.EntityType,
		entityID, nullIfEmpty(entry.Details), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByCompany devuelve entradas de la empresa, más recientes primero.
func (r *AuditLogRepo) ListByCompany(ctx context.Context, companyID identifier.UID, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, company_id, user_id, action, entity_type, entity_id, details, created_at
		FROM audit_logs WHERE company_id = $1`
	args := []any{companyID}
	query, args = appendAuditFilter(query, args, filter)

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var e entity.AuditLog
		var entityID, details *string
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.UserID, &e.Action, &e.EntityType, &entityID, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if entityID != nil {
			parsed, err := identifier.Parse(*entityID)
			if err != nil {
				return nil, fmt.Errorf("audit log entity_id: %w", err)
			}
			e.EntityID = parsed
		}
		if details != nil {
			e.Details = *details
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByCompany cuenta las entradas que satisfacen el filtro.
func (r *AuditLogRepo) CountByCompany(ctx context.Context, companyID identifier.UID, filter repository.AuditLogFilter) (int, error) {
	query := `SELECT COUNT(*) FROM audit_logs WHERE company_id = $1`
	args := []any{companyID}
	query, args = appendAuditFilter(query, args, filter)

	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count audit logs: %w", err)
	}
	return total, nil
}

func appendAuditFilter(query string, args []any, filter repository.AuditLogFilter) (string, []any) {
	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if filter.EntityType != "" {
		args = append(args, filter.EntityType)
		query += fmt.Sprintf(" AND entity_type = $%d", len(args))
	}
	return query, args
}
