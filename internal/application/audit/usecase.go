// Package audit contiene los casos de uso de la bitácora de auditoría:
// registro de acciones, listado paginado y exportación CSV.
package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// CSVExporter serializa entradas de auditoría como CSV para descarga.
// Implementado en infrastructure/export (codificación compatible con Excel).
type CSVExporter interface {
	ExportAuditCSV(entries []*entity.AuditLog) ([]byte, error)
}

// AuditUseCase registra y consulta la bitácora de auditoría.
type AuditUseCase struct {
	repo     repository.AuditLogRepository
	exporter CSVExporter
	log      zerolog.Logger
}

// NewAuditUseCase construye el caso de uso. exporter puede ser nil si la
// instalación no expone descarga CSV.
func NewAuditUseCase(repo repository.AuditLogRepository, exporter CSVExporter, log zerolog.Logger) *AuditUseCase {
	return &AuditUseCase{repo: repo, exporter: exporter, log: log}
}

// Record persiste una entrada de auditoría fuera de transacción (acciones que
// no mutan entidades de negocio, ej. login). La bitácora nunca tumba la
// operación principal: si la inserción falla solo se deja registro en el log.
func (uc *AuditUseCase) Record(ctx context.Context, companyID, userID identifier.UID, action, entityType string, entityID identifier.UID, details string) {
	entry := &entity.AuditLog{
		ID:         identifier.New(),
		CompanyID:  companyID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		uc.log.Error().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Msg("no se pudo registrar la entrada de auditoría")
	}
}

// List devuelve la bitácora de la empresa, más recientes primero, con el
// total para paginación.
func (uc *AuditUseCase) List(ctx context.Context, companyID identifier.UID, filter repository.AuditLogFilter) (*dto.AuditLogListResponse, error) {
	entries, err := uc.repo.ListByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *auditToResponse(e))
	}
	return &dto.AuditLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	}, nil
}

// ExportCSV exporta la bitácora filtrada como CSV para descarga.
func (uc *AuditUseCase) ExportCSV(ctx context.Context, companyID identifier.UID, filter repository.AuditLogFilter) ([]byte, error) {
	entries, err := uc.repo.ListByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportAuditCSV(entries)
}

func auditToResponse(e *entity.AuditLog) *dto.AuditLogResponse {
	if e == nil {
		return nil
	}
	resp := &dto.AuditLogResponse{
		ID:         e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		UserID:     e.UserID.String(),
		Action:     e.Action,
		EntityType: e.EntityType,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
	if !e.EntityID.IsZero() {
		resp.EntityID = e.EntityID.String()
	}
	return resp
}
