package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// AuditHandler maneja la consulta de la bitácora de auditoría (protegido,
// solo admin y contador).
type AuditHandler struct {
	uc *audit.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List lista la bitácora con filtros opcionales, más recientes primero.
// GET /api/audit-logs?action=create&entity_type=document&limit=20&offset=0
func (h *AuditHandler) List(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	filter := repository.AuditLogFilter{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	out, err := h.uc.List(c.Context(), companyID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCSV descarga la bitácora filtrada como CSV.
// GET /api/audit-logs/export.csv?action=&entity_type=
func (h *AuditHandler) ExportCSV(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	filter := repository.AuditLogFilter{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Limit:      c.QueryInt("limit", 1000),
		Offset:     c.QueryInt("offset", 0),
	}
	out, err := h.uc.ExportCSV(c.Context(), companyID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=iso-8859-1")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="auditoria.csv"`)
	return c.Send(out)
}
