package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/reporting"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes financieros (protegido).
// Los períodos llegan como fechas YYYY-MM-DD y se interpretan en UTC como
// intervalo semiabierto [start, end).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Period calcula el resumen de un período arbitrario.
// GET /api/reports/period?start=2024-01-01&end=2024-02-01
func (h *ReportHandler) Period(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end deben ser fechas YYYY-MM-DD"})
	}
	out, err := h.uc.GetPeriodReport(c.Context(), companyID, start, end)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Monthly calcula el resumen de un mes calendario.
// GET /api/reports/monthly?year=2024&month=1
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year es requerido"})
	}
	out, err := h.uc.GetMonthlyReport(c.Context(), companyID, year, time.Month(month))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12"})
		}
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Annual calcula los doce meses del año con totales anuales.
// GET /api/reports/annual?year=2024
func (h *ReportHandler) Annual(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	year := c.QueryInt("year", 0)
	if year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year es requerido"})
	}
	out, err := h.uc.GetAnnualReport(c.Context(), companyID, year)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF descarga el reporte de período como PDF.
// GET /api/reports/period/pdf?start=2024-01-01&end=2024-02-01
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end deben ser fechas YYYY-MM-DD"})
	}
	pdf, filename, err := h.uc.ExportPeriodReportPDF(c.Context(), companyID, start, end)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// ExportXML descarga el reporte de período como XML.
// GET /api/reports/period/xml?start=2024-01-01&end=2024-02-01
func (h *ReportHandler) ExportXML(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end deben ser fechas YYYY-MM-DD"})
	}
	xml, filename, err := h.uc.ExportPeriodReportXML(c.Context(), companyID, start, end)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xml)
}

// parsePeriod lee start y end (YYYY-MM-DD, UTC) de la query string.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// reportError mapea los errores de dominio de reportes a HTTP.
func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidPeriod {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "la fecha inicial es posterior a la final"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
