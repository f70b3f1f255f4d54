package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// DocumentHandler maneja las peticiones HTTP de documentos financieros
// (facturas, cotizaciones, pagos; protegido).
type DocumentHandler struct {
	uc *billing.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *billing.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create crea un documento y registra la entrada de auditoría.
// POST /api/documents
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	companyID, okC := GetCompanyID(c)
	userID, okU := GetUserID(c)
	if !okC || !okU {
		return unauthorized(c)
	}
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.Create(c.Context(), companyID, userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, estado, monto o fecha inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el cliente pertenece a otra empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// GetByID obtiene un documento.
// GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := identifier.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	doc, err := h.uc.GetByID(c.Context(), companyID, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(doc)
}

// List lista documentos con filtros opcionales.
// GET /api/documents?type=invoice&status=pending&limit=20&offset=0
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	companyID, ok := GetCompanyID(c)
	if !ok {
		return unauthorized(c)
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	filter := repository.DocumentFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	list, err := h.uc.List(c.Context(), companyID, filter)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type o status inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// MarkPaid marca un documento como pagado.
// POST /api/documents/:id/pay
func (h *DocumentHandler) MarkPaid(c *fiber.Ctx) error {
	companyID, okC := GetCompanyID(c)
	userID, okU := GetUserID(c)
	if !okC || !okU {
		return unauthorized(c)
	}
	id, err := identifier.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	doc, err := h.uc.MarkPaid(c.Context(), companyID, userID, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "el documento ya está pagado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(doc)
}
