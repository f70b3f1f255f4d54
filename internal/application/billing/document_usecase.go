package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// Prefijos del consecutivo legible por tipo de documento.
var numberPrefix = map[string]string{
	entity.DocumentTypeInvoice: "FV",
	entity.DocumentTypeQuote:   "CT",
	entity.DocumentTypePayment: "RC",
}

// DocumentUseCase casos de uso del ciclo de vida de documentos financieros
// (facturas, cotizaciones, pagos). Cada mutación escribe su entrada de
// auditoría dentro de la misma transacción.
type DocumentUseCase struct {
	txRunner     TxRunner
	docRepo      repository.DocumentRepository
	customerRepo repository.CustomerRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(txRunner TxRunner, docRepo repository.DocumentRepository, customerRepo repository.CustomerRepository) *DocumentUseCase {
	return &DocumentUseCase{txRunner: txRunner, docRepo: docRepo, customerRepo: customerRepo}
}

// Create valida y persiste un documento nuevo junto con su entrada de
// auditoría. Si Number va vacío se genera el consecutivo por empresa y tipo.
func (uc *DocumentUseCase) Create(ctx context.Context, companyID, userID identifier.UID, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if !entity.ValidDocumentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.DocumentStatusPending
	}
	if !entity.ValidDocumentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	issueDate, err := time.ParseInLocation("2006-01-02", in.IssueDate, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	customerID, err := identifier.Parse(in.CustomerID)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	docEnt := &entity.Document{
		ID:         identifier.New(),
		CompanyID:  companyID,
		CustomerID: customerID,
		Type:       in.Type,
		Number:     in.Number,
		Amount:     in.Amount,
		Status:     status,
		IssueDate:  issueDate,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(docRepo repository.DocumentRepository, auditRepo repository.AuditLogRepository) error {
		if docEnt.Number == "" {
			next, err := docRepo.NextNumber(ctx, companyID, docEnt.Type)
			if err != nil {
				return fmt.Errorf("consecutivo de documento: %w", err)
			}
			docEnt.Number = fmt.Sprintf("%s-%06d", numberPrefix[docEnt.Type], next)
		}
		if err := docRepo.Create(ctx, docEnt); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:         identifier.New(),
			CompanyID:  companyID,
			UserID:     userID,
			Action:     entity.AuditActionCreate,
			EntityType: "document",
			EntityID:   docEnt.ID,
			Details:    fmt.Sprintf("%s %s por %s", docEnt.Type, docEnt.Number, docEnt.Amount.StringFixed(2)),
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return documentToResponse(docEnt), nil
}

// GetByID obtiene un documento verificando que pertenece a la empresa del token.
func (uc *DocumentUseCase) GetByID(ctx context.Context, companyID, id identifier.UID) (*dto.DocumentResponse, error) {
	docEnt, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if docEnt == nil {
		return nil, domain.ErrNotFound
	}
	if docEnt.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return documentToResponse(docEnt), nil
}

// List lista documentos de la empresa con filtros de tipo/estado y paginación.
func (uc *DocumentUseCase) List(ctx context.Context, companyID identifier.UID, filter repository.DocumentFilter) (*dto.DocumentListResponse, error) {
	if filter.Type != "" && !entity.ValidDocumentType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Status != "" && !entity.ValidDocumentStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.docRepo.ListByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *documentToResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// MarkPaid cambia el estado a paid y deja la entrada de auditoría en la misma
// transacción. Devuelve domain.ErrConflict si ya estaba pagado.
func (uc *DocumentUseCase) MarkPaid(ctx context.Context, companyID, userID, id identifier.UID) (*dto.DocumentResponse, error) {
	docEnt, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if docEnt == nil {
		return nil, domain.ErrNotFound
	}
	if docEnt.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if docEnt.Status == entity.DocumentStatusPaid {
		return nil, domain.ErrConflict
	}

	now := time.Now().UTC()
	err = uc.txRunner.Run(ctx, func(docRepo repository.DocumentRepository, auditRepo repository.AuditLogRepository) error {
		// Relectura dentro de la transacción: dos MarkPaid concurrentes no
		// deben pagar ni auditar dos veces el mismo documento.
		current, err := docRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.Status == entity.DocumentStatusPaid {
			return domain.ErrConflict
		}
		if err := docRepo.UpdateStatus(ctx, id, entity.DocumentStatusPaid, now); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:         identifier.New(),
			CompanyID:  companyID,
			UserID:     userID,
			Action:     entity.AuditActionUpdate,
			EntityType: "document",
			EntityID:   id,
			Details:    fmt.Sprintf("%s marcado como pagado", docEnt.Number),
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	docEnt.Status = entity.DocumentStatusPaid
	docEnt.UpdatedAt = now
	return documentToResponse(docEnt), nil
}

func documentToResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:         d.ID.String(),
		CompanyID:  d.CompanyID.String(),
		CustomerID: d.CustomerID.String(),
		Type:       d.Type,
		Number:     d.Number,
		Amount:     d.Amount,
		Status:     d.Status,
		IssueDate:  d.IssueDate.Format("2006-01-02"),
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
	}
}
