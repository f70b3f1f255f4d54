package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// CustomerUseCase casos de uso de clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente para la empresa del token.
// Devuelve domain.ErrDuplicate si el NIT/cédula ya existe en la empresa.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID identifier.UID, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndTaxID(ctx, companyID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:        identifier.New(),
		CompanyID: companyID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// List lista los clientes de la empresa con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, companyID identifier.UID, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *customerToResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID.String(),
		CompanyID: c.CompanyID.String(),
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
