package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// CustomerRepository define la persistencia de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id identifier.UID) (*entity.Customer, error)
	GetByCompanyAndTaxID(ctx context.Context, companyID identifier.UID, taxID string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID identifier.UID, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
