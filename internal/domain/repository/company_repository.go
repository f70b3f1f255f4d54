package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// CompanyRepository define la persistencia de empresas (tenants).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id identifier.UID) (*entity.Company, error)
	// GetByTaxID busca por NIT; nil sin error si no existe.
	GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
