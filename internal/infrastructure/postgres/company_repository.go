package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
// Los identificadores se persisten como CHAR(32) vía pkg/identifier.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.TaxID, company.Address, company.Phone, company.Email,
		company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Nil sin error si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id identifier.UID) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByTaxID obtiene una empresa por NIT. Nil sin error si no existe.
func (r *CompanyRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM companies WHERE tax_id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, taxID).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by tax_id: %w", err)
	}
	return &c, nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
