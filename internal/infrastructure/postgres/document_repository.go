package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
// Montos NUMERIC → decimal vía el codec registrado en el pool; identificadores
// como CHAR(32) vía pkg/identifier.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, company_id, customer_id, type, number, amount, status, issue_date, notes, created_at, updated_at`

// Create persiste un documento nuevo.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		doc.ID, doc.CompanyID, doc.CustomerID, doc.Type, doc.Number, doc.Amount,
		doc.Status, doc.IssueDate, nullIfEmpty(doc.Notes), doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. Nil sin error si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id identifier.UID) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, err := scanDocument(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListByCompany lista documentos de la empresa con filtros opcionales de tipo
// y estado, más recientes primero.
func (r *DocumentRepo) ListByCompany(ctx context.Context, companyID identifier.UID, filter repository.DocumentFilter) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE company_id = $1`
	args := []any{companyID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY issue_date DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return r.queryDocuments(ctx, query, args...)
}

// ListByPeriod devuelve los documentos con fecha de emisión en [start, end),
// ordenados de forma determinista para la agregación.
func (r *DocumentRepo) ListByPeriod(ctx context.Context, companyID identifier.UID, start, end time.Time) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE company_id = $1 AND issue_date >= $2 AND issue_date < $3
		ORDER BY issue_date, created_at`
	return r.queryDocuments(ctx, query, companyID, start, end)
}

// ListByYear es ListByPeriod sobre el año calendario completo (UTC).
func (r *DocumentRepo) ListByYear(ctx context.Context, companyID identifier.UID, year int) ([]*entity.Document, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return r.ListByPeriod(ctx, companyID, start, start.AddDate(1, 0, 0))
}

// UpdateStatus cambia el estado de cobro del documento.
func (r *DocumentRepo) UpdateStatus(ctx context.Context, id identifier.UID, status string, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE documents SET status = $2, updated_at = $3 WHERE id = $1`, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo por empresa y tipo usando la
// tabla document_counters (UPSERT atómico, seguro bajo concurrencia).
func (r *DocumentRepo) NextNumber(ctx context.Context, companyID identifier.UID, docType string) (int64, error) {
	query := `
		INSERT INTO document_counters (company_id, doc_type, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, doc_type)
		DO UPDATE SET last_number = document_counters.last_number + 1
		RETURNING last_number`
	var next int64
	if err := r.q.QueryRow(ctx, query, companyID, docType).Scan(&next); err != nil {
		return 0, fmt.Errorf("next document number: %w", err)
	}
	return next, nil
}

func (r *DocumentRepo) queryDocuments(ctx context.Context, query string, args ...any) ([]*entity.Document, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	var notes *string
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.CustomerID, &d.Type, &d.Number, &d.Amount,
		&d.Status, &d.IssueDate, &notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		d.Notes = *notes
	}
	return &d, nil
}
