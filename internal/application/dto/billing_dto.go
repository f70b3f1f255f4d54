package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateDocumentRequest body para POST /api/documents.
// Number es opcional: si va vacío se genera el consecutivo por empresa y tipo.
type CreateDocumentRequest struct {
	CustomerID string          `json:"customer_id"`
	Type       string          `json:"type"` // invoice | quote | payment
	Number     string          `json:"number,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status,omitempty"` // paid | pending; pending por defecto
	IssueDate  string          `json:"issue_date"`       // YYYY-MM-DD
	Notes      string          `json:"notes,omitempty"`
}

// DocumentResponse documento en respuestas. Los identificadores van en forma
// canónica UUID; las fechas en RFC 3339.
type DocumentResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	CustomerID string          `json:"customer_id"`
	Type       string          `json:"type"`
	Number     string          `json:"number"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	IssueDate  string          `json:"issue_date"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// DocumentListResponse lista paginada de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
