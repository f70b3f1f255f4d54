package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// Tipos de documento financiero sujetos a reportes.
const (
	DocumentTypeInvoice = "invoice" // factura de venta
	DocumentTypeQuote   = "quote"   // cotización
	DocumentTypePayment = "payment" // pago recibido
)

// Estados de cobro de un documento.
const (
	DocumentStatusPaid    = "paid"
	DocumentStatusPending = "pending"
)

// ValidDocumentType reporta si t es uno de los tipos conocidos.
func ValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeQuote, DocumentTypePayment:
		return true
	}
	return false
}

// ValidDocumentStatus reporta si s es uno de los estados conocidos.
func ValidDocumentStatus(s string) bool {
	return s == DocumentStatusPaid || s == DocumentStatusPending
}

// Document representa un documento financiero de la empresa: factura,
// cotización o pago. Es la unidad sobre la que trabajan los reportes.
type Document struct {
	ID         identifier.UID
	CompanyID  identifier.UID
	CustomerID identifier.UID
	Type       string // ver constantes DocumentType*
	Number     string // consecutivo legible, ej: "FV-000123"
	Amount     decimal.Decimal
	Status     string // paid | pending
	IssueDate  time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
