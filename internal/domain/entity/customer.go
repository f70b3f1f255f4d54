package entity

import (
	"time"

	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// Customer representa un cliente de la empresa (destinatario de facturas y cotizaciones).
type Customer struct {
	ID        identifier.UID
	CompanyID identifier.UID
	Name      string
	TaxID     string // NIT o Cédula
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
