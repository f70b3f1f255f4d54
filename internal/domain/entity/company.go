package entity

import (
	"time"

	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// Company representa una organización/tenant del sistema. Todo registro del
// dominio (clientes, documentos, auditoría) pertenece a una Company.
type Company struct {
	ID        identifier.UID
	Name      string
	TaxID     string // NIT (con o sin dígito de verificación)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
