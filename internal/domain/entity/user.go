package entity

import (
	"time"

	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleContador = "contador"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           identifier.UID
	CompanyID    identifier.UID
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, contador, vendedor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
