package entity

import (
	"time"

	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// Acciones registradas en la bitácora de auditoría.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionLogin  = "login"
)

// AuditLog es una entrada inmutable de la bitácora de auditoría.
// Pertenece a la empresa (tenant) donde ocurrió la acción; una vez
// persistida nunca se modifica ni se borra desde la aplicación.
type AuditLog struct {
	ID         identifier.UID
	CompanyID  identifier.UID
	UserID     identifier.UID
	Action     string         // ver constantes AuditAction*
	EntityType string         // "document", "customer", "company", ...
	EntityID   identifier.UID // Nil si la acción no refiere a una entidad concreta
	Details    string         // descripción libre o JSON con el diff
	CreatedAt  time.Time
}
