package dto

// AuditLogResponse entrada de auditoría en respuestas. Identificadores en
// forma canónica UUID; created_at en RFC 3339.
type AuditLogResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id,omitempty"`
	Details    string `json:"details,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// AuditLogListResponse lista paginada de auditoría.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
