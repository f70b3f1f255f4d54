package billing

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos de documentos y auditoría atados a
// la misma transacción: el documento y su entrada de bitácora se confirman o
// se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
