package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// UserRepository define la persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id identifier.UID) (*entity.User, error)
	// FindByEmail busca en todas las empresas; nil sin error si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndCompany(ctx context.Context, email string, companyID identifier.UID) (*entity.User, error)
}
