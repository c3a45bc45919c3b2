package repository

import (
	"context"
	"time"

	"giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for usuarios.
// Find* methods return (nil, nil) when the row does not exist and always
// populate Usuario.Rol.
type Repository interface {
	Create(ctx context.Context, u *model.Usuario) (*model.Usuario, error)
	FindByID(ctx context.Context, id int64) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context, page utils.Pagination) ([]*model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) (*model.Usuario, error)
	Delete(ctx context.Context, id int64) error
	TouchLastAccess(ctx context.Context, id int64, at time.Time) error

	Exists(ctx context.Context, id int64) (bool, error)

	// approval.ApproverLookup
	FindApprover(ctx context.Context, id int64) (*approval.Approver, error)

	// Dependents, used by the strict delete policy
	HasLineas(ctx context.Context, id int64) (bool, error)
	HasPublicaciones(ctx context.Context, id int64) (bool, error)
	HasProductos(ctx context.Context, id int64) (bool, error)
	HasEventos(ctx context.Context, id int64) (bool, error)
}
