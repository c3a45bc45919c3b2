package repository

import (
	"context"

	"giit-backend/internal/domains/rol/model"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for roles.
// Find* methods return (nil, nil) when the row does not exist.
type Repository interface {
	Create(ctx context.Context, rol *model.Rol) (*model.Rol, error)
	FindByID(ctx context.Context, id int64) (*model.Rol, error)
	FindByName(ctx context.Context, nombre string) (*model.Rol, error)
	List(ctx context.Context, page utils.Pagination) ([]*model.Rol, error)
	Update(ctx context.Context, rol *model.Rol) (*model.Rol, error)
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	HasUsuarios(ctx context.Context, id int64) (bool, error)
}
