package service

import (
	"context"

	"giit-backend/internal/domains/rol/model"
	"giit-backend/internal/shared/utils"
)

// Service defines business operations for roles
type Service interface {
	CreateRol(ctx context.Context, req *model.RolRequest) (*model.Rol, error)
	GetRol(ctx context.Context, id int64) (*model.Rol, error)
	ListRoles(ctx context.Context, page utils.Pagination) ([]*model.Rol, error)
	UpdateRol(ctx context.Context, id int64, req *model.RolRequest) (*model.Rol, error)
	DeleteRol(ctx context.Context, id int64) error
}
