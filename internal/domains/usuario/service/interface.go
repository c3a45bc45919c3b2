package service

import (
	"context"

	"giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/utils"
)

// Service defines business operations for usuarios
type Service interface {
	CreateUsuario(ctx context.Context, req *model.UsuarioRequest) (*model.Usuario, error)
	GetUsuario(ctx context.Context, id int64) (*model.Usuario, error)
	ListUsuarios(ctx context.Context, page utils.Pagination) ([]*model.Usuario, error)
	UpdateUsuario(ctx context.Context, id int64, req *model.UsuarioRequest) (*model.Usuario, error)
	DeleteUsuario(ctx context.Context, id int64) error
}
