package service

import (
	"context"

	"giit-backend/internal/domains/publicacion/model"
	"giit-backend/internal/shared/utils"
)

// Service defines business operations for publicaciones.
// Every read and write returns the projected PublicacionResponse.
type Service interface {
	CreatePublicacion(ctx context.Context, req *model.PublicacionRequest) (*model.PublicacionResponse, error)
	GetPublicacion(ctx context.Context, id int64) (*model.PublicacionResponse, error)
	ListPublicaciones(ctx context.Context, filter model.PublicacionFilter, page utils.Pagination) ([]*model.PublicacionResponse, error)
	UpdatePublicacion(ctx context.Context, id int64, req *model.PublicacionRequest) (*model.PublicacionResponse, error)
	DeletePublicacion(ctx context.Context, id int64) error

	// Approval
	AprobarPublicacion(ctx context.Context, id, approverID int64) (*model.PublicacionResponse, error)
	RechazarPublicacion(ctx context.Context, id, approverID int64) (*model.PublicacionResponse, error)
	UpdateEstado(ctx context.Context, id int64, req *model.EstadoUpdateRequest) (*model.EstadoResponse, error)
}
