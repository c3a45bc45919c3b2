package repository

import (
	"context"

	"giit-backend/internal/domains/publicacion/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for publicaciones.
// FindByID returns (nil, nil) when the row does not exist.
type Repository interface {
	Create(ctx context.Context, p *model.Publicacion) (*model.Publicacion, error)
	FindByID(ctx context.Context, id int64) (*model.Publicacion, error)
	List(ctx context.Context, filter model.PublicacionFilter, page utils.Pagination) ([]*model.Publicacion, error)
	// Update ghi các field nội dung; estado và field duyệt giữ nguyên
	Update(ctx context.Context, p *model.Publicacion) (*model.Publicacion, error)
	UpdateApproval(ctx context.Context, id int64, t *approval.Transition) (*model.Publicacion, error)
	Delete(ctx context.Context, id int64) error
}
