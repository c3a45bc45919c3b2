package repository

import (
	"context"

	"giit-backend/internal/domains/tipologia/model"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for tipologias.
// Find* methods return (nil, nil) when the row does not exist.
type Repository interface {
	Create(ctx context.Context, t *model.Tipologia) (*model.Tipologia, error)
	FindByID(ctx context.Context, id int64) (*model.Tipologia, error)
	FindByName(ctx context.Context, nombre string) (*model.Tipologia, error)
	List(ctx context.Context, page utils.Pagination) ([]*model.Tipologia, error)
	Update(ctx context.Context, t *model.Tipologia) (*model.Tipologia, error)
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	HasProductos(ctx context.Context, id int64) (bool, error)
}
