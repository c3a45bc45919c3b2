package repository

import (
	"context"

	"giit-backend/internal/domains/producto/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for productos.
// FindByID returns (nil, nil) when the row does not exist.
type Repository interface {
	Create(ctx context.Context, p *model.Producto) (*model.Producto, error)
	FindByID(ctx context.Context, id int64) (*model.Producto, error)
	List(ctx context.Context, filter model.ProductoFilter, page utils.Pagination) ([]*model.Producto, error)
	Update(ctx context.Context, p *model.Producto) (*model.Producto, error)
	UpdateEstadoDesarrollo(ctx context.Context, id int64, estado string) (*model.Producto, error)
	UpdateApproval(ctx context.Context, id int64, t *approval.Transition) (*model.Producto, error)
	Delete(ctx context.Context, id int64) error
}
