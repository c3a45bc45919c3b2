package service

import (
	"context"

	"giit-backend/internal/domains/producto/model"
	"giit-backend/internal/shared/utils"
)

// Service defines business operations for productos
type Service interface {
	CreateProducto(ctx context.Context, req *model.ProductoRequest) (*model.ProductoResponse, error)
	GetProducto(ctx context.Context, id int64) (*model.ProductoResponse, error)
	ListProductos(ctx context.Context, filter model.ProductoFilter, page utils.Pagination) ([]*model.ProductoResponse, error)
	UpdateProducto(ctx context.Context, id int64, req *model.ProductoRequest) (*model.ProductoResponse, error)
	DeleteProducto(ctx context.Context, id int64) error

	// Development axis
	UpdateEstadoDesarrollo(ctx context.Context, id int64, estado string) (*model.ProductoResponse, error)

	// Approval axis
	AprobarProducto(ctx context.Context, id, approverID int64) (*model.ProductoResponse, error)
	RechazarProducto(ctx context.Context, id, approverID int64) (*model.ProductoResponse, error)
	UpdateEstadoAprobacion(ctx context.Context, id int64, req *model.EstadoUpdateRequest) (*model.EstadoResponse, error)
}
