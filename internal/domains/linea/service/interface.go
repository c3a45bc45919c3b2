package service

import (
	"context"

	"giit-backend/internal/domains/linea/model"
	"giit-backend/internal/shared/utils"
)

type Service interface {
	CreateLinea(ctx context.Context, req *model.LineaRequest) (*model.LineaInvestigacion, error)
	GetLinea(ctx context.Context, id int64) (*model.LineaInvestigacion, error)
	ListLineas(ctx context.Context, filter model.LineaFilter, page utils.Pagination) ([]*model.LineaInvestigacion, error)
	UpdateLinea(ctx context.Context, id int64, req *model.LineaRequest) (*model.LineaInvestigacion, error)
	DeleteLinea(ctx context.Context, id int64) error

	// Lookups dùng bởi publicacion và producto
	Exists(ctx context.Context, id int64) (bool, error)
	FindLinea(ctx context.Context, id int64) (*model.LineaInvestigacion, error)
}
