package repository

import (
	"context"

	"giit-backend/internal/domains/linea/model"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for lineas_investigacion.
// Rows are returned without Responsable; the service expands it.
type Repository interface {
	Create(ctx context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error)
	FindByID(ctx context.Context, id int64) (*model.LineaInvestigacion, error)
	List(ctx context.Context, filter model.LineaFilter, page utils.Pagination) ([]*model.LineaInvestigacion, error)
	Update(ctx context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error)
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	HasPublicaciones(ctx context.Context, id int64) (bool, error)
	HasProductos(ctx context.Context, id int64) (bool, error)
}
