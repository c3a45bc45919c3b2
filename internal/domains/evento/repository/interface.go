package repository

import (
	"context"

	"giit-backend/internal/domains/evento/model"
	"giit-backend/internal/shared/utils"
)

// Repository defines data access for eventos.
// Rows are returned without Creador; the service expands it.
type Repository interface {
	Create(ctx context.Context, e *model.Evento) (*model.Evento, error)
	FindByID(ctx context.Context, id int64) (*model.Evento, error)
	List(ctx context.Context, filter model.EventoFilter, page utils.Pagination) ([]*model.Evento, error)
	Update(ctx context.Context, e *model.Evento) (*model.Evento, error)
	Delete(ctx context.Context, id int64) error
}
