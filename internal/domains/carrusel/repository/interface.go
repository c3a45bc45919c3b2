package repository

import (
	"context"

	"giit-backend/internal/domains/carrusel/model"
)

// Repository defines data access for carrusel_fotos.
// Find* methods return (nil, nil) when the row does not exist.
type Repository interface {
	Create(ctx context.Context, f *model.CarruselFoto) (*model.CarruselFoto, error)
	FindByID(ctx context.Context, id int64) (*model.CarruselFoto, error)
	FindByOrden(ctx context.Context, orden int) (*model.CarruselFoto, error)
	// List returns every foto ordered by orden
	List(ctx context.Context) ([]*model.CarruselFoto, error)
	Update(ctx context.Context, f *model.CarruselFoto) (*model.CarruselFoto, error)
	UpdateOrden(ctx context.Context, id int64, orden int) error
	Delete(ctx context.Context, id int64) error
}
