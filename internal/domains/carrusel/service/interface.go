package service

import (
	"context"

	"giit-backend/internal/domains/carrusel/model"
)

type Service interface {
	CreateFoto(ctx context.Context, req *model.CarruselFotoRequest) (*model.CarruselFoto, error)
	GetFoto(ctx context.Context, id int64) (*model.CarruselFoto, error)
	ListFotos(ctx context.Context) ([]*model.CarruselFoto, error)
	UpdateFoto(ctx context.Context, id int64, req *model.CarruselFotoRequest) (*model.CarruselFoto, error)
	ChangeOrden(ctx context.Context, id int64, orden int) error
	DeleteFoto(ctx context.Context, id int64) error
}
