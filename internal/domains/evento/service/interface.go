package service

import (
	"context"

	"giit-backend/internal/domains/evento/model"
	"giit-backend/internal/shared/utils"
)

type Service interface {
	CreateEvento(ctx context.Context, req *model.EventoRequest) (*model.Evento, error)
	GetEvento(ctx context.Context, id int64) (*model.Evento, error)
	ListEventos(ctx context.Context, filter model.EventoFilter, page utils.Pagination) ([]*model.Evento, error)
	UpdateEvento(ctx context.Context, id int64, req *model.EventoRequest) (*model.Evento, error)
	DeleteEvento(ctx context.Context, id int64) error
}
