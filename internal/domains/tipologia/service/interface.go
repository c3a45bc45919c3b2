package service

import (
	"context"

	"giit-backend/internal/domains/tipologia/model"
	"giit-backend/internal/shared/utils"
)

type Service interface {
	CreateTipologia(ctx context.Context, req *model.TipologiaRequest) (*model.Tipologia, error)
	GetTipologia(ctx context.Context, id int64) (*model.Tipologia, error)
	ListTipologias(ctx context.Context, page utils.Pagination) ([]*model.Tipologia, error)
	UpdateTipologia(ctx context.Context, id int64, req *model.TipologiaRequest) (*model.Tipologia, error)
	DeleteTipologia(ctx context.Context, id int64) error
}
