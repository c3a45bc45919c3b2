package service

import (
	"context"

	"giit-backend/internal/domains/tipologia/model"
	"giit-backend/internal/domains/tipologia/repository"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

type tipologiaService struct {
	repo repository.Repository
}

func NewTipologiaService(repo repository.Repository) Service {
	return &tipologiaService{repo: repo}
}

func (s *tipologiaService) CreateTipologia(ctx context.Context, req *model.TipologiaRequest) (*model.Tipologia, error) {
	t := req.ToModel()
	if err := s.ensureNameFree(ctx, t.Nombre, 0); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, t)
}

func (s *tipologiaService) GetTipologia(ctx context.Context, id int64) (*model.Tipologia, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, model.NewTipologiaNotFound()
	}
	return t, nil
}

func (s *tipologiaService) ListTipologias(ctx context.Context, page utils.Pagination) ([]*model.Tipologia, error) {
	return s.repo.List(ctx, page)
}

func (s *tipologiaService) UpdateTipologia(ctx context.Context, id int64, req *model.TipologiaRequest) (*model.Tipologia, error) {
	current, err := s.GetTipologia(ctx, id)
	if err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.IDTipologia = id
	if next.Nombre != current.Nombre {
		if err := s.ensureNameFree(ctx, next.Nombre, id); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, next)
}

func (s *tipologiaService) DeleteTipologia(ctx context.Context, id int64) error {
	if _, err := s.GetTipologia(ctx, id); err != nil {
		return err
	}

	if err := guard.EnsureNoDependents(ctx, id, model.NewTipologiaHasProductos(),
		guard.Dependent{Name: "productos", Has: s.repo.HasProductos},
	); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// ensureNameFree fails when another tipologia (id != self) already uses nombre
func (s *tipologiaService) ensureNameFree(ctx context.Context, nombre string, self int64) error {
	existing, err := s.repo.FindByName(ctx, nombre)
	if err != nil {
		return err
	}
	if existing != nil && existing.IDTipologia != self {
		return model.NewTipologiaNameExists()
	}
	return nil
}
