package service

import (
	"context"

	"giit-backend/internal/domains/rol/model"
	"giit-backend/internal/domains/rol/repository"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

// rolService implements Service
type rolService struct {
	repo repository.Repository
}

func NewRolService(repo repository.Repository) Service {
	return &rolService{repo: repo}
}

func (s *rolService) CreateRol(ctx context.Context, req *model.RolRequest) (*model.Rol, error) {
	rol := req.ToModel()

	existing, err := s.repo.FindByName(ctx, rol.NombreRol)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewRolNameExists()
	}

	return s.repo.Create(ctx, rol)
}

func (s *rolService) GetRol(ctx context.Context, id int64) (*model.Rol, error) {
	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, model.NewRolNotFound()
	}
	return rol, nil
}

func (s *rolService) ListRoles(ctx context.Context, page utils.Pagination) ([]*model.Rol, error) {
	return s.repo.List(ctx, page)
}

func (s *rolService) UpdateRol(ctx context.Context, id int64, req *model.RolRequest) (*model.Rol, error) {
	current, err := s.GetRol(ctx, id)
	if err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.IDRol = id

	// Chỉ kiểm tra trùng tên khi tên thay đổi
	if next.NombreRol != current.NombreRol {
		existing, err := s.repo.FindByName(ctx, next.NombreRol)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.IDRol != id {
			return nil, model.NewRolNameExists()
		}
	}

	return s.repo.Update(ctx, next)
}

func (s *rolService) DeleteRol(ctx context.Context, id int64) error {
	if _, err := s.GetRol(ctx, id); err != nil {
		return err
	}

	if err := guard.EnsureNoDependents(ctx, id, model.NewRolHasUsuarios(),
		guard.Dependent{Name: "usuarios", Has: s.repo.HasUsuarios},
	); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
