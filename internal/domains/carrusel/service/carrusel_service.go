package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"giit-backend/internal/domains/carrusel/model"
	"giit-backend/internal/domains/carrusel/repository"
	"giit-backend/pkg/cache"
)

// ListCacheKey giữ danh sách fotos đã sắp theo orden
const ListCacheKey = "carrusel:list"

type carruselService struct {
	repo  repository.Repository
	cache cache.Cache // nil khi Redis không khả dụng
	ttl   time.Duration
}

func NewCarruselService(repo repository.Repository, c cache.Cache, ttl time.Duration) Service {
	return &carruselService{repo: repo, cache: c, ttl: ttl}
}

func (s *carruselService) CreateFoto(ctx context.Context, req *model.CarruselFotoRequest) (*model.CarruselFoto, error) {
	f := req.ToModel()
	if err := s.ensureOrdenFree(ctx, f.Orden, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *carruselService) GetFoto(ctx context.Context, id int64) (*model.CarruselFoto, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, model.NewFotoNotFound()
	}
	return f, nil
}

// ListFotos đọc cache trước; lỗi cache chỉ log, không làm fail request
func (s *carruselService) ListFotos(ctx context.Context) ([]*model.CarruselFoto, error) {
	if s.cache != nil {
		var cached []*model.CarruselFoto
		found, err := s.cache.Get(ctx, ListCacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", ListCacheKey).Msg("[CARRUSEL] cache read failed")
		} else if found {
			return cached, nil
		}
	}

	fotos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ListCacheKey, fotos, s.ttl); err != nil {
			log.Warn().Err(err).Str("key", ListCacheKey).Msg("[CARRUSEL] cache write failed")
		}
	}
	return fotos, nil
}

func (s *carruselService) UpdateFoto(ctx context.Context, id int64, req *model.CarruselFotoRequest) (*model.CarruselFoto, error) {
	current, err := s.GetFoto(ctx, id)
	if err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.ID = id
	if next.Orden != current.Orden {
		if err := s.ensureOrdenFree(ctx, next.Orden, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *carruselService) ChangeOrden(ctx context.Context, id int64, orden int) error {
	current, err := s.GetFoto(ctx, id)
	if err != nil {
		return err
	}
	if current.Orden == orden {
		return nil
	}

	if err := s.ensureOrdenFree(ctx, orden, id); err != nil {
		return err
	}
	if err := s.repo.UpdateOrden(ctx, id, orden); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *carruselService) DeleteFoto(ctx context.Context, id int64) error {
	if _, err := s.GetFoto(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *carruselService) ensureOrdenFree(ctx context.Context, orden int, self int64) error {
	existing, err := s.repo.FindByOrden(ctx, orden)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return model.NewOrdenTaken(orden)
	}
	return nil
}

func (s *carruselService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ListCacheKey); err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("[CARRUSEL] cache invalidation failed")
	}
}
