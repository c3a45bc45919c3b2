package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"giit-backend/internal/domains/evento/model"
	"giit-backend/internal/domains/evento/repository"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

type UsuarioReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*usuarioModel.Usuario, error)
}

type eventoService struct {
	repo     repository.Repository
	usuarios UsuarioReader
}

func NewEventoService(repo repository.Repository, usuarios UsuarioReader) Service {
	return &eventoService{repo: repo, usuarios: usuarios}
}

// check: creador trước, khoảng ngày sau
func (s *eventoService) check(ctx context.Context, req *model.EventoRequest) error {
	if err := guard.Require(ctx,
		guard.Required(req.IDCreador, s.usuarios.Exists, model.NewCreadorNotFound()),
	); err != nil {
		return err
	}
	return req.CheckDates()
}

func (s *eventoService) CreateEvento(ctx context.Context, req *model.EventoRequest) (*model.Evento, error) {
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("id_evento", created.IDEvento).Int64("id_creador", created.IDCreador).Msg("[EVENTO] created")
	return s.expand(ctx, created)
}

func (s *eventoService) GetEvento(ctx context.Context, id int64) (*model.Evento, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, model.NewEventoNotFound()
	}
	return s.expand(ctx, e)
}

func (s *eventoService) ListEventos(ctx context.Context, filter model.EventoFilter, page utils.Pagination) ([]*model.Evento, error) {
	eventos, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	for i := range eventos {
		if eventos[i], err = s.expand(ctx, eventos[i]); err != nil {
			return nil, err
		}
	}
	return eventos, nil
}

func (s *eventoService) UpdateEvento(ctx context.Context, id int64, req *model.EventoRequest) (*model.Evento, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, model.NewEventoNotFound()
	}

	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.IDEvento = id
	next.FotoEvento = utils.KeepIfPlaceholder(req.FotoEvento, current.FotoEvento)

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, updated)
}

func (s *eventoService) DeleteEvento(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("id_evento", id).Msg("[EVENTO] deleted")
	return nil
}

func (s *eventoService) expand(ctx context.Context, e *model.Evento) (*model.Evento, error) {
	creador, err := s.usuarios.FindByID(ctx, e.IDCreador)
	if err != nil {
		return nil, err
	}
	e.Creador = creador
	return e, nil
}
