package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"giit-backend/internal/domains/linea/model"
	"giit-backend/internal/domains/linea/repository"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

// UsuarioReader là phần của usuario repository mà linea cần
type UsuarioReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*usuarioModel.Usuario, error)
}

type lineaService struct {
	repo     repository.Repository
	usuarios UsuarioReader
}

func NewLineaService(repo repository.Repository, usuarios UsuarioReader) Service {
	return &lineaService{repo: repo, usuarios: usuarios}
}

func (s *lineaService) CreateLinea(ctx context.Context, req *model.LineaRequest) (*model.LineaInvestigacion, error) {
	if err := guard.Require(ctx,
		guard.Optional(req.IDResponsable, s.usuarios.Exists, model.NewResponsableNotFound()),
	); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, created)
}

func (s *lineaService) GetLinea(ctx context.Context, id int64) (*model.LineaInvestigacion, error) {
	l, err := s.FindLinea(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, model.NewLineaNotFound()
	}
	return l, nil
}

// FindLinea returns (nil, nil) when the linea does not exist.
func (s *lineaService) FindLinea(ctx context.Context, id int64) (*model.LineaInvestigacion, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil || l == nil {
		return nil, err
	}
	return s.expand(ctx, l)
}

func (s *lineaService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *lineaService) ListLineas(ctx context.Context, filter model.LineaFilter, page utils.Pagination) ([]*model.LineaInvestigacion, error) {
	lineas, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	for i := range lineas {
		if lineas[i], err = s.expand(ctx, lineas[i]); err != nil {
			return nil, err
		}
	}
	return lineas, nil
}

func (s *lineaService) UpdateLinea(ctx context.Context, id int64, req *model.LineaRequest) (*model.LineaInvestigacion, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, model.NewLineaNotFound()
	}

	if err := guard.Require(ctx,
		guard.Optional(req.IDResponsable, s.usuarios.Exists, model.NewResponsableNotFound()),
	); err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.IDLinea = id
	next.ImagenLogo = utils.KeepIfPlaceholder(req.ImagenLogo, current.ImagenLogo)
	if req.Estado == nil {
		next.Estado = current.Estado
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, updated)
}

func (s *lineaService) DeleteLinea(ctx context.Context, id int64) error {
	if _, err := s.GetLinea(ctx, id); err != nil {
		return err
	}

	if err := guard.EnsureNoDependents(ctx, id, model.NewLineaHasDependents(),
		guard.Dependent{Name: "publicaciones", Has: s.repo.HasPublicaciones},
		guard.Dependent{Name: "productos", Has: s.repo.HasProductos},
	); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("id_linea", id).Msg("[LINEA] deleted")
	return nil
}

// expand gắn Responsable vào linea
func (s *lineaService) expand(ctx context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error) {
	if l.IDResponsable == nil {
		return l, nil
	}
	responsable, err := s.usuarios.FindByID(ctx, *l.IDResponsable)
	if err != nil {
		return nil, err
	}
	l.Responsable = responsable
	return l, nil
}
