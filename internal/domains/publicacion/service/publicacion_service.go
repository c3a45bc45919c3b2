package service

import (
	"context"

	"github.com/rs/zerolog/log"

	lineaModel "giit-backend/internal/domains/linea/model"
	"giit-backend/internal/domains/publicacion/model"
	"giit-backend/internal/domains/publicacion/repository"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

// EstadoMessagePrefix mở đầu mensaje của PUT /estado
const EstadoMessagePrefix = "Estado actualizado a"

type UsuarioReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*usuarioModel.Usuario, error)
}

// LineaReader is satisfied by the linea service
type LineaReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindLinea(ctx context.Context, id int64) (*lineaModel.LineaInvestigacion, error)
}

type publicacionService struct {
	repo      repository.Repository
	usuarios  UsuarioReader
	lineas    LineaReader
	approvers approval.ApproverLookup
	engine    *approval.Engine
}

func NewPublicacionService(
	repo repository.Repository,
	usuarios UsuarioReader,
	lineas LineaReader,
	approvers approval.ApproverLookup,
	engine *approval.Engine,
) Service {
	return &publicacionService{
		repo:      repo,
		usuarios:  usuarios,
		lineas:    lineas,
		approvers: approvers,
		engine:    engine,
	}
}

func (s *publicacionService) checkReferences(ctx context.Context, req *model.PublicacionRequest) error {
	return guard.Require(ctx,
		guard.Required(req.IDAutorPrincipal, s.usuarios.Exists, model.NewAutorNotFound()),
		guard.Optional(req.IDLinea, s.lineas.Exists, model.NewLineaSpecifiedNotFound()),
	)
}

func (s *publicacionService) CreatePublicacion(ctx context.Context, req *model.PublicacionRequest) (*model.PublicacionResponse, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("id_publicacion", created.IDPublicacion).
		Int64("id_autor_principal", created.IDAutorPrincipal).
		Msg("[PUBLICACION] created")
	return s.present(ctx, created)
}

func (s *publicacionService) find(ctx context.Context, id int64) (*model.Publicacion, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewPublicacionNotFound()
	}
	return p, nil
}

func (s *publicacionService) GetPublicacion(ctx context.Context, id int64) (*model.PublicacionResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, p)
}

func (s *publicacionService) ListPublicaciones(ctx context.Context, filter model.PublicacionFilter, page utils.Pagination) ([]*model.PublicacionResponse, error) {
	publicaciones, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	out := make([]*model.PublicacionResponse, 0, len(publicaciones))
	for _, p := range publicaciones {
		resp, err := s.present(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *publicacionService) UpdatePublicacion(ctx context.Context, id int64, req *model.PublicacionRequest) (*model.PublicacionResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.IDPublicacion = id

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, updated)
}

func (s *publicacionService) DeletePublicacion(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *publicacionService) AprobarPublicacion(ctx context.Context, id, approverID int64) (*model.PublicacionResponse, error) {
	return s.decide(ctx, id, approval.Approve, approverID)
}

func (s *publicacionService) RechazarPublicacion(ctx context.Context, id, approverID int64) (*model.PublicacionResponse, error) {
	return s.decide(ctx, id, approval.Reject, approverID)
}

func (s *publicacionService) decide(ctx context.Context, id int64, d approval.Decision, approverID int64) (*model.PublicacionResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.engine.Decide(ctx, approval.PublicacionStates, d, approverID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateApproval(ctx, id, t)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("id_publicacion", id).
		Int64("id_aprobador", approverID).
		Str("estado", t.State).
		Msg("[PUBLICACION] decision recorded")
	return s.present(ctx, updated)
}

func (s *publicacionService) UpdateEstado(ctx context.Context, id int64, req *model.EstadoUpdateRequest) (*model.EstadoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.engine.SetState(ctx, approval.PublicacionStates, req.Estado, req.IDAprobador)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateApproval(ctx, id, t)
	if err != nil {
		return nil, err
	}

	resp := &model.EstadoResponse{
		IDPublicacion:   updated.IDPublicacion,
		Titulo:          updated.Titulo,
		Estado:          updated.Estado,
		FechaAprobacion: updated.FechaAprobacion,
		Mensaje:         t.Message(EstadoMessagePrefix),
	}

	if t.Approver != nil {
		resp.AprobadorNombre = &t.Approver.Nombre
		resp.AprobadorApellido = &t.Approver.Apellido
	} else {
		names, err := approval.Project(ctx, s.approvers, updated.IDAprobador)
		if err != nil {
			return nil, err
		}
		resp.AprobadorNombre, resp.AprobadorApellido = names.Nombre, names.Apellido
	}
	return resp, nil
}

// present resolves approver names and relations for one row
func (s *publicacionService) present(ctx context.Context, p *model.Publicacion) (*model.PublicacionResponse, error) {
	names, err := approval.Project(ctx, s.approvers, p.IDAprobador)
	if err != nil {
		return nil, err
	}

	resp := &model.PublicacionResponse{
		Publicacion:       p,
		AprobadorNombre:   names.Nombre,
		AprobadorApellido: names.Apellido,
	}

	if resp.AutorPrincipal, err = s.usuarios.FindByID(ctx, p.IDAutorPrincipal); err != nil {
		return nil, err
	}
	if p.IDLinea != nil {
		if resp.Linea, err = s.lineas.FindLinea(ctx, *p.IDLinea); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
