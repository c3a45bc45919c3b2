package service

import (
	"context"

	"github.com/rs/zerolog/log"

	lineaModel "giit-backend/internal/domains/linea/model"
	"giit-backend/internal/domains/producto/model"
	"giit-backend/internal/domains/producto/repository"
	tipologiaModel "giit-backend/internal/domains/tipologia/model"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

const EstadoMessagePrefix = "Estado de aprobación actualizado a"

type UsuarioReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*usuarioModel.Usuario, error)
}

type LineaReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindLinea(ctx context.Context, id int64) (*lineaModel.LineaInvestigacion, error)
}

type TipologiaReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*tipologiaModel.Tipologia, error)
}

// Deps gom các collaborator của producto service
type Deps struct {
	Usuarios   UsuarioReader
	Lineas     LineaReader
	Tipologias TipologiaReader
	Approvers  approval.ApproverLookup
	Engine     *approval.Engine
}

type productoService struct {
	repo repository.Repository
	Deps
}

func NewProductoService(repo repository.Repository, deps Deps) Service {
	return &productoService{repo: repo, Deps: deps}
}

// checkReferences theo thứ tự: tipologia, linea, responsable
func (s *productoService) checkReferences(ctx context.Context, req *model.ProductoRequest) error {
	return guard.Require(ctx,
		guard.Required(req.IDTipologia, s.Tipologias.Exists, model.NewTipologiaSpecifiedNotFound()),
		guard.Optional(req.IDLinea, s.Lineas.Exists, model.NewLineaSpecifiedNotFound()),
		guard.Required(req.IDResponsable, s.Usuarios.Exists, model.NewResponsableNotFound()),
	)
}

func (s *productoService) CreateProducto(ctx context.Context, req *model.ProductoRequest) (*model.ProductoResponse, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("id_producto", created.IDProducto).
		Int64("id_responsable", created.IDResponsable).
		Msg("[PRODUCTO] created")
	return s.present(ctx, created)
}

func (s *productoService) find(ctx context.Context, id int64) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewProductoNotFound()
	}
	return p, nil
}

func (s *productoService) GetProducto(ctx context.Context, id int64) (*model.ProductoResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, p)
}

func (s *productoService) ListProductos(ctx context.Context, filter model.ProductoFilter, page utils.Pagination) ([]*model.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	out := make([]*model.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		resp, err := s.present(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *productoService) UpdateProducto(ctx context.Context, id int64, req *model.ProductoRequest) (*model.ProductoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	next := req.ToModel()
	next.IDProducto = id

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, updated)
}

func (s *productoService) DeleteProducto(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *productoService) UpdateEstadoDesarrollo(ctx context.Context, id int64, estado string) (*model.ProductoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateEstadoDesarrollo(ctx, id, estado)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, updated)
}

func (s *productoService) AprobarProducto(ctx context.Context, id, approverID int64) (*model.ProductoResponse, error) {
	return s.decide(ctx, id, approval.Approve, approverID)
}

func (s *productoService) RechazarProducto(ctx context.Context, id, approverID int64) (*model.ProductoResponse, error) {
	return s.decide(ctx, id, approval.Reject, approverID)
}

func (s *productoService) decide(ctx context.Context, id int64, d approval.Decision, approverID int64) (*model.ProductoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.Engine.Decide(ctx, approval.ProductoStates, d, approverID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateApproval(ctx, id, t)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("id_producto", id).
		Int64("id_aprobador", approverID).
		Str("estado_aprobacion", t.State).
		Msg("[PRODUCTO] decision recorded")
	return s.present(ctx, updated)
}

func (s *productoService) UpdateEstadoAprobacion(ctx context.Context, id int64, req *model.EstadoUpdateRequest) (*model.EstadoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.Engine.SetState(ctx, approval.ProductoStates, req.Estado, req.IDAprobador)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateApproval(ctx, id, t)
	if err != nil {
		return nil, err
	}

	resp := &model.EstadoResponse{
		IDProducto:      updated.IDProducto,
		Nombre:          updated.Nombre,
		Estado:          updated.EstadoAprobacion,
		FechaAprobacion: updated.FechaAprobacion,
		Mensaje:         t.Message(EstadoMessagePrefix),
	}

	if t.Approver != nil {
		resp.AprobadorNombre = &t.Approver.Nombre
		resp.AprobadorApellido = &t.Approver.Apellido
	} else {
		names, err := approval.Project(ctx, s.Approvers, updated.IDAprobador)
		if err != nil {
			return nil, err
		}
		resp.AprobadorNombre, resp.AprobadorApellido = names.Nombre, names.Apellido
	}
	return resp, nil
}

func (s *productoService) present(ctx context.Context, p *model.Producto) (*model.ProductoResponse, error) {
	names, err := approval.Project(ctx, s.Approvers, p.IDAprobador)
	if err != nil {
		return nil, err
	}

	resp := &model.ProductoResponse{
		Producto:          p,
		AprobadorNombre:   names.Nombre,
		AprobadorApellido: names.Apellido,
	}

	if resp.Responsable, err = s.Usuarios.FindByID(ctx, p.IDResponsable); err != nil {
		return nil, err
	}
	if resp.Tipologia, err = s.Tipologias.FindByID(ctx, p.IDTipologia); err != nil {
		return nil, err
	}
	if p.IDLinea != nil {
		if resp.Linea, err = s.Lineas.FindLinea(ctx, *p.IDLinea); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
