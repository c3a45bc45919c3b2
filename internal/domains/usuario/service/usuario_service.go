package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/domains/usuario/repository"
	"giit-backend/internal/shared/guard"
	"giit-backend/internal/shared/utils"
)

// RolChecker là phần của rol repository mà usuario cần
type RolChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Options struct {
	// StrictDelete chặn xóa khi còn lineas/publicaciones/productos/eventos tham chiếu
	StrictDelete bool
	BcryptCost   int
}

// usuarioService implements Service
type usuarioService struct {
	repo  repository.Repository
	roles RolChecker
	opts  Options
}

func NewUsuarioService(repo repository.Repository, roles RolChecker, opts Options) Service {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &usuarioService{repo: repo, roles: roles, opts: opts}
}

func (s *usuarioService) CreateUsuario(ctx context.Context, req *model.UsuarioRequest) (*model.Usuario, error) {
	if err := guard.Require(ctx,
		guard.Required(req.IDRol, s.roles.Exists, model.NewRolSpecifiedNotFound()),
	); err != nil {
		return nil, err
	}

	email := req.NormalizedEmail()
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewEmailAlreadyRegistered()
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		IDRol:        req.IDRol,
		Nombre:       strings.TrimSpace(req.Nombre),
		Apellido:     strings.TrimSpace(req.Apellido),
		Email:        email,
		Password:     hash,
		Telefono:     req.Telefono,
		Institucion:  req.Institucion,
		Especialidad: req.Especialidad,
		FotoPerfil:   req.FotoPerfil,
		Estado:       model.EstadoPendiente,
	}
	if req.Estado != nil {
		u.Estado = *req.Estado
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("id_usuario", created.IDUsuario).
		Int64("id_rol", created.IDRol).
		Msg("[USUARIO] created")
	return created, nil
}

func (s *usuarioService) GetUsuario(ctx context.Context, id int64) (*model.Usuario, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.NewUsuarioNotFound()
	}
	return u, nil
}

func (s *usuarioService) ListUsuarios(ctx context.Context, page utils.Pagination) ([]*model.Usuario, error) {
	return s.repo.List(ctx, page)
}

func (s *usuarioService) UpdateUsuario(ctx context.Context, id int64, req *model.UsuarioRequest) (*model.Usuario, error) {
	current, err := s.GetUsuario(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guard.Require(ctx,
		guard.Required(req.IDRol, s.roles.Exists, model.NewRolSpecifiedNotFound()),
	); err != nil {
		return nil, err
	}

	email := req.NormalizedEmail()
	if email != strings.ToLower(current.Email) {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.IDUsuario != id {
			return nil, model.NewEmailAlreadyRegistered()
		}
	}

	next := *current
	next.Rol = nil
	next.IDRol = req.IDRol
	next.Nombre = strings.TrimSpace(req.Nombre)
	next.Apellido = strings.TrimSpace(req.Apellido)
	next.Email = email
	next.Telefono = req.Telefono
	next.Institucion = req.Institucion
	next.Especialidad = req.Especialidad
	next.FotoPerfil = utils.KeepIfPlaceholder(req.FotoPerfil, current.FotoPerfil)
	if req.Estado != nil {
		next.Estado = *req.Estado
	}

	// "" hoặc placeholder: giữ nguyên hash cũ
	if req.Password != "" && req.Password != utils.PlaceholderValue {
		hash, err := s.hash(req.Password)
		if err != nil {
			return nil, err
		}
		next.Password = hash
	}

	return s.repo.Update(ctx, &next)
}

func (s *usuarioService) DeleteUsuario(ctx context.Context, id int64) error {
	if _, err := s.GetUsuario(ctx, id); err != nil {
		return err
	}

	if s.opts.StrictDelete {
		if err := guard.EnsureNoDependents(ctx, id, model.NewUsuarioHasDependents(),
			guard.Dependent{Name: "lineas_investigacion", Has: s.repo.HasLineas},
			guard.Dependent{Name: "publicaciones", Has: s.repo.HasPublicaciones},
			guard.Dependent{Name: "productos", Has: s.repo.HasProductos},
			guard.Dependent{Name: "eventos", Has: s.repo.HasEventos},
		); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("id_usuario", id).Msg("[USUARIO] deleted")
	return nil
}

func (s *usuarioService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return "", model.NewInvalidPassword(err)
	}
	return string(hash), nil
}
