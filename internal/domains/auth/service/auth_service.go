package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"giit-backend/internal/domains/auth/model"
	usuarioModel "giit-backend/internal/domains/usuario/model"
)

type Service interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

// UsuarioStore là phần của usuario repository mà login cần
type UsuarioStore interface {
	FindByEmail(ctx context.Context, email string) (*usuarioModel.Usuario, error)
	TouchLastAccess(ctx context.Context, id int64, at time.Time) error
}

type authService struct {
	usuarios UsuarioStore
	now      func() time.Time
}

func NewAuthService(usuarios UsuarioStore) Service {
	return &authService{usuarios: usuarios, now: time.Now}
}

// Login trả lỗi chỉ khi storage lỗi; sai email hoặc password là response bình thường.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	u, err := s.usuarios.FindByEmail(ctx, req.NormalizedEmail())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return model.InvalidCredentials(), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		log.Info().Int64("id_usuario", u.IDUsuario).Msg("[AUTH] invalid password")
		return model.InvalidCredentials(), nil
	}

	// ultimo_acceso không chặn login
	if err := s.usuarios.TouchLastAccess(ctx, u.IDUsuario, s.now()); err != nil {
		log.Warn().Err(err).Int64("id_usuario", u.IDUsuario).Msg("[AUTH] failed to update ultimo_acceso")
	}

	resp := &model.LoginResponse{
		Success:    true,
		IDUsuario:  &u.IDUsuario,
		Username:   &u.Nombre,
		FotoPerfil: u.FotoPerfil,
		Mensaje:    model.MessageLoginOK,
	}
	if u.Rol != nil {
		resp.Rol = &u.Rol.NombreRol
	}

	log.Info().Int64("id_usuario", u.IDUsuario).Msg("[AUTH] login")
	return resp, nil
}
