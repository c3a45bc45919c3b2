package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MessageInvalidCredentials = "Credenciales inválidas"
	MessageLoginOK            = "Login exitoso"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

func (r *LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginResponse luôn trả 200; sai thông tin đăng nhập thì Success=false
type LoginResponse struct {
	Success    bool    `json:"success"`
	IDUsuario  *int64  `json:"id_usuario"`
	Username   *string `json:"username"`
	Rol        *string `json:"rol"`
	FotoPerfil *string `json:"foto_perfil"`
	Mensaje    string  `json:"mensaje"`
}

func InvalidCredentials() *LoginResponse {
	return &LoginResponse{Success: false, Mensaje: MessageInvalidCredentials}
}
