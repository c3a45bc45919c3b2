package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// REQUEST DTOs
// ========================================

// UsuarioRequest dùng cho create và update (full replacement).
// Khi update, password rỗng hoặc "string" giữ nguyên password hiện tại.
type UsuarioRequest struct {
	Nombre       string  `json:"nombre"`
	Apellido     string  `json:"apellido"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	IDRol        int64   `json:"id_rol"`
	Telefono     *string `json:"telefono"`
	Institucion  *string `json:"institucion"`
	Especialidad *string `json:"especialidad"`
	FotoPerfil   *string `json:"foto_perfil"`
	Estado       *string `json:"estado"`
}

// rules must be called on the same pointer passed to ValidateStruct;
// ozzo matches fields by address.
func (r *UsuarioRequest) rules(passwordRequired bool) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&r.Nombre, validation.Required.Error("nombre is required"), validation.Length(1, 100)),
		validation.Field(&r.Apellido, validation.Required.Error("apellido is required"), validation.Length(1, 100)),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(3, 100),
		),
		validation.Field(&r.Password,
			validation.When(passwordRequired, validation.Required.Error("password is required")),
			validation.Length(0, 72).Error("password must be at most 72 characters"),
		),
		validation.Field(&r.IDRol, validation.Required.Error("id_rol is required")),
		validation.Field(&r.Telefono, validation.Length(0, 20)),
		validation.Field(&r.Institucion, validation.Length(0, 100)),
		validation.Field(&r.Especialidad, validation.Length(0, 100)),
		validation.Field(&r.FotoPerfil, validation.Length(0, 255)),
		validation.Field(&r.Estado, validation.In(Estados...).Error("estado must be activo, inactivo or pendiente")),
	}
}

// Validate checks a create payload
func (r UsuarioRequest) Validate() error {
	return validation.ValidateStruct(&r, r.rules(true)...)
}

// ValidateUpdate allows an omitted password
func (r UsuarioRequest) ValidateUpdate() error {
	return validation.ValidateStruct(&r, r.rules(false)...)
}

// NormalizedEmail lowercases and trims the email
func (r *UsuarioRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}
