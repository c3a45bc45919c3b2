package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Rol struct {
	IDRol       int64   `json:"id_rol"`
	NombreRol   string  `json:"nombre_rol"`
	Descripcion *string `json:"descripcion"`
}

// RolRequest dùng cho cả create và update (full replacement)
type RolRequest struct {
	NombreRol   string  `json:"nombre_rol"`
	Descripcion *string `json:"descripcion"`
}

func (r RolRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NombreRol,
			validation.Required.Error("nombre_rol is required"),
			validation.Length(1, 50),
		),
	)
}

// ToModel normalizes the request into a Rol without id.
func (r *RolRequest) ToModel() *Rol {
	return &Rol{
		NombreRol:   strings.TrimSpace(r.NombreRol),
		Descripcion: r.Descripcion,
	}
}
