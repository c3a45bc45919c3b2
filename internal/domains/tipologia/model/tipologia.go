package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Tipologia struct {
	IDTipologia int64  `json:"id_tipologia"`
	Nombre      string `json:"nombre"`
}

type TipologiaRequest struct {
	Nombre string `json:"nombre"`
}

func (r TipologiaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre,
			validation.Required.Error("nombre is required"),
			validation.Length(1, 100),
		),
	)
}

func (r *TipologiaRequest) ToModel() *Tipologia {
	return &Tipologia{Nombre: strings.TrimSpace(r.Nombre)}
}
