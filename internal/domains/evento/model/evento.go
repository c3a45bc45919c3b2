package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared"
)

type Evento struct {
	IDEvento      int64        `json:"id_evento"`
	Nombre        string       `json:"nombre"`
	Descripcion   *string      `json:"descripcion"`
	TipoEvento    *string      `json:"tipo_evento"`
	FechaInicio   *shared.Date `json:"fecha_inicio"`
	FechaFin      *shared.Date `json:"fecha_fin"`
	Lugar         *string      `json:"lugar"`
	Organizador   *string      `json:"organizador"`
	Enlace        *string      `json:"enlace"`
	FotoEvento    *string      `json:"foto_evento"`
	IDCreador     int64        `json:"id_creador"`
	FechaRegistro time.Time    `json:"fecha_registro"`

	Creador *usuarioModel.Usuario `json:"creador"`
}

type EventoRequest struct {
	Nombre      string       `json:"nombre"`
	Descripcion *string      `json:"descripcion"`
	TipoEvento  *string      `json:"tipo_evento"`
	FechaInicio *shared.Date `json:"fecha_inicio"`
	FechaFin    *shared.Date `json:"fecha_fin"`
	Lugar       *string      `json:"lugar"`
	Organizador *string      `json:"organizador"`
	Enlace      *string      `json:"enlace"`
	FotoEvento  *string      `json:"foto_evento"`
	IDCreador   int64        `json:"id_creador"`
}

func (r EventoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre, validation.Required.Error("nombre is required"), validation.Length(1, 255)),
		validation.Field(&r.TipoEvento, validation.Length(0, 100)),
		validation.Field(&r.Lugar, validation.Length(0, 255)),
		validation.Field(&r.Organizador, validation.Length(0, 255)),
		validation.Field(&r.Enlace, validation.Length(0, 255)),
		validation.Field(&r.FotoEvento, validation.Length(0, 255)),
		validation.Field(&r.IDCreador, validation.Required.Error("id_creador is required")),
	)
}

// CheckDates fails when both dates are set and fecha_inicio is after fecha_fin.
// Equal dates are allowed.
func (r *EventoRequest) CheckDates() error {
	if r.FechaInicio != nil && r.FechaFin != nil && r.FechaInicio.After(*r.FechaFin) {
		return NewInvalidDateRange()
	}
	return nil
}

func (r *EventoRequest) ToModel() *Evento {
	return &Evento{
		Nombre:      strings.TrimSpace(r.Nombre),
		Descripcion: r.Descripcion,
		TipoEvento:  r.TipoEvento,
		FechaInicio: r.FechaInicio,
		FechaFin:    r.FechaFin,
		Lugar:       r.Lugar,
		Organizador: r.Organizador,
		Enlace:      r.Enlace,
		FotoEvento:  r.FotoEvento,
		IDCreador:   r.IDCreador,
	}
}

// EventoFilter: FechaInicio là cận dưới của fecha_inicio, FechaFin là cận trên của fecha_fin
type EventoFilter struct {
	FechaInicio *shared.Date
	FechaFin    *shared.Date
	TipoEvento  *string
	IDCreador   *int64
}
