package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	usuarioModel "giit-backend/internal/domains/usuario/model"
)

// Linea estados
const (
	EstadoActiva   = "activa"
	EstadoInactiva = "inactiva"
)

var Estados = []interface{}{EstadoActiva, EstadoInactiva}

type LineaInvestigacion struct {
	IDLinea       int64     `json:"id_linea"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	ImagenLogo    *string   `json:"imagen_logo"`
	IDResponsable *int64    `json:"id_responsable"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Estado        string    `json:"estado"`

	Responsable *usuarioModel.Usuario `json:"responsable"`
}

// LineaRequest dùng cho create và update.
// imagen_logo = "string" khi update giữ nguyên logo hiện tại.
type LineaRequest struct {
	Nombre        string  `json:"nombre"`
	Descripcion   *string `json:"descripcion"`
	ImagenLogo    *string `json:"imagen_logo"`
	IDResponsable *int64  `json:"id_responsable"`
	Estado        *string `json:"estado"`
}

func (r LineaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre, validation.Required.Error("nombre is required"), validation.Length(1, 100)),
		validation.Field(&r.ImagenLogo, validation.Length(0, 255)),
		validation.Field(&r.Estado, validation.In(Estados...).Error("estado must be activa or inactiva")),
	)
}

// LineaFilter là filter của list endpoint
type LineaFilter struct {
	Estado *string
}

func (f LineaFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Estado, validation.In(Estados...).Error("estado must be activa or inactiva")),
	)
}

func (r *LineaRequest) ToModel() *LineaInvestigacion {
	l := &LineaInvestigacion{
		Nombre:        strings.TrimSpace(r.Nombre),
		Descripcion:   r.Descripcion,
		ImagenLogo:    r.ImagenLogo,
		IDResponsable: r.IDResponsable,
		Estado:        EstadoActiva,
	}
	if r.Estado != nil {
		l.Estado = *r.Estado
	}
	return l
}
