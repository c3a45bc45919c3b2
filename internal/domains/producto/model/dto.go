package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"giit-backend/internal/shared"
	"giit-backend/internal/shared/approval"
)

// ========================================
// REQUEST DTOs
// ========================================

// ProductoRequest dùng cho create và update.
// Update ghi estado_desarrollo nhưng không đụng tới trục duyệt.
type ProductoRequest struct {
	Nombre           string       `json:"nombre"`
	Descripcion      *string      `json:"descripcion"`
	IDTipologia      int64        `json:"id_tipologia"`
	IDLinea          *int64       `json:"id_linea"`
	IDResponsable    int64        `json:"id_responsable"`
	FechaCreacion    *shared.Date `json:"fecha_creacion"`
	EstadoDesarrollo string       `json:"estado_desarrollo"`
	Enlace           *string      `json:"enlace"`
	Repositorio      *string      `json:"repositorio"`
	ImagenReferencia *string      `json:"imagen_referencia"`
}

const errDesarrollo = "estado_desarrollo must be idea, desarrollo, pruebas or completado"

func (r ProductoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre, validation.Required.Error("nombre is required"), validation.Length(1, 255)),
		validation.Field(&r.IDTipologia, validation.Required.Error("id_tipologia is required")),
		validation.Field(&r.IDResponsable, validation.Required.Error("id_responsable is required")),
		validation.Field(&r.EstadoDesarrollo,
			validation.Required.Error("estado_desarrollo is required"),
			validation.In(EstadosDesarrollo...).Error(errDesarrollo),
		),
		validation.Field(&r.Enlace, validation.Length(0, 255)),
		validation.Field(&r.Repositorio, validation.Length(0, 255)),
		validation.Field(&r.ImagenReferencia, validation.Length(0, 255)),
	)
}

func (r *ProductoRequest) ToModel() *Producto {
	return &Producto{
		Nombre:           strings.TrimSpace(r.Nombre),
		Descripcion:      r.Descripcion,
		IDTipologia:      r.IDTipologia,
		IDLinea:          r.IDLinea,
		IDResponsable:    r.IDResponsable,
		FechaCreacion:    r.FechaCreacion,
		EstadoDesarrollo: r.EstadoDesarrollo,
		EstadoAprobacion: approval.ProductoStates.Pending,
		Enlace:           r.Enlace,
		Repositorio:      r.Repositorio,
		ImagenReferencia: r.ImagenReferencia,
	}
}

// ValidateDesarrollo checks a bare estado_desarrollo value
func ValidateDesarrollo(estado string) error {
	return validation.Validate(estado,
		validation.Required.Error("estado is required"),
		validation.In(EstadosDesarrollo...).Error(errDesarrollo),
	)
}

// EstadoUpdateRequest là body của PUT /productos/:id/estado-aprobacion
type EstadoUpdateRequest struct {
	Estado      string `json:"estado"`
	IDAprobador *int64 `json:"id_aprobador"`
}

func (r EstadoUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Estado, validation.Required.Error("estado is required")),
	)
}

func estadosAprobacion() []interface{} {
	values := approval.ProductoStates.Values()
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func (f ProductoFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.EstadoDesarrollo, validation.In(EstadosDesarrollo...).Error(errDesarrollo)),
		validation.Field(&f.EstadoAprobacion,
			validation.In(estadosAprobacion()...).Error("estado_aprobacion must be pendiente, aprobado or rechazado")),
	)
}
