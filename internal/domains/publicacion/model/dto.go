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

// PublicacionRequest dùng cho create và update.
// Update không đụng tới estado và các field duyệt.
type PublicacionRequest struct {
	Titulo             string       `json:"titulo"`
	Resumen            *string      `json:"resumen"`
	Autores            string       `json:"autores"`
	RevistaConferencia *string      `json:"revista_conferencia"`
	FechaPublicacion   *shared.Date `json:"fecha_publicacion"`
	Enlace             *string      `json:"enlace"`
	IDLinea            *int64       `json:"id_linea"`
	IDAutorPrincipal   int64        `json:"id_autor_principal"`
}

func (r PublicacionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titulo, validation.Required.Error("titulo is required"), validation.Length(1, 255)),
		validation.Field(&r.Autores, validation.Required.Error("autores is required")),
		validation.Field(&r.RevistaConferencia, validation.Length(0, 255)),
		validation.Field(&r.Enlace, validation.Length(0, 255)),
		validation.Field(&r.IDAutorPrincipal, validation.Required.Error("id_autor_principal is required")),
	)
}

func (r *PublicacionRequest) ToModel() *Publicacion {
	return &Publicacion{
		Titulo:             strings.TrimSpace(r.Titulo),
		Resumen:            r.Resumen,
		Autores:            r.Autores,
		RevistaConferencia: r.RevistaConferencia,
		FechaPublicacion:   r.FechaPublicacion,
		Enlace:             r.Enlace,
		IDLinea:            r.IDLinea,
		IDAutorPrincipal:   r.IDAutorPrincipal,
		Estado:             approval.PublicacionStates.Pending,
	}
}

// EstadoUpdateRequest là body của PUT /publicaciones/:id/estado
type EstadoUpdateRequest struct {
	Estado      string `json:"estado"`
	IDAprobador *int64 `json:"id_aprobador"`
}

func (r EstadoUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Estado, validation.Required.Error("estado is required")),
	)
}

// Estados hợp lệ cho filter
func estados() []interface{} {
	values := approval.PublicacionStates.Values()
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func (f PublicacionFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Estado, validation.In(estados()...).Error("estado must be pendiente, aprobada or rechazada")),
	)
}
