package model

import (
	"time"

	lineaModel "giit-backend/internal/domains/linea/model"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared"
)

type Publicacion struct {
	IDPublicacion      int64        `json:"id_publicacion"`
	Titulo             string       `json:"titulo"`
	Resumen            *string      `json:"resumen"`
	Autores            string       `json:"autores"`
	RevistaConferencia *string      `json:"revista_conferencia"`
	FechaPublicacion   *shared.Date `json:"fecha_publicacion"`
	Enlace             *string      `json:"enlace"`
	IDLinea            *int64       `json:"id_linea"`
	IDAutorPrincipal   int64        `json:"id_autor_principal"`
	Estado             string       `json:"estado"`
	FechaRegistro      time.Time    `json:"fecha_registro"`
	FechaAprobacion    *time.Time   `json:"fecha_aprobacion"`
	IDAprobador        *int64       `json:"id_aprobador"`
}

// PublicacionResponse là Publicacion kèm tên người duyệt và các quan hệ
type PublicacionResponse struct {
	*Publicacion
	AprobadorNombre   *string                        `json:"aprobador_nombre"`
	AprobadorApellido *string                        `json:"aprobador_apellido"`
	AutorPrincipal    *usuarioModel.Usuario          `json:"autor_principal"`
	Linea             *lineaModel.LineaInvestigacion `json:"linea"`
}

// EstadoResponse là body của PUT /publicaciones/:id/estado
type EstadoResponse struct {
	IDPublicacion     int64      `json:"id_publicacion"`
	Titulo            string     `json:"titulo"`
	Estado            string     `json:"estado"`
	FechaAprobacion   *time.Time `json:"fecha_aprobacion"`
	AprobadorNombre   *string    `json:"aprobador_nombre"`
	AprobadorApellido *string    `json:"aprobador_apellido"`
	Mensaje           string     `json:"mensaje"`
}

// PublicacionFilter là filter của list endpoint
type PublicacionFilter struct {
	Estado  *string
	IDLinea *int64
	IDAutor *int64
}
