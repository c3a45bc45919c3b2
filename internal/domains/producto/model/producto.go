package model

import (
	"time"

	lineaModel "giit-backend/internal/domains/linea/model"
	tipologiaModel "giit-backend/internal/domains/tipologia/model"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared"
)

// Trục phát triển, độc lập với trục duyệt
const (
	DesarrolloIdea       = "idea"
	DesarrolloDesarrollo = "desarrollo"
	DesarrolloPruebas    = "pruebas"
	DesarrolloCompletado = "completado"
)

var EstadosDesarrollo = []interface{}{
	DesarrolloIdea, DesarrolloDesarrollo, DesarrolloPruebas, DesarrolloCompletado,
}

type Producto struct {
	IDProducto       int64        `json:"id_producto"`
	Nombre           string       `json:"nombre"`
	Descripcion      *string      `json:"descripcion"`
	IDTipologia      int64        `json:"id_tipologia"`
	IDLinea          *int64       `json:"id_linea"`
	IDResponsable    int64        `json:"id_responsable"`
	FechaCreacion    *shared.Date `json:"fecha_creacion"`
	EstadoDesarrollo string       `json:"estado_desarrollo"`
	EstadoAprobacion string       `json:"estado_aprobacion"`
	FechaAprobacion  *time.Time   `json:"fecha_aprobacion"`
	IDAprobador      *int64       `json:"id_aprobador"`
	Enlace           *string      `json:"enlace"`
	Repositorio      *string      `json:"repositorio"`
	ImagenReferencia *string      `json:"imagen_referencia"`
	FechaRegistro    time.Time    `json:"fecha_registro"`
}

// ProductoResponse là Producto kèm tên người duyệt và các quan hệ
type ProductoResponse struct {
	*Producto
	AprobadorNombre   *string                        `json:"aprobador_nombre"`
	AprobadorApellido *string                        `json:"aprobador_apellido"`
	Responsable       *usuarioModel.Usuario          `json:"responsable"`
	Tipologia         *tipologiaModel.Tipologia      `json:"tipologia"`
	Linea             *lineaModel.LineaInvestigacion `json:"linea"`
}

// EstadoResponse là body của PUT /productos/:id/estado-aprobacion
type EstadoResponse struct {
	IDProducto        int64      `json:"id_producto"`
	Nombre            string     `json:"nombre"`
	Estado            string     `json:"estado"`
	FechaAprobacion   *time.Time `json:"fecha_aprobacion"`
	AprobadorNombre   *string    `json:"aprobador_nombre"`
	AprobadorApellido *string    `json:"aprobador_apellido"`
	Mensaje           string     `json:"mensaje"`
}

type ProductoFilter struct {
	EstadoDesarrollo *string
	EstadoAprobacion *string
	IDLinea          *int64
	IDTipologia      *int64
	IDResponsable    *int64
}
