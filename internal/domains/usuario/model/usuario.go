package model

import (
	"time"

	rolModel "giit-backend/internal/domains/rol/model"
)

// Usuario estados
const (
	EstadoActivo    = "activo"
	EstadoInactivo  = "inactivo"
	EstadoPendiente = "pendiente"
)

var Estados = []interface{}{EstadoActivo, EstadoInactivo, EstadoPendiente}

type Usuario struct {
	IDUsuario     int64      `json:"id_usuario"`
	IDRol         int64      `json:"id_rol"`
	Nombre        string     `json:"nombre"`
	Apellido      string     `json:"apellido"`
	Email         string     `json:"email"`
	Password      string     `json:"-"` // bcrypt hash, never serialized
	Telefono      *string    `json:"telefono"`
	Institucion   *string    `json:"institucion"`
	Especialidad  *string    `json:"especialidad"`
	FotoPerfil    *string    `json:"foto_perfil"`
	Estado        string     `json:"estado"`
	FechaRegistro time.Time  `json:"fecha_registro"`
	UltimoAcceso  *time.Time `json:"ultimo_acceso"`

	Rol *rolModel.Rol `json:"rol"`
}
