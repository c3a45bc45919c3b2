package model

import (
	"giit-backend/internal/shared/apperror"
)

func NewLineaNotFound() *apperror.AppError {
	return apperror.NotFound("LINEA_NOT_FOUND", "Línea de investigación no encontrada")
}

func NewResponsableNotFound() *apperror.AppError {
	return apperror.NotFound("RESPONSABLE_NOT_FOUND", "El responsable especificado no existe")
}

func NewLineaHasDependents() *apperror.AppError {
	return apperror.Conflict("LINEA_HAS_DEPENDENTS",
		"No se puede eliminar la línea de investigación porque tiene publicaciones o productos asociados")
}

func NewLineaRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("LINEA_REPOSITORY_ERROR", err)
}
