package model

import (
	"giit-backend/internal/shared/apperror"
)

func NewPublicacionNotFound() *apperror.AppError {
	return apperror.NotFound("PUBLICACION_NOT_FOUND", "Publicación no encontrada")
}

func NewAutorNotFound() *apperror.AppError {
	return apperror.NotFound("AUTOR_NOT_FOUND", "El autor principal especificado no existe")
}

func NewLineaSpecifiedNotFound() *apperror.AppError {
	return apperror.NotFound("LINEA_NOT_FOUND", "La línea de investigación especificada no existe")
}

func NewPublicacionRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("PUBLICACION_REPOSITORY_ERROR", err)
}
