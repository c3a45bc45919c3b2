package model

import (
	"giit-backend/internal/shared/apperror"
)

func NewTipologiaNotFound() *apperror.AppError {
	return apperror.NotFound("TIPOLOGIA_NOT_FOUND", "Tipología no encontrada")
}

func NewTipologiaNameExists() *apperror.AppError {
	return apperror.Conflict("TIPOLOGIA_NAME_EXISTS", "El nombre de la tipología ya existe")
}

func NewTipologiaHasProductos() *apperror.AppError {
	return apperror.Conflict("TIPOLOGIA_HAS_PRODUCTOS",
		"No se puede eliminar la tipología porque tiene productos asociados")
}

func NewTipologiaRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("TIPOLOGIA_REPOSITORY_ERROR", err)
}
