package model

import (
	"giit-backend/internal/shared/apperror"
)

func NewProductoNotFound() *apperror.AppError {
	return apperror.NotFound("PRODUCTO_NOT_FOUND", "Producto no encontrado")
}

func NewTipologiaSpecifiedNotFound() *apperror.AppError {
	return apperror.NotFound("TIPOLOGIA_NOT_FOUND", "La tipología especificada no existe")
}

func NewLineaSpecifiedNotFound() *apperror.AppError {
	return apperror.NotFound("LINEA_NOT_FOUND", "La línea de investigación especificada no existe")
}

func NewResponsableNotFound() *apperror.AppError {
	return apperror.NotFound("RESPONSABLE_NOT_FOUND", "El responsable especificado no existe")
}

func NewProductoRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("PRODUCTO_REPOSITORY_ERROR", err)
}
