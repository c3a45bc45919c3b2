package model

import (
	"fmt"

	"giit-backend/internal/shared/apperror"
)

func NewFotoNotFound() *apperror.AppError {
	return apperror.NotFound("FOTO_NOT_FOUND", "Foto no encontrada")
}

func NewOrdenTaken(orden int) *apperror.AppError {
	return apperror.Conflict("ORDEN_TAKEN", fmt.Sprintf("Ya existe una foto con el orden %d", orden))
}

func NewCarruselRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("CARRUSEL_REPOSITORY_ERROR", err)
}
