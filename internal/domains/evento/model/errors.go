package model

import (
	"giit-backend/internal/shared/apperror"
)

func NewEventoNotFound() *apperror.AppError {
	return apperror.NotFound("EVENTO_NOT_FOUND", "Evento no encontrado")
}

func NewCreadorNotFound() *apperror.AppError {
	return apperror.NotFound("CREADOR_NOT_FOUND", "El creador especificado no existe")
}

func NewInvalidDateRange() *apperror.AppError {
	return apperror.Validation("INVALID_DATE_RANGE", "La fecha de inicio no puede ser posterior a la fecha de fin")
}

func NewEventoRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("EVENTO_REPOSITORY_ERROR", err)
}
