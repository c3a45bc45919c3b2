package model

import (
	"giit-backend/internal/shared/apperror"
)

func NewUsuarioNotFound() *apperror.AppError {
	return apperror.NotFound("USUARIO_NOT_FOUND", "Usuario no encontrado")
}

func NewEmailAlreadyRegistered() *apperror.AppError {
	return apperror.Conflict("EMAIL_ALREADY_REGISTERED", "El email ya está registrado")
}

func NewRolSpecifiedNotFound() *apperror.AppError {
	return apperror.NotFound("ROL_NOT_FOUND", "El rol especificado no existe")
}

func NewUsuarioHasDependents() *apperror.AppError {
	return apperror.Conflict("USUARIO_HAS_DEPENDENTS",
		"No se puede eliminar el usuario porque tiene registros asociados")
}

func NewInvalidPassword(err error) *apperror.AppError {
	return apperror.Wrap(apperror.Validation("INVALID_PASSWORD", "La contraseña no es válida"), err)
}

func NewUsuarioRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("USUARIO_REPOSITORY_ERROR", err)
}
