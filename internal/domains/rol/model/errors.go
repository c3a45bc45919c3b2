package model

import (
	"giit-backend/internal/shared/apperror"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewRolNotFound() *apperror.AppError {
	return apperror.NotFound("ROL_NOT_FOUND", "Rol no encontrado")
}

func NewRolNameExists() *apperror.AppError {
	return apperror.Conflict("ROL_NAME_EXISTS", "El nombre del rol ya existe")
}

func NewRolHasUsuarios() *apperror.AppError {
	return apperror.Conflict("ROL_HAS_USUARIOS", "No se puede eliminar el rol porque tiene usuarios asociados")
}

func NewRolRepositoryError(err error) *apperror.AppError {
	return apperror.Internal("ROL_REPOSITORY_ERROR", err)
}
