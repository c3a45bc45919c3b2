package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("X_NOT_FOUND", "x"), http.StatusNotFound},
		{"conflict", Conflict("X_EXISTS", "x"), http.StatusBadRequest},
		{"validation", Validation("X_INVALID", "x"), http.StatusBadRequest},
		{"internal", Internal("X_FAILED", errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("ctx: %w", NotFound("X_NOT_FOUND", "x")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	a := NotFound("ROL_NOT_FOUND", "Rol no encontrado")
	b := NotFound("ROL_NOT_FOUND", "Rol no encontrado")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, NotFound("USUARIO_NOT_FOUND", "x")))
	assert.False(t, errors.Is(a, Conflict("ROL_NOT_FOUND", "x")))
}

func TestFromPlainErrorIsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := From(cause)

	require.NotNil(t, appErr)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.ErrorIs(t, appErr, cause)
	assert.NotContains(t, appErr.Message, "connection reset")
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("A", "a")))
	assert.True(t, IsConflict(Conflict("A", "a")))
	assert.True(t, IsValidation(Validation("A", "a")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsConflict(errors.New("x")))
}

func TestWrapKeepsKind(t *testing.T) {
	cause := errors.New("fk")
	err := Wrap(Conflict("ROL_HAS_USUARIOS", "busy"), cause)

	assert.Equal(t, KindConflict, err.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ROL_HAS_USUARIOS")
}
