package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giit-backend/internal/shared/apperror"
)

func existsIn(ids ...int64) ExistsFunc {
	set := map[int64]bool{}
	for _, id := range ids {
		set[id] = true
	}
	return func(_ context.Context, id int64) (bool, error) {
		return set[id], nil
	}
}

func ptr(v int64) *int64 { return &v }

var errAutor = apperror.NotFound("AUTOR_NOT_FOUND", "El autor principal especificado no existe")
var errLinea = apperror.NotFound("LINEA_NOT_FOUND", "La línea de investigación especificada no existe")

func TestRequire(t *testing.T) {
	ctx := context.Background()

	t.Run("all present", func(t *testing.T) {
		err := Require(ctx,
			Required(1, existsIn(1), errAutor),
			Optional(ptr(7), existsIn(7), errLinea),
		)
		assert.NoError(t, err)
	})

	t.Run("optional nil is skipped", func(t *testing.T) {
		called := false
		err := Require(ctx, Optional(nil, func(context.Context, int64) (bool, error) {
			called = true
			return false, nil
		}, errLinea))
		assert.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("first missing wins", func(t *testing.T) {
		err := Require(ctx,
			Required(2, existsIn(1), errAutor),
			Optional(ptr(9), existsIn(), errLinea),
		)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.ErrorIs(t, err, errAutor)
	})

	t.Run("optional missing", func(t *testing.T) {
		err := Require(ctx,
			Required(1, existsIn(1), errAutor),
			Optional(ptr(9), existsIn(), errLinea),
		)
		assert.ErrorIs(t, err, errLinea)
	})

	t.Run("required nil is a validation error", func(t *testing.T) {
		err := Require(ctx, Reference{Required: true, Exists: existsIn(), Missing: errAutor})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("lookup failure is internal", func(t *testing.T) {
		boom := errors.New("db down")
		err := Require(ctx, Required(1, func(context.Context, int64) (bool, error) {
			return false, boom
		}, errAutor))
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
		assert.ErrorIs(t, err, boom)
	})
}

func TestEnsureNoDependents(t *testing.T) {
	ctx := context.Background()
	blocked := apperror.Conflict("LINEA_HAS_DEPENDENTS", "No se puede eliminar")

	t.Run("no dependents", func(t *testing.T) {
		err := EnsureNoDependents(ctx, 3, blocked,
			Dependent{Name: "publicaciones", Has: existsIn()},
			Dependent{Name: "productos", Has: existsIn()},
		)
		assert.NoError(t, err)
	})

	t.Run("second dependent blocks", func(t *testing.T) {
		err := EnsureNoDependents(ctx, 3, blocked,
			Dependent{Name: "publicaciones", Has: existsIn()},
			Dependent{Name: "productos", Has: existsIn(3)},
		)
		assert.True(t, apperror.IsConflict(err))
		assert.ErrorIs(t, err, blocked)
	})

	t.Run("check error", func(t *testing.T) {
		err := EnsureNoDependents(ctx, 3, blocked,
			Dependent{Name: "publicaciones", Has: func(context.Context, int64) (bool, error) {
				return false, errors.New("timeout")
			}},
		)
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	})
}
