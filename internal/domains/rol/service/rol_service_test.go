package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giit-backend/internal/domains/rol/model"
	"giit-backend/internal/shared/apperror"
	"giit-backend/internal/shared/utils"
)

// fakeRepo là in-memory Repository cho tests
type fakeRepo struct {
	nextID   int64
	roles    map[int64]*model.Rol
	usuarios map[int64]int // id_rol -> số usuarios
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{roles: map[int64]*model.Rol{}, usuarios: map[int64]int{}}
}

func (f *fakeRepo) Create(_ context.Context, rol *model.Rol) (*model.Rol, error) {
	f.nextID++
	cp := *rol
	cp.IDRol = f.nextID
	f.roles[cp.IDRol] = &cp
	return &cp, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Rol, error) {
	if r, ok := f.roles[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) FindByName(_ context.Context, nombre string) (*model.Rol, error) {
	for _, r := range f.roles {
		if r.NombreRol == nombre {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(_ context.Context, page utils.Pagination) ([]*model.Rol, error) {
	out := make([]*model.Rol, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDRol < out[j].IDRol })
	if page.Skip >= len(out) {
		return []*model.Rol{}, nil
	}
	out = out[page.Skip:]
	if page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, rol *model.Rol) (*model.Rol, error) {
	if _, ok := f.roles[rol.IDRol]; !ok {
		return nil, model.NewRolNotFound()
	}
	cp := *rol
	f.roles[rol.IDRol] = &cp
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.roles[id]; !ok {
		return model.NewRolNotFound()
	}
	delete(f.roles, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.roles[id]
	return ok, nil
}

func (f *fakeRepo) HasUsuarios(_ context.Context, id int64) (bool, error) {
	return f.usuarios[id] > 0, nil
}

func TestCreateRol(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRolService(repo)
	ctx := context.Background()

	rol, err := svc.CreateRol(ctx, &model.RolRequest{NombreRol: "  administrador "})
	require.NoError(t, err)
	assert.Equal(t, "administrador", rol.NombreRol)
	assert.NotZero(t, rol.IDRol)

	_, err = svc.CreateRol(ctx, &model.RolRequest{NombreRol: "administrador"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, "El nombre del rol ya existe", apperror.From(err).Message)
}

func TestUpdateRol(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRolService(repo)
	ctx := context.Background()

	admin, _ := svc.CreateRol(ctx, &model.RolRequest{NombreRol: "administrador"})
	inv, _ := svc.CreateRol(ctx, &model.RolRequest{NombreRol: "investigador"})

	desc := "acceso total"
	updated, err := svc.UpdateRol(ctx, admin.IDRol, &model.RolRequest{NombreRol: "administrador", Descripcion: &desc})
	require.NoError(t, err)
	assert.Equal(t, "acceso total", *updated.Descripcion)

	_, err = svc.UpdateRol(ctx, inv.IDRol, &model.RolRequest{NombreRol: "administrador"})
	assert.True(t, apperror.IsConflict(err))

	_, err = svc.UpdateRol(ctx, 999, &model.RolRequest{NombreRol: "x"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteRol(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by usuarios", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewRolService(repo)
		rol, _ := svc.CreateRol(ctx, &model.RolRequest{NombreRol: "administrador"})
		repo.usuarios[rol.IDRol] = 1

		err := svc.DeleteRol(ctx, rol.IDRol)
		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))

		still, err := svc.GetRol(ctx, rol.IDRol)
		require.NoError(t, err)
		assert.Equal(t, rol.IDRol, still.IDRol)
	})

	t.Run("no dependents", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewRolService(repo)
		rol, _ := svc.CreateRol(ctx, &model.RolRequest{NombreRol: "temporal"})

		require.NoError(t, svc.DeleteRol(ctx, rol.IDRol))
		_, err := svc.GetRol(ctx, rol.IDRol)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("missing", func(t *testing.T) {
		svc := NewRolService(newFakeRepo())
		assert.True(t, apperror.IsNotFound(svc.DeleteRol(ctx, 42)))
	})
}

func TestListRolesPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRolService(repo)
	ctx := context.Background()

	for _, n := range []string{"a", "b", "c"} {
		_, err := svc.CreateRol(ctx, &model.RolRequest{NombreRol: n})
		require.NoError(t, err)
	}

	roles, err := svc.ListRoles(ctx, utils.Pagination{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "b", roles[0].NombreRol)
}

func TestRolRequestValidate(t *testing.T) {
	assert.Error(t, model.RolRequest{}.Validate())
	assert.NoError(t, model.RolRequest{NombreRol: "investigador"}.Validate())
}
