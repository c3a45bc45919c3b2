package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giit-backend/internal/domains/linea/model"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/apperror"
	"giit-backend/internal/shared/utils"
)

type fakeUsuarios map[int64]*usuarioModel.Usuario

func (f fakeUsuarios) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f[id]
	return ok, nil
}

func (f fakeUsuarios) FindByID(_ context.Context, id int64) (*usuarioModel.Usuario, error) {
	return f[id], nil
}

type fakeRepo struct {
	nextID        int64
	lineas        map[int64]*model.LineaInvestigacion
	publicaciones map[int64]bool
	productos     map[int64]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		lineas:        map[int64]*model.LineaInvestigacion{},
		publicaciones: map[int64]bool{},
		productos:     map[int64]bool{},
	}
}

func (f *fakeRepo) Create(_ context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error) {
	f.nextID++
	cp := *l
	cp.IDLinea = f.nextID
	f.lineas[cp.IDLinea] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.LineaInvestigacion, error) {
	if l, ok := f.lineas[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) List(_ context.Context, filter model.LineaFilter, _ utils.Pagination) ([]*model.LineaInvestigacion, error) {
	out := []*model.LineaInvestigacion{}
	for id := int64(1); id <= f.nextID; id++ {
		l, ok := f.lineas[id]
		if !ok || (filter.Estado != nil && l.Estado != *filter.Estado) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error) {
	cp := *l
	f.lineas[l.IDLinea] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.lineas, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.lineas[id]
	return ok, nil
}

func (f *fakeRepo) HasPublicaciones(_ context.Context, id int64) (bool, error) {
	return f.publicaciones[id], nil
}

func (f *fakeRepo) HasProductos(_ context.Context, id int64) (bool, error) {
	return f.productos[id], nil
}

func newService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	usuarios := fakeUsuarios{7: {IDUsuario: 7, Nombre: "Ana", Apellido: "Pérez"}}
	return NewLineaService(repo, usuarios), repo
}

func TestCreateLinea(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	l, err := svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "IA", IDResponsable: utils.Ptr(int64(7))})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoActiva, l.Estado)
	require.NotNil(t, l.Responsable)
	assert.Equal(t, "Ana", l.Responsable.Nombre)

	sin, err := svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "Redes"})
	require.NoError(t, err)
	assert.Nil(t, sin.Responsable)

	_, err = svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "X", IDResponsable: utils.Ptr(int64(99))})
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "El responsable especificado no existe", apperror.From(err).Message)
}

func TestUpdateLineaLogoPlaceholder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	l, err := svc.CreateLinea(ctx, &model.LineaRequest{
		Nombre:     "IA",
		ImagenLogo: utils.Ptr("logo.png"),
		Estado:     utils.Ptr(model.EstadoInactiva),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateLinea(ctx, l.IDLinea, &model.LineaRequest{
		Nombre:     "IA aplicada",
		ImagenLogo: utils.Ptr(utils.PlaceholderValue),
	})
	require.NoError(t, err)
	assert.Equal(t, "logo.png", *updated.ImagenLogo)
	assert.Equal(t, "IA aplicada", updated.Nombre)
	assert.Equal(t, model.EstadoInactiva, updated.Estado)

	cleared, err := svc.UpdateLinea(ctx, l.IDLinea, &model.LineaRequest{Nombre: "IA aplicada"})
	require.NoError(t, err)
	assert.Nil(t, cleared.ImagenLogo)

	_, err = svc.UpdateLinea(ctx, 42, &model.LineaRequest{Nombre: "x"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteLineaGuard(t *testing.T) {
	ctx := context.Background()

	for _, dep := range []string{"publicaciones", "productos"} {
		t.Run(dep, func(t *testing.T) {
			svc, repo := newService()
			l, _ := svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "IA"})
			if dep == "publicaciones" {
				repo.publicaciones[l.IDLinea] = true
			} else {
				repo.productos[l.IDLinea] = true
			}

			err := svc.DeleteLinea(ctx, l.IDLinea)
			assert.True(t, apperror.IsConflict(err))
			_, err = svc.GetLinea(ctx, l.IDLinea)
			assert.NoError(t, err)
		})
	}

	svc, _ := newService()
	l, _ := svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "IA"})
	require.NoError(t, svc.DeleteLinea(ctx, l.IDLinea))
	_, err := svc.GetLinea(ctx, l.IDLinea)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListLineasFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, _ = svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "A"})
	_, _ = svc.CreateLinea(ctx, &model.LineaRequest{Nombre: "B", Estado: utils.Ptr(model.EstadoInactiva)})

	all, err := svc.ListLineas(ctx, model.LineaFilter{}, utils.Pagination{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inactivas, err := svc.ListLineas(ctx, model.LineaFilter{Estado: utils.Ptr(model.EstadoInactiva)}, utils.Pagination{Limit: 100})
	require.NoError(t, err)
	require.Len(t, inactivas, 1)
	assert.Equal(t, "B", inactivas[0].Nombre)

	assert.Error(t, model.LineaFilter{Estado: utils.Ptr("borrada")}.Validate())
}
