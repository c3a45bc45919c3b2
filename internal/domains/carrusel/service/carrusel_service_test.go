package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giit-backend/internal/domains/carrusel/model"
	infraCache "giit-backend/internal/infrastructure/cache"
	"giit-backend/internal/shared/apperror"
)

type fakeRepo struct {
	nextID    int64
	fotos     map[int64]*model.CarruselFoto
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{fotos: map[int64]*model.CarruselFoto{}}
}

func (f *fakeRepo) Create(_ context.Context, foto *model.CarruselFoto) (*model.CarruselFoto, error) {
	f.nextID++
	cp := *foto
	cp.ID = f.nextID
	cp.FechaCreacion = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.fotos[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.CarruselFoto, error) {
	if foto, ok := f.fotos[id]; ok {
		cp := *foto
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) FindByOrden(_ context.Context, orden int) (*model.CarruselFoto, error) {
	for _, foto := range f.fotos {
		if foto.Orden == orden {
			cp := *foto
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*model.CarruselFoto, error) {
	f.listCalls++
	out := make([]*model.CarruselFoto, 0, len(f.fotos))
	for _, foto := range f.fotos {
		cp := *foto
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, foto *model.CarruselFoto) (*model.CarruselFoto, error) {
	cp := *foto
	cp.FechaCreacion = f.fotos[foto.ID].FechaCreacion
	f.fotos[foto.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) UpdateOrden(_ context.Context, id int64, orden int) error {
	f.fotos[id].Orden = orden
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.fotos, id)
	return nil
}

func orden(n int) *int { return &n }

func newCachedService(t *testing.T) (Service, *fakeRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rc := infraCache.NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	repo := newFakeRepo()
	return NewCarruselService(repo, rc, time.Minute), repo, mr
}

func TestCarruselOrdenUnique(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCachedService(t)

	a, err := svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "a.jpg", Orden: orden(1)})
	require.NoError(t, err)
	b, err := svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "b.jpg", Orden: orden(2)})
	require.NoError(t, err)

	_, err = svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "c.jpg", Orden: orden(1)})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, "Ya existe una foto con el orden 1", apperror.From(err).Message)

	err = svc.ChangeOrden(ctx, b.ID, 1)
	assert.True(t, apperror.IsConflict(err))

	_, err = svc.UpdateFoto(ctx, b.ID, &model.CarruselFotoRequest{URL: "b.jpg", Orden: orden(1)})
	assert.True(t, apperror.IsConflict(err))

	// đổi sang orden của chính nó luôn thành công
	assert.NoError(t, svc.ChangeOrden(ctx, a.ID, 1))
	_, err = svc.UpdateFoto(ctx, a.ID, &model.CarruselFotoRequest{URL: "a2.jpg", Orden: orden(1)})
	assert.NoError(t, err)

	assert.True(t, apperror.IsNotFound(svc.ChangeOrden(ctx, 99, 5)))
}

func TestCarruselListCache(t *testing.T) {
	ctx := context.Background()
	svc, repo, mr := newCachedService(t)

	_, _ = svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "b.jpg", Orden: orden(2)})
	a, _ := svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "a.jpg", Orden: orden(1)})

	fotos, err := svc.ListFotos(ctx)
	require.NoError(t, err)
	require.Len(t, fotos, 2)
	assert.Equal(t, "a.jpg", fotos[0].URL)
	assert.True(t, mr.Exists(ListCacheKey))

	_, err = svc.ListFotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second list is served from cache")

	require.NoError(t, svc.ChangeOrden(ctx, a.ID, 3))
	assert.False(t, mr.Exists(ListCacheKey))

	fotos, err = svc.ListFotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", fotos[0].URL)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCarruselCacheDown(t *testing.T) {
	ctx := context.Background()
	svc, repo, mr := newCachedService(t)
	mr.Close()

	_, err := svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "a.jpg", Orden: orden(1)})
	require.NoError(t, err)

	fotos, err := svc.ListFotos(ctx)
	require.NoError(t, err)
	assert.Len(t, fotos, 1)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCarruselWithoutCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewCarruselService(repo, nil, time.Minute)

	f, err := svc.CreateFoto(ctx, &model.CarruselFotoRequest{URL: "a.jpg", Orden: orden(1)})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteFoto(ctx, f.ID))

	_, err = svc.GetFoto(ctx, f.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Foto no encontrada", apperror.From(err).Message)
}

func TestCarruselFotoRequestValidate(t *testing.T) {
	assert.Error(t, model.CarruselFotoRequest{URL: "a.jpg"}.Validate())
	assert.Error(t, model.CarruselFotoRequest{Orden: orden(1)}.Validate())
	assert.NoError(t, model.CarruselFotoRequest{URL: "a.jpg", Orden: orden(0)}.Validate())
}
