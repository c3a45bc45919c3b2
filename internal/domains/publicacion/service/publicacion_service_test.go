package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lineaModel "giit-backend/internal/domains/linea/model"
	"giit-backend/internal/domains/publicacion/model"
	usuarioModel "giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/apperror"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

var fixedNow = time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

type directory map[int64]*usuarioModel.Usuario

func (d directory) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := d[id]
	return ok, nil
}

func (d directory) FindByID(_ context.Context, id int64) (*usuarioModel.Usuario, error) {
	return d[id], nil
}

func (d directory) FindApprover(_ context.Context, id int64) (*approval.Approver, error) {
	u, ok := d[id]
	if !ok {
		return nil, nil
	}
	return &approval.Approver{ID: id, Nombre: u.Nombre, Apellido: u.Apellido}, nil
}

type lineas map[int64]*lineaModel.LineaInvestigacion

func (l lineas) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := l[id]
	return ok, nil
}

func (l lineas) FindLinea(_ context.Context, id int64) (*lineaModel.LineaInvestigacion, error) {
	return l[id], nil
}

type memRepo struct {
	nextID int64
	rows   map[int64]*model.Publicacion
	writes int
}

func (m *memRepo) Create(_ context.Context, p *model.Publicacion) (*model.Publicacion, error) {
	m.nextID++
	cp := *p
	cp.IDPublicacion = m.nextID
	cp.FechaRegistro = fixedNow
	m.rows[cp.IDPublicacion] = &cp
	out := cp
	return &out, nil
}

func (m *memRepo) FindByID(_ context.Context, id int64) (*model.Publicacion, error) {
	if p, ok := m.rows[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memRepo) List(_ context.Context, f model.PublicacionFilter, _ utils.Pagination) ([]*model.Publicacion, error) {
	out := []*model.Publicacion{}
	for id := int64(1); id <= m.nextID; id++ {
		p, ok := m.rows[id]
		if !ok {
			continue
		}
		if f.Estado != nil && p.Estado != *f.Estado {
			continue
		}
		if f.IDAutor != nil && p.IDAutorPrincipal != *f.IDAutor {
			continue
		}
		if f.IDLinea != nil && (p.IDLinea == nil || *p.IDLinea != *f.IDLinea) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, p *model.Publicacion) (*model.Publicacion, error) {
	current := m.rows[p.IDPublicacion]
	cp := *p
	cp.Estado = current.Estado
	cp.IDAprobador = current.IDAprobador
	cp.FechaAprobacion = current.FechaAprobacion
	cp.FechaRegistro = current.FechaRegistro
	m.rows[p.IDPublicacion] = &cp
	m.writes++
	out := cp
	return &out, nil
}

func (m *memRepo) UpdateApproval(_ context.Context, id int64, t *approval.Transition) (*model.Publicacion, error) {
	p := m.rows[id]
	p.Estado = t.State
	if t.Stamp {
		p.IDAprobador = t.ApproverID
		p.FechaAprobacion = t.ApprovedAt
	}
	m.writes++
	cp := *p
	return &cp, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

type fixture struct {
	svc  Service
	repo *memRepo
}

func newFixture() fixture {
	users := directory{
		1: {IDUsuario: 1, Nombre: "Admin", Apellido: "Principal"},
		2: {IDUsuario: 2, Nombre: "Jhon", Apellido: "Doe"},
	}
	repo := &memRepo{rows: map[int64]*model.Publicacion{}}
	engine := approval.NewEngine(users).WithClock(func() time.Time { return fixedNow })
	svc := NewPublicacionService(repo, users, lineas{5: {IDLinea: 5, Nombre: "IA"}}, users, engine)
	return fixture{svc: svc, repo: repo}
}

func (f fixture) create(t *testing.T) *model.PublicacionResponse {
	t.Helper()
	p, err := f.svc.CreatePublicacion(context.Background(), &model.PublicacionRequest{
		Titulo:           "Redes neuronales",
		Autores:          "Doe, J.",
		IDAutorPrincipal: 2,
		IDLinea:          utils.Ptr(int64(5)),
	})
	require.NoError(t, err)
	return p
}

func TestCreatePublicacion(t *testing.T) {
	f := newFixture()
	p := f.create(t)

	assert.Equal(t, "pendiente", p.Estado)
	assert.Nil(t, p.IDAprobador)
	assert.Nil(t, p.FechaAprobacion)
	assert.Nil(t, p.AprobadorNombre)
	require.NotNil(t, p.AutorPrincipal)
	assert.Equal(t, "Jhon", p.AutorPrincipal.Nombre)
	require.NotNil(t, p.Linea)
	assert.Equal(t, "IA", p.Linea.Nombre)

	ctx := context.Background()
	_, err := f.svc.CreatePublicacion(ctx, &model.PublicacionRequest{Titulo: "x", Autores: "y", IDAutorPrincipal: 9})
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "El autor principal especificado no existe", apperror.From(err).Message)

	_, err = f.svc.CreatePublicacion(ctx, &model.PublicacionRequest{
		Titulo: "x", Autores: "y", IDAutorPrincipal: 2, IDLinea: utils.Ptr(int64(9)),
	})
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "La línea de investigación especificada no existe", apperror.From(err).Message)
}

func TestAprobarRechazar(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t)

	approved, err := f.svc.AprobarPublicacion(ctx, p.IDPublicacion, 1)
	require.NoError(t, err)
	assert.Equal(t, "aprobada", approved.Estado)
	require.NotNil(t, approved.IDAprobador)
	assert.Equal(t, int64(1), *approved.IDAprobador)
	assert.Equal(t, fixedNow, *approved.FechaAprobacion)
	assert.Equal(t, "Admin", *approved.AprobadorNombre)
	assert.Equal(t, "Principal", *approved.AprobadorApellido)

	// Không có terminal state
	rejected, err := f.svc.RechazarPublicacion(ctx, p.IDPublicacion, 2)
	require.NoError(t, err)
	assert.Equal(t, "rechazada", rejected.Estado)
	assert.Equal(t, "Jhon", *rejected.AprobadorNombre)
}

func TestDecisionFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t)
	writes := f.repo.writes

	_, err := f.svc.AprobarPublicacion(ctx, p.IDPublicacion, 99)
	assert.ErrorIs(t, err, approval.ErrApproverNotFound)

	_, err = f.svc.AprobarPublicacion(ctx, p.IDPublicacion, 0)
	assert.True(t, apperror.IsNotFound(err))

	// publicacion không tồn tại được báo trước aprobador
	_, err = f.svc.RechazarPublicacion(ctx, 77, 99)
	assert.Equal(t, "Publicación no encontrada", apperror.From(err).Message)

	assert.Equal(t, writes, f.repo.writes)
	stored, err := f.svc.GetPublicacion(ctx, p.IDPublicacion)
	require.NoError(t, err)
	assert.Equal(t, "pendiente", stored.Estado)
	assert.Nil(t, stored.IDAprobador)
}

func TestUpdateEstado(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t)

	resp, err := f.svc.UpdateEstado(ctx, p.IDPublicacion, &model.EstadoUpdateRequest{
		Estado:      "aprobada",
		IDAprobador: utils.Ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Estado actualizado a 'aprobada' por Admin Principal", resp.Mensaje)
	assert.Equal(t, "Redes neuronales", resp.Titulo)
	assert.Equal(t, fixedNow, *resp.FechaAprobacion)

	// Không có aprobador: chỉ đổi estado, giữ approver và timestamp
	resp, err = f.svc.UpdateEstado(ctx, p.IDPublicacion, &model.EstadoUpdateRequest{Estado: "pendiente"})
	require.NoError(t, err)
	assert.Equal(t, "Estado actualizado a 'pendiente'", resp.Mensaje)
	assert.Equal(t, "pendiente", resp.Estado)
	require.NotNil(t, resp.FechaAprobacion)
	assert.Equal(t, "Admin", *resp.AprobadorNombre)

	stored, _ := f.svc.GetPublicacion(ctx, p.IDPublicacion)
	assert.Equal(t, int64(1), *stored.IDAprobador)

	_, err = f.svc.UpdateEstado(ctx, p.IDPublicacion, &model.EstadoUpdateRequest{Estado: "publicada"})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.svc.UpdateEstado(ctx, p.IDPublicacion, &model.EstadoUpdateRequest{
		Estado: "rechazada", IDAprobador: utils.Ptr(int64(42)),
	})
	assert.True(t, apperror.IsNotFound(err))
	stored, _ = f.svc.GetPublicacion(ctx, p.IDPublicacion)
	assert.Equal(t, "pendiente", stored.Estado)
}

func TestUpdatePublicacionKeepsApproval(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t)

	_, err := f.svc.AprobarPublicacion(ctx, p.IDPublicacion, 1)
	require.NoError(t, err)

	updated, err := f.svc.UpdatePublicacion(ctx, p.IDPublicacion, &model.PublicacionRequest{
		Titulo: "Redes neuronales profundas", Autores: "Doe, J.", IDAutorPrincipal: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "aprobada", updated.Estado)
	assert.Equal(t, "Admin", *updated.AprobadorNombre)
	assert.Nil(t, updated.Linea)
}

func TestListPublicacionesProjection(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.create(t)
	f.create(t)

	_, err := f.svc.AprobarPublicacion(ctx, a.IDPublicacion, 1)
	require.NoError(t, err)

	all, err := f.svc.ListPublicaciones(ctx, model.PublicacionFilter{}, utils.Pagination{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		if p.IDAprobador != nil {
			assert.NotNil(t, p.AprobadorNombre)
			assert.NotNil(t, p.AprobadorApellido)
		} else {
			assert.Nil(t, p.AprobadorNombre)
			assert.Nil(t, p.AprobadorApellido)
		}
	}

	aprobadas, err := f.svc.ListPublicaciones(ctx,
		model.PublicacionFilter{Estado: utils.Ptr("aprobada")}, utils.Pagination{Limit: 100})
	require.NoError(t, err)
	require.Len(t, aprobadas, 1)
	assert.Equal(t, a.IDPublicacion, aprobadas[0].IDPublicacion)
}
