package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giit-backend/internal/domains/evento/model"
	"giit-backend/internal/shared/utils"
)

// stubService ghi lại filter cuối cùng
type stubService struct {
	filter  model.EventoFilter
	created *model.EventoRequest
}

func (s *stubService) CreateEvento(_ context.Context, req *model.EventoRequest) (*model.Evento, error) {
	s.created = req
	return &model.Evento{IDEvento: 1, Nombre: req.Nombre, IDCreador: req.IDCreador}, nil
}

func (s *stubService) GetEvento(context.Context, int64) (*model.Evento, error) {
	return nil, model.NewEventoNotFound()
}

func (s *stubService) ListEventos(_ context.Context, filter model.EventoFilter, _ utils.Pagination) ([]*model.Evento, error) {
	s.filter = filter
	return []*model.Evento{}, nil
}

func (s *stubService) UpdateEvento(context.Context, int64, *model.EventoRequest) (*model.Evento, error) {
	return nil, model.NewInvalidDateRange()
}

func (s *stubService) DeleteEvento(context.Context, int64) error { return nil }

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEventoHandler(svc)
	r := gin.New()
	r.GET("/eventos", h.ListEventos)
	r.POST("/eventos", h.CreateEvento)
	r.GET("/eventos/:id", h.GetEvento)
	r.PUT("/eventos/:id", h.UpdateEvento)
	r.DELETE("/eventos/:id", h.DeleteEvento)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListEventos_ParsesFilters(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	w := do(r, http.MethodGet, "/eventos?fecha_inicio=2024-01-01&fecha_fin=2024-12-31&tipo_evento=congreso&id_creador=3", "")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.filter.FechaInicio)
	assert.Equal(t, "2024-01-01", svc.filter.FechaInicio.String())
	require.NotNil(t, svc.filter.FechaFin)
	assert.Equal(t, "2024-12-31", svc.filter.FechaFin.String())
	require.NotNil(t, svc.filter.TipoEvento)
	assert.Equal(t, "congreso", *svc.filter.TipoEvento)
	require.NotNil(t, svc.filter.IDCreador)
	assert.Equal(t, int64(3), *svc.filter.IDCreador)
}

func TestListEventos_BadQuery(t *testing.T) {
	r := newRouter(&stubService{})

	for _, q := range []string{"fecha_inicio=yesterday", "fecha_fin=2024-13-01", "id_creador=abc", "limit=-1"} {
		w := do(r, http.MethodGet, "/eventos?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestCreateEvento(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	w := do(r, http.MethodPost, "/eventos", `{"nombre":"Congreso","id_creador":1,"fecha_inicio":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created.FechaInicio)
	assert.Nil(t, svc.created.FechaFin)

	w = do(r, http.MethodPost, "/eventos", `{"nombre":"Congreso","id_creador":1,"fecha_inicio":"01/05/2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/eventos", `{"id_creador":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventoErrors(t *testing.T) {
	r := newRouter(&stubService{})

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/eventos/9", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/eventos/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		do(r, http.MethodPut, "/eventos/1", `{"nombre":"x","id_creador":1}`).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/eventos/1", "").Code)
}
