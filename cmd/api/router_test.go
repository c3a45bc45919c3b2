package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraCache "giit-backend/internal/infrastructure/cache"
	"giit-backend/pkg/container"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWelcome(t *testing.T) {
	r := SetupRouter(&container.Container{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, welcomeMessage, body["message"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c := &container.Container{
		Cache: infraCache.NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})),
	}
	r := SetupRouter(c)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "disconnected", body.Services["database"])
	assert.Equal(t, "ok", body.Services["redis"])
}

func TestRoutes_BareAndTrailingSlash(t *testing.T) {
	r := SetupRouter(&container.Container{})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, prefix := range []string{"/roles", "/usuarios", "/lineas-investigacion", "/tipologias",
		"/publicaciones", "/productos", "/eventos", "/carrusel"} {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			assert.True(t, registered[method+" "+prefix], method+" "+prefix)
			assert.True(t, registered[method+" "+prefix+"/"], method+" "+prefix+"/")
		}
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			assert.True(t, registered[method+" "+prefix+"/:id"], method+" "+prefix+"/:id")
		}
	}

	for _, route := range []string{
		"POST /login",
		"PUT /publicaciones/:id/aprobar",
		"PUT /publicaciones/:id/rechazar",
		"PUT /publicaciones/:id/estado",
		"PUT /productos/:id/estado",
		"PUT /productos/:id/aprobar",
		"PUT /productos/:id/rechazar",
		"PUT /productos/:id/estado-aprobacion",
		"PUT /carrusel/:id/orden/:orden",
	} {
		assert.True(t, registered[route], route)
	}
}
