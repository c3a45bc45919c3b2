package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query   string
		want    Pagination
		wantErr bool
	}{
		{query: "", want: Pagination{Skip: 0, Limit: 100}},
		{query: "?skip=20&limit=5", want: Pagination{Skip: 20, Limit: 5}},
		{query: "?limit=5000", want: Pagination{Skip: 0, Limit: MaxLimit}},
		{query: "?skip=-1", wantErr: true},
		{query: "?limit=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := ParsePagination(newContext("/roles/" + tt.query))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt64(t *testing.T) {
	c := newContext("/publicaciones/?id_linea=7&id_autor=x")

	v, err := QueryInt64(c, "id_linea")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	v, err = QueryInt64(c, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryInt64(c, "id_autor")
	assert.Error(t, err)
}

func TestKeepIfPlaceholder(t *testing.T) {
	current := Ptr("logo.png")

	assert.Equal(t, current, KeepIfPlaceholder(Ptr(PlaceholderValue), current))
	assert.Equal(t, "nuevo.png", *KeepIfPlaceholder(Ptr("nuevo.png"), current))
	assert.Nil(t, KeepIfPlaceholder(nil, current))
}

func TestFilter(t *testing.T) {
	var f Filter
	assert.Equal(t, "", f.Where())

	f.Add("estado", "=", "pendiente")
	f.Add("id_linea", "=", int64(3))
	assert.Equal(t, " WHERE estado = $1 AND id_linea = $2", f.Where())

	limit, args := f.Page(Pagination{Skip: 10, Limit: 20})
	assert.Equal(t, " LIMIT $3 OFFSET $4", limit)
	assert.Equal(t, []any{"pendiente", int64(3), 20, 10}, args)
}

func TestPgErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: PgUniqueViolation, ConstraintName: "roles_nombre_rol_key"}
	fk := fmt.Errorf("delete: %w", &pgconn.PgError{Code: PgForeignKeyViolation})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.Equal(t, "roles_nombre_rol_key", ConstraintName(unique))
	assert.Equal(t, "", PgErrorCode(fmt.Errorf("plain")))
}
