package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, UserDeleteLegacy, cfg.Policy.UserDelete)
	assert.False(t, cfg.StrictUserDelete())
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("USER_DELETE_POLICY", "STRICT")
	t.Setenv("SEED_DEFAULT_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.StrictUserDelete())
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("USER_DELETE_POLICY", "cascade")

	_, err := Load()
	assert.ErrorContains(t, err, "USER_DELETE_POLICY")
}

func TestLoad_ProductionNeedsDatabaseSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/giit")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "giit")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "giit_db")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgresql://giit:secret@db:6543/giit_db?sslmode=disable", cfg.ConnectionString())

	t.Setenv("DATABASE_URL", "postgresql://other/db")
	cfg, err = LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgresql://other/db", cfg.ConnectionString())
}

func TestLoadDatabaseConfig_Invalid(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	_, err := LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_PORT")

	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_MAX_RETRIES", "0")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_MAX_RETRIES")
}
