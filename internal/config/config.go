package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Policy PolicyConfig
	Seed   SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	CacheTTL time.Duration // TTL của danh sách carrusel
}

type CORSConfig struct {
	AllowedOrigins []string
}

// User delete policies
const (
	UserDeleteLegacy = "legacy" // no dependency pre-check, constraint errors only
	UserDeleteStrict = "strict" // pre-check every table that references usuarios
)

type PolicyConfig struct {
	UserDelete string
}

type SeedConfig struct {
	Enabled bool
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "GIIT API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Policy: PolicyConfig{
			UserDelete: strings.ToLower(getEnv("USER_DELETE_POLICY", UserDeleteLegacy)),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_DEFAULT_DATA", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Policy.UserDelete {
	case UserDeleteLegacy, UserDeleteStrict:
	default:
		return fmt.Errorf("USER_DELETE_POLICY must be %q or %q, got %q",
			UserDeleteLegacy, UserDeleteStrict, c.Policy.UserDelete)
	}

	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}

	if c.App.Environment == "production" {
		if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD or DATABASE_URL must be set in production")
		}
	}

	return nil
}

// StrictUserDelete reports whether usuario deletes must pass the dependency check.
func (c *Config) StrictUserDelete() bool {
	return c.Policy.UserDelete == UserDeleteStrict
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
