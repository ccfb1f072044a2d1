package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("SPECIAL_POSITION", "")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:12000", cfg.Server.Addr())
	assert.Equal(t, 300*time.Second, cfg.Analytics.CacheTTL)
	assert.Equal(t, "SW 배정 횟수", cfg.Analytics.SpecialPosition)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "8051")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("DB_NAME", "custom")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8051", cfg.Server.Addr())
	assert.Equal(t, time.Minute, cfg.Analytics.CacheTTL)
	assert.Equal(t, "custom", cfg.Database.DBName)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")
	t.Setenv("CACHE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 12000, cfg.Server.Port)
	assert.Equal(t, 300*time.Second, cfg.Analytics.CacheTTL)
}
