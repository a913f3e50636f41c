package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(zerolog.Nop())

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AI_PORT", "9100")
	t.Setenv("DATABASE_URL", "postgres://localhost/solo")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load(zerolog.Nop())

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "postgres://localhost/solo", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}
