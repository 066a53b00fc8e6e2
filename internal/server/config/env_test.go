package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "todos")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("APP_ENV", "production")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, "5433", c.DBPort)
	assert.Equal(t, "svc", c.DBUser)
	assert.Equal(t, "pw", c.DBPassword)
	assert.Equal(t, "todos", c.DBName)
	assert.Equal(t, "real-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, "https://app.example.com", c.FrontendURL)
	assert.True(t, c.IsProduction())
	assert.Equal(t, "postgres://svc:pw@db.internal:5433/todos?sslmode=disable", c.DatabaseDSN())
}

func TestParseEnv_InvalidTTLKeepsDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv_UnsetLeavesDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "your-secret-key", c.SecretKey)
}
