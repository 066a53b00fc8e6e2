// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the todokeeper server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DBHost/DBPort/DBUser/DBPassword/DBName: PostgreSQL connection parts (pgx).
//   - SecretKey: HMAC secret for signing JWTs (HS256). The default is a fixed
//     development value and must be overridden in production.
//   - TokenValidityDuration: auth token lifetime.
//   - FrontendURL: allowed CORS origin.
//   - Env: "development" or "production".
type Config struct {
	Addr                  string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	SecretKey             string
	TokenValidityDuration time.Duration
	FrontendURL           string
	Env                   string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.DBHost = "localhost"
	c.DBPort = "5432"
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "todokeeper"
	c.SecretKey = "your-secret-key"
	c.TokenValidityDuration = 1 * time.Hour
	c.FrontendURL = "http://localhost:3000"
	c.Env = "development"
}

// DatabaseDSN assembles a pgx-compatible DSN from the DB_* parts.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// IsProduction reports whether the server runs with production behavior
// (secure cookies, no diagnostic detail in 500 responses).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
