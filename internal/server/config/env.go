package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset variables
// leave the current value untouched.
//
// Recognized variables: PORT, DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME,
// JWT_SECRET, TOKEN_TTL (Go duration string), FRONTEND_URL, APP_ENV.
func parseEnv(config *Config) {
	if v := os.Getenv("PORT"); v != "" {
		config.Addr = ":" + v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		config.DBHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		config.DBPort = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		config.DBUser = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.DBPassword = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		config.DBName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
			config.TokenValidityDuration = dur
		}
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		config.FrontendURL = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		config.Env = v
	}
}
