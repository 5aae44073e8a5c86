package server

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the service settings, read from the environment with a
// .env file as fallback.
type Config struct {
	// Port the HTTP listener binds to.
	Port string
	// Env is the deployment environment, "production" tightens CORS.
	Env string
	// AllowedOrigins is the comma-separated CORS allowlist used in
	// production.
	AllowedOrigins []string
	// DatabaseDSN selects the MySQL store when set; empty means in-memory.
	DatabaseDSN string
}

// LoadConfig reads the environment, consulting .env first.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        os.Getenv("PORT"),
		Env:         strings.TrimSpace(os.Getenv("GO_ENV")),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	return cfg
}

// Production reports whether the service runs with production settings.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}
