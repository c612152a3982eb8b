package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"os"
)

// Config holds all runtime settings, read once at startup and passed to the
// components that need them.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// Optional bootstrap admin account, created at migration time if absent.
	AdminEmail    string
	AdminPassword string

	LogLevel    string
	CORSOrigins []string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      fallback(os.Getenv("LOG_LEVEL"), "info"),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttl, err := strconv.Atoi(minutes); err == nil && ttl > 0 {
		cfg.JWTTTL = time.Duration(ttl) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// Addr returns the host:port pair for the HTTP server to bind to.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
