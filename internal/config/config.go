// Package config loads fyyur settings from the environment and optional .env
// files.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env", "config/local.env"}

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Security SecurityConfig
	CORS     CORSConfig
	Logging  LoggingConfig

	// SeedDemoData loads the demo venues, artists and shows on serve.
	SeedDemoData bool
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string // Full PostgreSQL URL
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string
	Port int
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds security-related settings
type SecurityConfig struct {
	SessionSecret string
	CookieSecure  bool // mark cookies Secure; enable behind TLS
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration through v, after loading any .env files into the
// process environment. Flags bound to v take precedence over the environment.
func Load(v *viper.Viper) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v.AutomaticEnv()
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SEED_DEMO_DATA", false)
	v.SetDefault("COOKIE_SECURE", false)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("HOST"),
		},
		Security: SecurityConfig{
			SessionSecret: v.GetString("SESSION_SECRET"),
			CookieSecure:  v.GetBool("COOKIE_SECURE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		SeedDemoData: v.GetBool("SEED_DEMO_DATA"),
	}

	port, err := strconv.Atoi(v.GetString("PORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Server.Port = port

	if err := cfg.loadDatabase(v); err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadDatabase(v *viper.Viper) error {
	c.Database.URL = v.GetString("DATABASE_URL")
	if c.Database.URL != "" {
		return nil
	}

	c.Database.Host = v.GetString("DB_HOST")
	c.Database.User = v.GetString("DB_USER")
	c.Database.Password = v.GetString("DB_PASSWORD")
	c.Database.Name = v.GetString("DB_NAME")
	c.Database.SSLMode = v.GetString("DB_SSLMODE")

	port, err := strconv.Atoi(v.GetString("DB_PORT"))
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	c.Database.Port = port

	if c.Database.Host != "" && c.Database.User != "" && c.Database.Name != "" {
		u := url.URL{
			Scheme:   "postgresql",
			User:     url.UserPassword(c.Database.User, c.Database.Password),
			Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
			Path:     "/" + c.Database.Name,
			RawQuery: "sslmode=" + url.QueryEscape(c.Database.SSLMode),
		}
		c.Database.URL = u.String()
	}
	return nil
}

// ValidateDatabase checks only what the migrate and seed commands need.
func (c *Config) ValidateDatabase() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required (or DB_HOST, DB_USER, DB_NAME)")
	}
	return nil
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var problems []string

	if err := c.ValidateDatabase(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.Security.SessionSecret == "" {
		problems = append(problems, "SESSION_SECRET is required")
	} else if len(c.Security.SessionSecret) < 16 {
		problems = append(problems, "SESSION_SECRET must be at least 16 characters")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		problems = append(problems, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		problems = append(problems, "LOG_FORMAT must be one of: json, text")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
