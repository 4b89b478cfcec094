package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the studio backend.
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Public base URL of this service. The profile/avatar orchestrator replays
	// failed direct writes through our own /api/db endpoints, and needs to
	// know where those live.
	PublicBaseURL string

	// Database
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string
	DatabaseMaxConns int32
	DatabaseMinConns int32

	// Kratos (hosted identity provider)
	KratosPublicURL string
	KratosAdminURL  string

	// Object storage (hosted avatar store)
	StorageURL    string
	StorageAPIKey string
	StorageBucket string

	// Mailer (contact form relay)
	MailerURL     string
	MailerAPIKey  string
	ContactTarget string

	// Image proxy
	ProxyTimeout time.Duration

	// Admin session gate
	AdminSessionTTL time.Duration

	// Locale used when a request carries none
	DefaultLocale string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnvOrDefault("PORT", "9600")
	cfg.Host = getEnvOrDefault("HOST", "0.0.0.0")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	cfg.PublicBaseURL = getEnvOrDefault("PUBLIC_BASE_URL", fmt.Sprintf("http://localhost:%s", cfg.Port))

	cfg.DatabaseHost = getEnvOrDefault("DB_HOST", "studio-postgres")
	cfg.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	cfg.DatabaseName = getEnvOrDefault("DB_NAME", "studio_db")
	cfg.DatabaseUser = getEnvOrDefault("DB_USER", "studio_user")
	cfg.DatabasePassword = os.Getenv("DB_PASSWORD")
	if cfg.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	var err error
	cfg.DatabaseMaxConns, err = getEnvInt32("DB_MAX_CONNS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	cfg.DatabaseMinConns, err = getEnvInt32("DB_MIN_CONNS", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	cfg.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if cfg.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}
	cfg.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if cfg.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	cfg.StorageURL = os.Getenv("STORAGE_URL")
	if cfg.StorageURL == "" {
		return nil, fmt.Errorf("STORAGE_URL is required")
	}
	cfg.StorageAPIKey = os.Getenv("STORAGE_API_KEY")
	cfg.StorageBucket = getEnvOrDefault("STORAGE_BUCKET", "avatars")

	cfg.MailerURL = getEnvOrDefault("MAILER_URL", "")
	cfg.MailerAPIKey = os.Getenv("MAILER_API_KEY")
	cfg.ContactTarget = getEnvOrDefault("CONTACT_TARGET", "")

	cfg.ProxyTimeout, err = time.ParseDuration(getEnvOrDefault("PROXY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROXY_TIMEOUT: %w", err)
	}

	cfg.AdminSessionTTL, err = time.ParseDuration(getEnvOrDefault("ADMIN_SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_SESSION_TTL: %w", err)
	}

	cfg.DefaultLocale = getEnvOrDefault("DEFAULT_LOCALE", "es")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.DatabaseMinConns < 1 {
		return fmt.Errorf("database pool needs at least one connection, got: %d", c.DatabaseMinConns)
	}
	if c.DatabaseMaxConns < c.DatabaseMinConns {
		return fmt.Errorf("database pool max (%d) is below min (%d)", c.DatabaseMaxConns, c.DatabaseMinConns)
	}

	if c.ProxyTimeout < time.Second {
		return fmt.Errorf("proxy timeout must be at least 1 second, got: %v", c.ProxyTimeout)
	}

	if c.AdminSessionTTL < time.Minute {
		return fmt.Errorf("admin session TTL must be at least 1 minute, got: %v", c.AdminSessionTTL)
	}

	validLocales := []string{"en", "es"}
	if !contains(validLocales, c.DefaultLocale) {
		return fmt.Errorf("invalid default locale: %s", c.DefaultLocale)
	}

	return nil
}

func getEnvInt32(key string, defaultValue int32) (int32, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(parsed), nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
