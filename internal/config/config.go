package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"agelookup/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr      string
	BaseURL         string
	ShutdownTimeout time.Duration

	// Database (optional, enables persisted lookup outcome counts)
	DatabaseURL string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Age-estimation service
	AgifyBaseURL string
	AgifyTimeout time.Duration // 0 leaves the transport without a deadline

	// Logging
	LogLevel  string
	LogFormat string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Age Lookup"
	SiteTagline string // env: SITE_TAGLINE, default: "Guess someone's age from their name"
	SiteFooter  string // env: SITE_FOOTER, default: "Age Lookup - powered by agify.io"
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	agifyTimeout, err := parseDuration("AGIFY_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		ShutdownTimeout: shutdownTimeout,
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		TLSEnabled:      getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:     getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:      getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:       getEnv("TLS_CA_FILE", ""),
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),
		AgifyBaseURL:    getEnv("AGIFY_BASE_URL", "https://api.agify.io"),
		AgifyTimeout:    agifyTimeout,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),

		SiteTitle:   getEnv("SITE_TITLE", "Age Lookup"),
		SiteTagline: getEnv("SITE_TAGLINE", "Guess someone's age from their name"),
		SiteFooter:  getEnv("SITE_FOOTER", "Age Lookup - powered by agify.io"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if ok, msg := validation.ValidateURL(c.AgifyBaseURL); !ok {
		return fmt.Errorf("invalid AGIFY_BASE_URL: %s", msg)
	}
	if ok, msg := validation.ValidateURL(c.BaseURL); !ok {
		return fmt.Errorf("invalid BASE_URL: %s", msg)
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return errors.New("TLS_ENABLED requires TLS_CERT_FILE and TLS_KEY_FILE")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// HasDatabase returns true if lookup outcomes should be persisted.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
