// Package config provides configuration management for the cosmicsite CLI.
package config

import (
	"time"

	"github.com/cosmicmystery/cosmicsite/internal/content"
)

// ServerConfig holds configuration for the site server.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	Watch             bool          `koanf:"watch"`
	Dev               bool          `koanf:"dev"`
	SessionSecret     string        `koanf:"session_secret"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	// Inbox, when set, is a JSON-lines file receiving contact inquiries.
	Inbox string `koanf:"inbox"`
}

// SiteConfig holds what varies between deployments of the page.
type SiteConfig struct {
	BaseURL      string `koanf:"base_url"`
	ContactEmail string `koanf:"contact_email"`
	ContactForm  bool   `koanf:"contact_form"`
}

// BuildConfig holds configuration for the static export.
type BuildConfig struct {
	OutputDir string `koanf:"output_dir"`
	Minify    bool   `koanf:"minify"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config holds all CLI configuration options.
type Config struct {
	Server       ServerConfig `koanf:"server"`
	Site         SiteConfig   `koanf:"site"`
	Build        BuildConfig  `koanf:"build"`
	Log          LogConfig    `koanf:"log"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultHost              = ""
	DefaultPort              = 8080
	DefaultSessionSecret     = "cosmicsite-dev-secret-change-in-production" //nolint:gosec
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultContactEmail      = content.DefaultContactEmail
	DefaultOutputDir         = "dist"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultOutput            = "auto" // Auto-detect: TTY=text, non-TTY=json
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              DefaultHost,
			Port:              DefaultPort,
			SessionSecret:     DefaultSessionSecret,
			ShutdownTimeout:   DefaultShutdownTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Site: SiteConfig{
			ContactEmail: DefaultContactEmail,
			ContactForm:  true,
		},
		Build: BuildConfig{
			OutputDir: DefaultOutputDir,
			Minify:    true,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		OutputFormat: DefaultOutput,
	}
}
