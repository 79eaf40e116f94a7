package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	platformenv "github.com/caarlos0/env/v11"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// EnvPrefix marks environment variables read into the config. A double
// underscore separates nesting levels: COSMICSITE_SERVER__PORT is server.port.
const EnvPrefix = "COSMICSITE_"

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// flagKeys maps CLI flag names onto config keys. Flags not listed here do
// not feed the config.
var flagKeys = map[string]string{
	"host":          "server.host",
	"port":          "server.port",
	"watch":         "server.watch",
	"dev":           "server.dev",
	"inbox":         "server.inbox",
	"base-url":      "site.base_url",
	"contact-email": "site.contact_email",
	"contact-form":  "site.contact_form",
	"output-dir":    "build.output_dir",
	"minify":        "build.minify",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"output":        "output",
	"verbose":       "verbose",
}

// platform holds variables set by hosting platforms rather than by us.
type platform struct {
	Port int `env:"PORT"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > cosmicsite.yaml > cosmicsite.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"cosmicsite.yaml", "cosmicsite.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > COSMICSITE_ env vars > config file >
// platform $PORT > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	d := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"server.host":                d.Server.Host,
		"server.port":                d.Server.Port,
		"server.watch":               d.Server.Watch,
		"server.dev":                 d.Server.Dev,
		"server.session_secret":      d.Server.SessionSecret,
		"server.shutdown_timeout":    d.Server.ShutdownTimeout.String(),
		"server.read_header_timeout": d.Server.ReadHeaderTimeout.String(),
		"server.inbox":               d.Server.Inbox,
		"site.base_url":              d.Site.BaseURL,
		"site.contact_email":         d.Site.ContactEmail,
		"site.contact_form":          d.Site.ContactForm,
		"build.output_dir":           d.Build.OutputDir,
		"build.minify":               d.Build.Minify,
		"log.level":                  d.Log.Level,
		"log.format":                 d.Log.Format,
		"output":                     d.OutputFormat,
		"verbose":                    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Platform port
	var p platform
	if err := platformenv.Parse(&p); err != nil {
		return nil, fmt.Errorf("failed to read platform environment: %w", err)
	}
	if p.Port != 0 {
		if err := k.Load(confmap.Provider(map[string]interface{}{"server.port": p.Port}, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load platform port: %w", err)
		}
	}

	// 3. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 4. Environment variables
	// Transform: COSMICSITE_SITE__BASE_URL -> site.base_url
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 6. Unmarshal into Config struct
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// NewLogger builds the slog logger described by lc.
func NewLogger(w io.Writer, lc LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(lc.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", lc.Format)
	}
}

// WithLogger stores the logger in ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
