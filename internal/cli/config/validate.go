package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Accepted enumerations.
var (
	LogLevels   = []string{"debug", "info", "warn", "error"}
	LogFormats  = []string{"text", "json"}
	OutputModes = []string{"auto", "text", "json", "yaml"}
)

// Validate checks if the configuration is valid. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 0 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must not be negative"))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got %q", strings.Join(LogLevels, "|"), c.Log.Level))
	}
	if !slices.Contains(LogFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s, got %q", strings.Join(LogFormats, "|"), c.Log.Format))
	}
	if !slices.Contains(OutputModes, c.OutputFormat) {
		errs = append(errs, fmt.Errorf("output must be one of %s, got %q", strings.Join(OutputModes, "|"), c.OutputFormat))
	}
	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("site.base_url must be an absolute http(s) URL, got %q", c.Site.BaseURL))
		}
	}
	if c.Site.ContactEmail == "" {
		errs = append(errs, errors.New("site.contact_email is required"))
	}

	return errors.Join(errs...)
}

// ValidateBuild checks the settings only the build command needs.
func (c *Config) ValidateBuild() error {
	if strings.TrimSpace(c.Build.OutputDir) == "" {
		return fmt.Errorf("build.output_dir is required\nHint: set it in cosmicsite.yaml or pass --output-dir")
	}
	return nil
}
