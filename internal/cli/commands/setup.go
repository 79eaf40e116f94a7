package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cosmicmystery/cosmicsite/internal/cli/config"
	"github.com/cosmicmystery/cosmicsite/internal/cli/output"
	"github.com/cosmicmystery/cosmicsite/internal/site"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Site builds the landing page from the configured site settings.
func (c *CommandContext) Site(liveReload bool) (*site.Site, error) {
	return site.New(site.Options{
		BaseURL:      c.Cfg.Site.BaseURL,
		ContactEmail: c.Cfg.Site.ContactEmail,
		ContactForm:  c.Cfg.Site.ContactForm,
		LiveReload:   liveReload,
	})
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise the defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
