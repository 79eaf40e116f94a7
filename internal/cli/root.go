// Package cli provides the command-line interface for cosmicsite.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmicmystery/cosmicsite/internal/cli/commands"
	"github.com/cosmicmystery/cosmicsite/internal/cli/config"
	"github.com/cosmicmystery/cosmicsite/internal/content"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "cosmicsite",
		Short: "cosmicsite - " + content.OrganizationName + " landing page",
		Long: `cosmicsite serves and exports the landing page of the ` + content.OrganizationName + `.

Serve it live with "serve", export static files with "build" and verify
links and structured data with "check".`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}} (commit ` + GitCommit + `, built ` + BuildDate + `)
`)

	// Global persistent flags
	d := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./cosmicsite.yaml)")
	pf.String("base-url", d.Site.BaseURL, "Absolute URL the page is published at")
	pf.String("contact-email", d.Site.ContactEmail, "Address shown on the page and used for inquiries")
	pf.Bool("contact-form", d.Site.ContactForm, "Render the #contact-form section")
	pf.String("log-level", d.Log.Level, "Log level (debug|info|warn|error)")
	pf.String("log-format", d.Log.Format, "Log format (text|json)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", d.OutputFormat, "Output format (auto|text|json|yaml)")

	completeFrom := func(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	_ = rootCmd.RegisterFlagCompletionFunc("output", completeFrom(config.OutputModes))
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", completeFrom(config.LogLevels))
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeFrom(config.LogFormats))

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cosmicsite.

To load completions:

Bash:
  $ source <(cosmicsite completion bash)

Zsh:
  $ cosmicsite completion zsh > "${fpath[1]}/_cosmicsite"

Fish:
  $ cosmicsite completion fish | source

PowerShell:
  PS> cosmicsite completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
