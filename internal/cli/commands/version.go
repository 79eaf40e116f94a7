package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display cosmicsite version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cosmicsite v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cosmic Mystery Center landing page server (%s)\n", runtime.Version())
		},
	}
}
