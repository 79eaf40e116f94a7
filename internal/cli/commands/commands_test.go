package commands

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cosmicmystery/cosmicsite/internal/cli/config"
)

// isolate runs the test in an empty directory with no ambient configuration.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	_ = os.Unsetenv("PORT")
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
}

// runCommand executes cmd the way the root command would: configuration is
// loaded from its flags before RunE.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	isolate(t)

	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Output format")
	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		_, err := config.LoadConfig("", c.Flags())
		return err
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
