package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Execute runs cmd with ctx and returns the process exit code. Errors are
// printed to the command's stderr.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
