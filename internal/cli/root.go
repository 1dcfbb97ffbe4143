package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsageError = 2
)

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// RunReviewBot executes the reviewbot command with the process arguments.
func RunReviewBot() int {
	return execute(newReviewBotCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

// RunBatchResize executes the batchresize command with the process arguments.
func RunBatchResize() int {
	return execute(newBatchResizeCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	exitCode = ExitSuccess
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}
