// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"seqr/internal/cli"
	"seqr/internal/cmdutil"
)

// RunContext executes the CLI for one argv slice and returns the process
// exit code: 0 success (including a downstream broken pipe), 1 runtime
// failure (open/parse/match/write), 2 usage error, 130 cancellation.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCommand(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	if err == nil {
		return 0
	}
	if cmdutil.IsBrokenPipe(err) {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}

	var rerr *cmdutil.RunError
	if errors.As(err, &rerr) {
		// Already reported through the diagnostics logger.
		return 1
	}

	// Usage errors: cobra printed usage, the message is on us.
	_, _ = fmt.Fprintln(stderr, err)
	return 2
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
