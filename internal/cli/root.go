// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seqr/internal/cmdutil"
	"seqr/internal/version"
)

// ErrNoCommand is returned when seqr is invoked without a subcommand.
var ErrNoCommand = errors.New("a subcommand is required")

// NewRootCommand builds the seqr command tree. All output is routed
// through the given writers so tests can drive the CLI with argv slices.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "seqr",
		Short:         "Search and count FASTA/FASTQ sequence records",
		Version:       version.Version,
		SilenceErrors: true,
		// No subcommand: cobra prints usage, the shell maps this to a
		// usage exit code.
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrNoCommand
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("seqr version {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(
		newGrepCommand(&debug),
		newCountCommand(&debug),
		newHeadersCommand(&debug),
		newStatsCommand(&debug),
		newFilterCommand(&debug),
	)
	return root
}

// logger builds the stderr diagnostics logger for a running subcommand.
func logger(cmd *cobra.Command, debug bool) *log.Logger {
	return cmdutil.NewLogger(cmd.ErrOrStderr(), debug)
}

// logError reports an app failure, staying quiet on plain cancellation.
func logError(l *log.Logger, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	l.Error(err)
}

// runErr wraps an app failure so the shell maps it to a runtime exit
// code; usage errors keep cobra's own error type.
func runErr(err error) error {
	if err == nil {
		return nil
	}
	return &cmdutil.RunError{Err: err}
}
