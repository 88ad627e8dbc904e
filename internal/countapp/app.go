// internal/countapp/app.go
package countapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"seqr/internal/cmdutil"
	"seqr/internal/fastx"
	"seqr/internal/pipeline"
)

// Options are the typed count parameters handed over by the CLI layer.
type Options struct {
	Files []string
}

// Run counts records per source and prints a total when more than one
// source was given. Counting is the trivial fold over the same record
// stream grep consumes.
func Run(ctx context.Context, opts Options, stdout io.Writer, logger *log.Logger) error {
	files := opts.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	outw := bufio.NewWriter(stdout)
	total := 0
	for _, path := range files {
		logger.Debug("counting source", "path", path)
		n := 0
		err := pipeline.ForEachRecordInSource(ctx, path, func(*fastx.Record) error {
			n++
			return nil
		})
		if err != nil {
			return err
		}
		if path == "-" {
			fmt.Fprintf(outw, "%10d\n", n)
		} else {
			fmt.Fprintf(outw, "%10d %s\n", n, path)
		}
		total += n
	}
	if len(files) > 1 {
		fmt.Fprintf(outw, "%10d total\n", total)
	}

	if err := outw.Flush(); err != nil && !cmdutil.IsBrokenPipe(err) {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
