// internal/headersapp/app.go
package headersapp

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

// Options are the typed headers parameters handed over by the CLI layer.
type Options struct {
	Files    []string
	IDOnly   bool
	DescOnly bool
}

// Run prints one header line per record across every source.
func Run(ctx context.Context, opts Options, stdout io.Writer, logger *log.Logger) error {
	outw := bufio.NewWriter(stdout)

	files := opts.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, path := range files {
		logger.Debug("reading headers", "path", path)
		err := pipeline.ForEachRecordInSource(ctx, path, func(rec *fastx.Record) error {
			switch {
			case opts.IDOnly:
				fmt.Fprintln(outw, rec.ID)
			case opts.DescOnly:
				fmt.Fprintln(outw, rec.Desc)
			default:
				fmt.Fprintln(outw, rec.Head())
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err := outw.Flush(); err != nil && !cmdutil.IsBrokenPipe(err) {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
