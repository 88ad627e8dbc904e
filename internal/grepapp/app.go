// internal/grepapp/app.go
package grepapp

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"seqr/internal/cmdutil"
	"seqr/internal/fastx"
	"seqr/internal/matcher"
	"seqr/internal/pipeline"
)

// Options are the typed grep parameters handed over by the CLI layer.
type Options struct {
	Pattern     string
	Files       []string
	Part        string // head | seq | qual
	OutFormat   string // "" = source format
	Output      string // "" = stdout
	Invert      bool
	Insensitive bool
}

// Run searches every source for records whose selected part matches the
// pattern and writes the matches to one sink, in input order.
func Run(ctx context.Context, opts Options, stdout io.Writer, logger *log.Logger) error {
	part, err := matcher.ParsePart(opts.Part)
	if err != nil {
		return err
	}
	m, err := matcher.New(opts.Pattern, opts.Insensitive, opts.Invert)
	if err != nil {
		return err
	}
	var format fastx.Format
	if opts.OutFormat != "" {
		f, ok := fastx.ParseFormat(opts.OutFormat)
		if !ok {
			return fmt.Errorf("invalid output format %q (want fasta or fastq)", opts.OutFormat)
		}
		format = f
	}

	sink, finish, err := cmdutil.OpenSink(opts.Output, stdout)
	if err != nil {
		return err
	}
	w := fastx.NewWriter(sink, format)

	files := opts.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, path := range files {
		logger.Debug("searching source", "path", path)
		err := pipeline.ForEachRecordInSource(ctx, path, func(rec *fastx.Record) error {
			if !m.Match(rec, part) {
				return nil
			}
			if err := w.Write(rec); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		})
		if err != nil {
			if cmdutil.IsBrokenPipe(err) {
				return nil
			}
			_ = finish()
			return err
		}
	}

	if err := finish(); err != nil && !cmdutil.IsBrokenPipe(err) {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
