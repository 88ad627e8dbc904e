// internal/filterapp/app.go
package filterapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"seqr/internal/cmdutil"
	"seqr/internal/fastx"
	"seqr/internal/pipeline"
)

// Options are the typed filter parameters handed over by the CLI layer.
type Options struct {
	File        string
	Output      string // "" = stdout
	MinLen      int    // 0 = no bound
	MaxLen      int    // 0 = no bound
	Number      int    // 0 = unlimited
	IDs         []string
	IDsFromFile string
}

// errLimit stops the pipeline once --number records have been taken.
var errLimit = errors.New("record limit reached")

// Run copies records that pass every active filter to the sink, each in
// its own source format.
func Run(ctx context.Context, opts Options, stdout io.Writer, logger *log.Logger) error {
	ids := opts.IDs
	if opts.IDsFromFile != "" {
		fromFile, err := readLines(opts.IDsFromFile)
		if err != nil {
			return err
		}
		ids = fromFile
	}
	lookup := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		lookup[id] = struct{}{}
	}

	sink, finish, err := cmdutil.OpenSink(opts.Output, stdout)
	if err != nil {
		return err
	}
	w := fastx.NewWriter(sink, "")

	file := opts.File
	if file == "" {
		file = "-"
	}
	logger.Debug("filtering source", "path", file,
		"min-len", opts.MinLen, "max-len", opts.MaxLen, "ids", len(lookup))

	taken := 0
	err = pipeline.ForEachRecordInSource(ctx, file, func(rec *fastx.Record) error {
		if !keep(rec, opts, lookup) {
			return nil
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		taken++
		if opts.Number > 0 && taken >= opts.Number {
			return errLimit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimit) {
		if cmdutil.IsBrokenPipe(err) {
			return nil
		}
		_ = finish()
		return err
	}

	if err := finish(); err != nil && !cmdutil.IsBrokenPipe(err) {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func keep(rec *fastx.Record, opts Options, lookup map[string]struct{}) bool {
	if opts.MinLen > 0 && len(rec.Seq) < opts.MinLen {
		return false
	}
	if opts.MaxLen > 0 && len(rec.Seq) > opts.MaxLen {
		return false
	}
	if len(lookup) > 0 {
		if _, ok := lookup[rec.ID]; !ok {
			if _, ok := lookup[rec.Desc]; !ok {
				return false
			}
		}
	}
	return true
}

// readLines returns the non-empty lines of a file ("-" for stdin).
func readLines(path string) ([]string, error) {
	rc, err := fastx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	var out []string
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}
