// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"seqr/internal/fastx"
)

// Visit consumes one record. Returning a non-nil error aborts the run.
type Visit func(*fastx.Record) error

// ForEachRecord streams every source in order through visit.
//
// Sources are processed strictly sequentially: one is fully exhausted
// before the next is opened, and each file handle is released when its
// source is done. Any open, parse or visit error is fatal to the whole
// run; records are never silently skipped. Cancellation is honored
// between records.
func ForEachRecord(ctx context.Context, paths []string, visit Visit) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		if err := ForEachRecordInSource(ctx, path, visit); err != nil {
			return err
		}
	}
	return nil
}

// ForEachRecordInSource streams a single source through visit.
func ForEachRecordInSource(ctx context.Context, path string, visit Visit) error {
	rc, err := fastx.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	r := fastx.NewReader(rc, path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := visit(rec); err != nil {
			return err
		}
	}
}
