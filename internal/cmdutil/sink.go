// internal/cmdutil/sink.go
package cmdutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// OpenSink resolves an output destination: an empty path (or "-") wraps
// stdout, anything else is created on disk. The returned finish func
// flushes buffered output and closes the file when one was opened; the
// sink spans the whole run, however many sources feed it.
func OpenSink(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		bw := bufio.NewWriter(stdout)
		return bw, bw.Flush, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(fh)
	finish := func() error {
		if err := bw.Flush(); err != nil {
			_ = fh.Close()
			return err
		}
		return fh.Close()
	}
	return bw, finish, nil
}
