// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr diagnostics logger. Debug mode lowers the
// level so per-source progress events become visible; the data sink never
// receives any of this.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}
