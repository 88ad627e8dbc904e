// internal/fastx/errors.go
package fastx

import "fmt"

// ParseError reports a grammar violation with the source name and a
// best-effort 1-based line number.
type ParseError struct {
	Source string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
}

// FormatError reports a source whose first non-blank byte is neither the
// FASTA nor the FASTQ record marker.
type FormatError struct {
	Source string
	Marker byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unrecognized format (leading %q, want '>' or '@')", e.Source, e.Marker)
}

func (r *Reader) parseErrorf(format string, a ...any) error {
	return &ParseError{Source: r.src, Line: r.line, Reason: fmt.Sprintf(format, a...)}
}
