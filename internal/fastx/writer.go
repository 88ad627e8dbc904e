// internal/fastx/writer.go
package fastx

import (
	"bytes"
	"fmt"
	"io"
)

// QualFiller is the placeholder quality byte used when a FASTA-sourced
// record is serialized as FASTQ. The synthesis is deterministic and lossy
// on purpose: the target grammar requires a quality line the source never
// had.
const QualFiller = '-'

// Writer serializes Records. An empty format means "each record's own
// source format" (no conversion).
type Writer struct {
	w      io.Writer
	format Format
}

func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// Write appends one record to the sink.
func (w *Writer) Write(rec *Record) error {
	f := w.format
	if f == "" {
		f = rec.SourceFormat()
	}
	switch f {
	case FormatFastq:
		return writeFastq(w.w, rec)
	default:
		return writeFasta(w.w, rec)
	}
}

func writeFasta(w io.Writer, rec *Record) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", rec.Head(), rec.Seq)
	return err
}

func writeFastq(w io.Writer, rec *Record) error {
	qual := rec.Qual
	if qual == nil {
		qual = bytes.Repeat([]byte{QualFiller}, len(rec.Seq))
	}
	_, err := fmt.Fprintf(w, "@%s\n%s\n+%s\n%s\n", rec.Head(), rec.Seq, rec.Plus, qual)
	return err
}
