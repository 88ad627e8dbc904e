// internal/fastx/record.go
package fastx

// Format names a FASTX serialization.
type Format string

const (
	FormatFasta Format = "fasta"
	FormatFastq Format = "fastq"
)

// Record is one parsed FASTA or FASTQ entry.
//
// Qual is nil for FASTA-sourced records and exactly len(Seq) bytes for
// FASTQ-sourced ones. Plus preserves whatever followed the FASTQ '+'
// separator so round-trips keep the original bytes.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte
	Plus string
}

// IsFasta reports whether the record came from a FASTA source.
func (r *Record) IsFasta() bool { return r.Qual == nil }

// Head returns the full header text: the ID, plus the description
// separated by a single space when one is present.
func (r *Record) Head() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// SourceFormat returns the format the record was parsed from.
func (r *Record) SourceFormat() Format {
	if r.IsFasta() {
		return FormatFasta
	}
	return FormatFastq
}

// ParseFormat validates a format name from the CLI.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatFasta, FormatFastq:
		return Format(s), true
	}
	return "", false
}
