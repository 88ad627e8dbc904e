// internal/fastx/reader.go
package fastx

import (
	"bufio"
	"bytes"
	"io"
)

// Reader streams Records from one FASTA or FASTQ source.
//
// The format is detected once, from the first non-blank line, and every
// following record must obey that grammar. The stream is lazy, finite and
// non-restartable: each Next consumes exactly one record's bytes, so inputs
// of any size are handled in constant memory.
type Reader struct {
	src     string
	r       *bufio.Reader
	format  Format
	line    int // 1-based number of the last line read
	hold    []byte
	holdNum int
	held    bool
	started bool
}

// NewReader wraps r; src names the source in errors ("-" for stdin).
func NewReader(r io.Reader, src string) *Reader {
	return &Reader{src: src, r: bufio.NewReader(r)}
}

// Format returns the detected source format; it is only meaningful after
// the first successful Next.
func (r *Reader) Format() Format { return r.format }

// Next returns the next record, or io.EOF when the source is exhausted.
// An empty (or all-blank) source is a valid empty stream, not an error.
func (r *Reader) Next() (*Record, error) {
	if !r.started {
		if err := r.detect(); err != nil {
			return nil, err
		}
		r.started = true
	}
	if r.format == FormatFastq {
		return r.nextFastq()
	}
	return r.nextFasta()
}

func (r *Reader) detect() error {
	for {
		line, err := r.readLine()
		if err != nil {
			return err // io.EOF: zero records
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		switch line[0] {
		case '>':
			r.format = FormatFasta
		case '@':
			r.format = FormatFastq
		default:
			return &FormatError{Source: r.src, Marker: line[0]}
		}
		r.pushBack(line)
		return nil
	}
}

func (r *Reader) nextFasta() (*Record, error) {
	header, err := r.nonBlankLine()
	if err != nil {
		return nil, err
	}
	if header[0] != '>' {
		return nil, r.parseErrorf("malformed header %q (expected '>')", clip(header))
	}
	id, desc := splitHeader(header[1:])
	if id == "" {
		return nil, r.parseErrorf("missing sequence identifier")
	}
	rec := &Record{ID: id, Desc: desc, Seq: make([]byte, 0, 256)}
	for {
		line, err := r.readLine()
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return nil, err
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			r.pushBack(line)
			return rec, nil
		}
		rec.Seq = append(rec.Seq, line...)
	}
}

func (r *Reader) nextFastq() (*Record, error) {
	header, err := r.nonBlankLine()
	if err != nil {
		return nil, err
	}
	if header[0] != '@' {
		return nil, r.parseErrorf("malformed header %q (expected '@')", clip(header))
	}
	id, desc := splitHeader(header[1:])
	if id == "" {
		return nil, r.parseErrorf("missing sequence identifier")
	}

	seq, err := r.readLine()
	if err != nil {
		return nil, r.truncated(err, "sequence line")
	}
	seq = bytes.TrimSpace(seq)

	plus, err := r.readLine()
	if err != nil {
		return nil, r.truncated(err, "'+' separator line")
	}
	plus = bytes.TrimSpace(plus)
	if len(plus) == 0 || plus[0] != '+' {
		return nil, r.parseErrorf("malformed separator %q (expected '+')", clip(plus))
	}

	qual, err := r.readLine()
	if err != nil {
		return nil, r.truncated(err, "quality line")
	}
	qual = bytes.TrimSpace(qual)
	if len(qual) != len(seq) {
		return nil, r.parseErrorf("quality length %d does not match sequence length %d", len(qual), len(seq))
	}

	return &Record{
		ID:   id,
		Desc: desc,
		Seq:  append([]byte(nil), seq...),
		Qual: append([]byte(nil), qual...),
		Plus: string(plus[1:]),
	}, nil
}

func (r *Reader) truncated(err error, want string) error {
	if err == io.EOF {
		return r.parseErrorf("truncated record: missing %s", want)
	}
	return err
}

// nonBlankLine returns the next line with content, or io.EOF.
func (r *Reader) nonBlankLine() ([]byte, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			return line, nil
		}
	}
}

// readLine returns one line without its terminator (CRLF tolerated).
// A final line without a newline is returned before io.EOF.
func (r *Reader) readLine() ([]byte, error) {
	if r.held {
		r.held = false
		r.line = r.holdNum
		return r.hold, nil
	}
	line, err := r.r.ReadBytes('\n')
	if len(line) == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}
	r.line++
	line = bytes.TrimRight(line, "\r\n")
	return line, nil
}

func (r *Reader) pushBack(line []byte) {
	r.hold = line
	r.holdNum = r.line
	r.held = true
}

// splitHeader splits header text (marker already stripped) into ID and
// description at the first whitespace run.
func splitHeader(h []byte) (id, desc string) {
	h = bytes.TrimSpace(h)
	if i := bytes.IndexAny(h, " \t"); i >= 0 {
		return string(h[:i]), string(bytes.TrimSpace(h[i+1:]))
	}
	return string(h), ""
}

func clip(b []byte) string {
	const max = 40
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
