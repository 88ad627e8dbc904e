// internal/matcher/matcher.go
package matcher

import (
	"fmt"
	"regexp"

	"seqr/internal/fastx"
)

// Part selects which record field a Matcher inspects.
type Part string

const (
	PartHead Part = "head"
	PartSeq  Part = "seq"
	PartQual Part = "qual"
)

// ParsePart validates a part name from the CLI.
func ParsePart(s string) (Part, error) {
	switch Part(s) {
	case PartHead, PartSeq, PartQual:
		return Part(s), nil
	}
	return "", fmt.Errorf("invalid part %q (want head, seq or qual)", s)
}

// Matcher is a compiled pattern plus match policy. Immutable after New.
//
// Policies: the empty pattern matches every value (ordinary substring
// semantics), and a qual match against a FASTA-sourced record is never
// found, since such records have no quality data.
type Matcher struct {
	re     *regexp.Regexp
	invert bool
}

// New compiles pattern as a regular expression, with case folding baked
// into the pattern when insensitive is set.
func New(pattern string, insensitive, invert bool) (*Matcher, error) {
	if insensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	return &Matcher{re: re, invert: invert}, nil
}

// Match reports whether rec's selected part matches, XORed with the
// invert policy.
func (m *Matcher) Match(rec *fastx.Record, part Part) bool {
	found := false
	switch part {
	case PartSeq:
		found = m.re.Match(rec.Seq)
	case PartQual:
		// FASTA records have no quality; never found.
		if !rec.IsFasta() {
			found = m.re.Match(rec.Qual)
		}
	default:
		found = m.re.MatchString(rec.Head())
	}
	return found != m.invert
}
