// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqr/internal/app"
)

const dfam = `>Alu1 primate SINE
GGCCGGGCGCGGTGGCTCACG
>Alu2 another copy
ggccgggcgcggtgg
>LINE1 long element
AAAATTTTCCCCGGGG
`

func write(t *testing.T, fn, data string) string {
	t.Helper()
	fn = filepath.Join(t.TempDir(), fn)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestGrepHead(t *testing.T) {
	fa := write(t, "in.fa", ">r1 desc\nACGT\n>r2\nGGGG\n")
	code, out, errS := run(t, "grep", "r1", fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if out != ">r1 desc\nACGT\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGrepSeqToFastq(t *testing.T) {
	fa := write(t, "in.fa", ">r1 desc\nACGT\n>r2\nGGGG\n")
	code, out, _ := run(t, "grep", "-p", "seq", "-f", "fastq", "GGG", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "@r2\nGGGG\n+\n----\n" {
		t.Fatalf("fastq conversion wrong: %q", out)
	}
}

func TestGrepEmptyPatternEmitsEverythingUnchanged(t *testing.T) {
	in := ">r1 desc\nACGT\n>r2\nGGGG\n"
	fa := write(t, "in.fa", in)
	code, out, _ := run(t, "grep", "", fa)
	if code != 0 || out != in {
		t.Fatalf("exit %d output %q", code, out)
	}
}

func TestGrepInsensitive(t *testing.T) {
	fa := write(t, "dfam.fa", dfam)
	_, sensitive, _ := run(t, "grep", "alu", fa)
	if strings.Count(sensitive, ">") != 0 {
		t.Fatalf("case-sensitive run matched: %q", sensitive)
	}
	code, out, _ := run(t, "grep", "-i", "alu", fa)
	if code != 0 || strings.Count(out, ">") != 2 {
		t.Fatalf("insensitive run: exit %d, output %q", code, out)
	}
}

func TestGrepInvert(t *testing.T) {
	fa := write(t, "dfam.fa", dfam)
	code, out, _ := run(t, "grep", "-v", "Alu", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.Count(out, ">") != 1 || !strings.Contains(out, ">LINE1") {
		t.Fatalf("invert wrong: %q", out)
	}
}

func TestGrepQualPartOnFasta(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nACGT\n")
	if _, out, _ := run(t, "grep", "-p", "qual", "", fa); out != "" {
		t.Fatalf("qual search on fasta matched: %q", out)
	}
	// Inverted, the same search selects everything.
	if _, out, _ := run(t, "grep", "-p", "qual", "-v", "", fa); out != ">r1\nACGT\n" {
		t.Fatalf("inverted qual search: %q", out)
	}
}

func TestGrepMultiSourceConcatenation(t *testing.T) {
	a := write(t, "a.fa", ">a1 x\nAC\n>a2\nGT\n")
	b := write(t, "b.fa", ">b1 x\nTT\n")
	code, out, _ := run(t, "grep", "x", a, b)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != ">a1 x\nAC\n>b1 x\nTT\n" {
		t.Fatalf("concatenation order wrong: %q", out)
	}
}

func TestGrepOutputFile(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nACGT\n")
	outPath := filepath.Join(t.TempDir(), "out.fa")
	code, out, _ := run(t, "grep", "-o", outPath, "r1", fa)
	if code != 0 || out != "" {
		t.Fatalf("exit %d stdout %q", code, out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != ">r1\nACGT\n" {
		t.Fatalf("file output wrong: %q", data)
	}
}

func TestGrepFastqSourcePreserved(t *testing.T) {
	fq := write(t, "in.fq", "@r1 d\nACGT\n+\nII!!\n@r2\nGG\n+\n!!\n")
	code, out, _ := run(t, "grep", "r1", fq)
	if code != 0 || out != "@r1 d\nACGT\n+\nII!!\n" {
		t.Fatalf("exit %d output %q", code, out)
	}
}

func TestGrepDiesBadPattern(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nACGT\n")
	code, _, errS := run(t, "grep", "*foo", fa)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errS, `invalid pattern "*foo"`) {
		t.Fatalf("stderr: %q", errS)
	}
}

func TestGrepDiesBadFile(t *testing.T) {
	code, _, errS := run(t, "grep", "foo", filepath.Join(t.TempDir(), "nope.fa"))
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errS, "nope.fa") {
		t.Fatalf("stderr does not name the source: %q", errS)
	}
}

func TestGrepDiesBadOutfmt(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nACGT\n")
	code, _, errS := run(t, "grep", "-f", "fastp", "r1", fa)
	if code != 1 || !strings.Contains(errS, "fastp") {
		t.Fatalf("exit %d stderr %q", code, errS)
	}
}

func TestGrepAbortsOnParseError(t *testing.T) {
	bad := write(t, "bad.fq", "@r1\nACGT\n+\nII\n")
	code, _, errS := run(t, "grep", "r1", bad)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errS, "bad.fq:4") {
		t.Fatalf("stderr lacks source:line context: %q", errS)
	}
}

func TestCountMultipleFiles(t *testing.T) {
	a := write(t, "a.fa", ">a1\nAC\n>a2\nGT\n")
	b := write(t, "b.fq", "@b1\nAC\n+\nII\n")
	code, out, _ := run(t, "count", a, b)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := fmt.Sprintf("%10d %s\n%10d %s\n%10d total\n", 2, a, 1, b, 3)
	if out != want {
		t.Fatalf("count output:\nwant %q\ngot  %q", want, out)
	}
}

func TestCountSingleFileNoTotal(t *testing.T) {
	a := write(t, "a.fa", ">a1\nAC\n")
	code, out, _ := run(t, "count", a)
	if code != 0 || strings.Contains(out, "total") {
		t.Fatalf("exit %d output %q", code, out)
	}
}

func TestCountStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, ">s1\nAC\n>s2\nGT\n")
		_ = w.Close()
	}()

	code, out, _ := run(t, "count")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != fmt.Sprintf("%10d\n", 2) {
		t.Fatalf("stdin count: %q", out)
	}
}

func TestCountEmptyFile(t *testing.T) {
	empty := write(t, "empty.fa", "")
	code, out, _ := run(t, "count", empty)
	if code != 0 {
		t.Fatalf("an empty source is a valid empty stream, got exit %d", code)
	}
	if !strings.Contains(out, fmt.Sprintf("%10d", 0)) {
		t.Fatalf("count output: %q", out)
	}
}

func TestHeaders(t *testing.T) {
	fa := write(t, "dfam.fa", dfam)
	code, out, _ := run(t, "headers", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "Alu1 primate SINE\nAlu2 another copy\nLINE1 long element\n" {
		t.Fatalf("headers: %q", out)
	}

	_, idOut, _ := run(t, "headers", "--id", fa)
	if idOut != "Alu1\nAlu2\nLINE1\n" {
		t.Fatalf("id-only headers: %q", idOut)
	}

	_, descOut, _ := run(t, "headers", "--desc", fa)
	if descOut != "primate SINE\nanother copy\nlong element\n" {
		t.Fatalf("desc-only headers: %q", descOut)
	}
}

func TestStats(t *testing.T) {
	fa := write(t, "in.fa", ">r1 d\nACGT\n>r2\nAC\n>r3\nGGGGGG\n")
	code, out, _ := run(t, "stats", "--top-n", "2", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "= r1 d\t4\n= r2\t2\n= r3\t6\n" +
		"Num seqs: 3\nSmallest: 2\nLargest: 6\nAverage: 4\nTop 2: 4\n"
	if out != want {
		t.Fatalf("stats output:\nwant %q\ngot  %q", want, out)
	}
}

func TestStatsEmptyInputFails(t *testing.T) {
	empty := write(t, "empty.fa", "")
	code, _, errS := run(t, "stats", empty)
	if code != 1 || !strings.Contains(errS, "no sequences") {
		t.Fatalf("exit %d stderr %q", code, errS)
	}
}

func TestFilterLengthAndNumber(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nAC\n>r2\nACGT\n>r3\nACGTGT\n>r4\nACG\n")
	code, out, _ := run(t, "filter", "--min-len", "3", "--max-len", "5", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != ">r2\nACGT\n>r4\nACG\n" {
		t.Fatalf("length filter: %q", out)
	}

	_, capped, _ := run(t, "filter", "--min-len", "3", "-n", "1", fa)
	if capped != ">r2\nACGT\n" {
		t.Fatalf("number cap: %q", capped)
	}
}

func TestFilterIDs(t *testing.T) {
	fa := write(t, "in.fa", ">r1 keep\nAC\n>r2\nGT\n>r3\nTT\n")
	_, out, _ := run(t, "filter", "--ids", "r3", fa)
	if out != ">r3\nTT\n" {
		t.Fatalf("id filter: %q", out)
	}
	// Descriptions count as well.
	_, byDesc, _ := run(t, "filter", "--ids", "keep", fa)
	if byDesc != ">r1 keep\nAC\n" {
		t.Fatalf("desc filter: %q", byDesc)
	}
}

func TestFilterIDsFromFile(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nAC\n>r2\nGT\n")
	ids := write(t, "ids.txt", "r2\n\n")
	_, out, _ := run(t, "filter", "-f", ids, fa)
	if out != ">r2\nGT\n" {
		t.Fatalf("ids-from-file: %q", out)
	}
}

func TestFilterKeepsFastqFormat(t *testing.T) {
	fq := write(t, "in.fq", "@r1\nACGT\n+\nIIII\n@r2\nAC\n+\n!!\n")
	_, out, _ := run(t, "filter", "--min-len", "3", fq)
	if out != "@r1\nACGT\n+\nIIII\n" {
		t.Fatalf("fastq filter: %q", out)
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, _, errS := run(t)
	if code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
	if !strings.Contains(errS, "Usage") {
		t.Fatalf("stderr lacks usage: %q", errS)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	code, _, _ := run(t, "count", "--bogus")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestSubcommandAliases(t *testing.T) {
	fa := write(t, "in.fa", ">r1\nAC\n")
	if code, _, _ := run(t, "gr", "r1", fa); code != 0 {
		t.Fatalf("grep alias failed")
	}
	if code, _, _ := run(t, "co", fa); code != 0 {
		t.Fatalf("count alias failed")
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "seqr version ") {
		t.Fatalf("exit %d output %q", code, out)
	}
}
