// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"seqr/internal/cmdutil"
	"seqr/internal/fastx"
	"seqr/internal/pipeline"
)

// Options are the typed stats parameters handed over by the CLI layer.
type Options struct {
	File string
	TopN int
}

// Run prints one "= HEAD\tLEN" line per record, then summary statistics
// over the whole source. A source with zero records is an error here:
// there is nothing to summarize.
func Run(ctx context.Context, opts Options, stdout io.Writer, logger *log.Logger) error {
	file := opts.File
	if file == "" {
		file = "-"
	}
	logger.Debug("collecting stats", "path", file)

	outw := bufio.NewWriter(stdout)

	numByLen := make(map[int]int)
	var avg, counter int64
	err := pipeline.ForEachRecordInSource(ctx, file, func(rec *fastx.Record) error {
		n := len(rec.Seq)
		fmt.Fprintf(outw, "= %s\t%d\n", rec.Head(), n)

		// Running integer average, cf. https://en.wikipedia.org/wiki/Moving_average
		counter++
		avg += (int64(n) - avg) / counter

		numByLen[n]++
		return nil
	})
	if err != nil {
		return err
	}

	numSeqs := 0
	for _, c := range numByLen {
		numSeqs += c
	}
	if numSeqs == 0 {
		return errors.New("no sequences found")
	}

	lengths := make([]int, 0, len(numByLen))
	for l := range numByLen {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	fmt.Fprintf(outw, "Num seqs: %d\n", numSeqs)
	fmt.Fprintf(outw, "Smallest: %d\n", lengths[len(lengths)-1])
	fmt.Fprintf(outw, "Largest: %d\n", lengths[0])
	fmt.Fprintf(outw, "Average: %d\n", avg)

	// Walk lengths in descending order until the cumulative record count
	// reaches TopN.
	topN := 0
	for _, l := range lengths {
		topN += numByLen[l]
		if topN >= opts.TopN {
			fmt.Fprintf(outw, "Top %d: %d\n", opts.TopN, l)
			break
		}
	}

	if err := outw.Flush(); err != nil && !cmdutil.IsBrokenPipe(err) {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
