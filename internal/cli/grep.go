// internal/cli/grep.go
package cli

import (
	"github.com/spf13/cobra"

	"seqr/internal/cliutil"
	"seqr/internal/grepapp"
)

func newGrepCommand(debug *bool) *cobra.Command {
	var opts grepapp.Options

	cmd := &cobra.Command{
		Use:     "grep PATTERN [FILE...]",
		Aliases: []string{"gr"},
		Short:   "Search for records matching a pattern",
		Long: `Search every input source for records whose selected part matches
PATTERN (a regular expression) and write the matches, in input order, to
one output stream. FILE may be '-' for standard input, which is also the
default when no FILE is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts.Pattern = args[0]
			files, err := cliutil.ExpandPositionals(args[1:])
			if err != nil {
				return runErr(err)
			}
			opts.Files = files
			l := logger(cmd, *debug)
			if err := grepapp.Run(cmd.Context(), opts, cmd.OutOrStdout(), l); err != nil {
				logError(l, err)
				return runErr(err)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.Part, "part", "p", "head", "record part to search: head | seq | qual")
	fl.StringVarP(&opts.OutFormat, "outfmt", "f", "", "output format: fasta | fastq (default: source format)")
	fl.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	fl.BoolVarP(&opts.Invert, "invert-match", "v", false, "select non-matching records")
	fl.BoolVarP(&opts.Insensitive, "insensitive", "i", false, "case-insensitive search")
	return cmd
}
