// internal/cli/filter.go
package cli

import (
	"github.com/spf13/cobra"

	"seqr/internal/filterapp"
)

func newFilterCommand(debug *bool) *cobra.Command {
	var opts filterapp.Options

	cmd := &cobra.Command{
		Use:     "filter [FILE]",
		Aliases: []string{"fi"},
		Short:   "Keep records by length bounds, ID allowlist or count cap",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				opts.File = args[0]
			}
			l := logger(cmd, *debug)
			if err := filterapp.Run(cmd.Context(), opts, cmd.OutOrStdout(), l); err != nil {
				logError(l, err)
				return runErr(err)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&opts.MinLen, "min-len", "m", 0, "minimum sequence length (0 = no bound)")
	fl.IntVarP(&opts.MaxLen, "max-len", "x", 0, "maximum sequence length (0 = no bound)")
	fl.IntVarP(&opts.Number, "number", "n", 0, "maximum number of records to keep (0 = unlimited)")
	fl.StringSliceVarP(&opts.IDs, "ids", "s", nil, "keep records whose ID or description is listed (repeatable)")
	fl.StringVarP(&opts.IDsFromFile, "ids-from-file", "f", "", "read the ID allowlist from a file")
	fl.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
