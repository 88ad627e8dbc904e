// internal/cli/stats.go
package cli

import (
	"github.com/spf13/cobra"

	"seqr/internal/statsapp"
)

func newStatsCommand(debug *bool) *cobra.Command {
	var opts statsapp.Options

	cmd := &cobra.Command{
		Use:     "stats [FILE]",
		Aliases: []string{"st"},
		Short:   "Sequence length statistics for one source",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				opts.File = args[0]
			}
			l := logger(cmd, *debug)
			if err := statsapp.Run(cmd.Context(), opts, cmd.OutOrStdout(), l); err != nil {
				logError(l, err)
				return runErr(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.TopN, "top-n", "t", 100, "report the length reached by the top N records")
	return cmd
}
