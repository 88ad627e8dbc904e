// internal/cli/count.go
package cli

import (
	"github.com/spf13/cobra"

	"seqr/internal/cliutil"
	"seqr/internal/countapp"
)

func newCountCommand(debug *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "count [FILE...]",
		Aliases: []string{"co"},
		Short:   "Count records per source",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return runErr(err)
			}
			l := logger(cmd, *debug)
			opts := countapp.Options{Files: files}
			if err := countapp.Run(cmd.Context(), opts, cmd.OutOrStdout(), l); err != nil {
				logError(l, err)
				return runErr(err)
			}
			return nil
		},
	}
	return cmd
}
