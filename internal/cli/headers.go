// internal/cli/headers.go
package cli

import (
	"github.com/spf13/cobra"

	"seqr/internal/cliutil"
	"seqr/internal/headersapp"
)

func newHeadersCommand(debug *bool) *cobra.Command {
	var opts headersapp.Options

	cmd := &cobra.Command{
		Use:     "headers [FILE...]",
		Aliases: []string{"he"},
		Short:   "Print record headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return runErr(err)
			}
			opts.Files = files
			l := logger(cmd, *debug)
			if err := headersapp.Run(cmd.Context(), opts, cmd.OutOrStdout(), l); err != nil {
				logError(l, err)
				return runErr(err)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&opts.IDOnly, "id", "i", false, "print ID only")
	fl.BoolVarP(&opts.DescOnly, "desc", "D", false, "print description only")
	return cmd
}
