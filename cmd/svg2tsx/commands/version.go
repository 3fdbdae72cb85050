package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/svg2tsx/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of svg2tsx",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			if full, _ := cmd.Flags().GetBool("full"); full {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "svg2tsx %s\n", version.String())
		},
	}
	cmd.Flags().Bool("full", false, "include commit, build date and platform")
	return cmd
}
