package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/build"
	"go.trai.ch/cbuild/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cbuild version and the default target system",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"cbuild version %s (commit: %s, date: %s)\ndefault system: %s\n",
				build.Version, build.Commit, build.Date, domain.CurrentSystem())
		},
	}
}
