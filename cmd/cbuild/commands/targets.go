package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/adapters/config"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/core/domain"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the targets registered by the script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			osName, _ := cmd.Flags().GetString("os")

			sys, err := domain.ParseSystem(osName)
			if err != nil {
				return err
			}

			return c.app.ListTargets(cmd.Context(), app.ListOptions{
				ConfigPath: configPath,
				System:     sys,
			})
		},
	}
	cmd.Flags().StringP("config", "c", config.DefaultFilename, "Path to the cbuild script")
	cmd.Flags().String("os", domain.CurrentSystem().String(), "Operating system the targets are registered for")
	return cmd
}
