package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vis/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch shader sources without a window and log every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{Overrides: c.overrides(cmd)})
		},
	}
	addWatchFlags(cmd)
	return cmd
}
