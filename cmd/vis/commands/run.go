package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vis/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the viewer and reload shaders as they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{Overrides: c.overrides(cmd)})
		},
	}
	addWatchFlags(cmd)
	cmd.Flags().Duration("frame-budget", 0, "Minimum duration of a frame, 0 to rely on vsync only")
	return cmd
}
