package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vis/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter vis.yaml and default shaders",
		Long:  "Write a starter vis.yaml and default shaders into dir, or the working directory. Existing files are left untouched.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			}
			return c.app.Init(cmd.Context(), app.InitOptions{Dir: dir})
		},
	}
}
