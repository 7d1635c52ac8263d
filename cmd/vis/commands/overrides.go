package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vis/internal/app"
)

// addWatchFlags registers the flags shared by run and watch.
func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationP("poll-interval", "p", 0, "Delay between two scans of the shader sources (default from config, 500ms)")
	cmd.Flags().Bool("notify", false, "Scan as soon as the filesystem reports a change")
	cmd.Flags().String("missing-role", "", "What to do with a shader that cannot be read: retain or omit")
}

// overrides collects the flags the user set explicitly.
func (c *CLI) overrides(cmd *cobra.Command) app.Overrides {
	o := app.Overrides{ConfigPath: c.configPath}
	o.PollInterval, _ = cmd.Flags().GetDuration("poll-interval")
	o.Notify, _ = cmd.Flags().GetBool("notify")
	o.MissingRole, _ = cmd.Flags().GetString("missing-role")

	if f := cmd.Flags().Lookup("frame-budget"); f != nil && f.Changed {
		budget, _ := cmd.Flags().GetDuration("frame-budget")
		o.FrameBudget = &budget
	}
	return o
}
