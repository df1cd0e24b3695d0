package commands

// Command to list the configured surfaces

import (
	"fmt"
	"text/tabwriter"

	"simple-charts/internal/features/render"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List configured chart surfaces",
	RunE:  runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	targets := render.NewTargets(cfg)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWIDTH\tHEIGHT\tOUTPUT")
	for _, id := range targets.Registry.IDs() {
		sc, _ := targets.Surface(id)
		height := fmt.Sprintf("%g", sc.Height)
		if sc.Height == 0 {
			height = fmt.Sprintf("auto (%g)", cfg.Render.FallbackHeight)
		}
		fmt.Fprintf(w, "%s\t%g\t%s\t%s\n", id, sc.Width, height, render.OutputPath(cfg, sc, ""))
	}
	return w.Flush()
}
