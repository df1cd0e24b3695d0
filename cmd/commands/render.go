package commands

// Command to render a chart definition onto a configured surface
// Saves the result as PNG, or prints the drawing calls with --dry-run

import (
	"encoding/json"
	"fmt"

	"simple-charts/internal/features/render"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart definition to PNG",
	Long: `Render a line or bar chart definition (JSON or YAML) onto one of the configured
surfaces and save it as a PNG file.`,
	Example: `  simple-charts render --chart etc/examples/sales.yaml --target salesChart
  simple-charts render --chart sales.json --target salesChart --dry-run`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("chart", "", "chart definition file (.json, .yaml)")
	renderCmd.Flags().String("target", "", "surface id to draw on")
	renderCmd.Flags().String("out", "", "output PNG path (default from surface config)")
	renderCmd.Flags().Bool("dry-run", false, "print drawing calls as JSON instead of writing a PNG")
	renderCmd.MarkFlagRequired("chart")
	renderCmd.MarkFlagRequired("target")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chartPath, _ := cmd.Flags().GetString("chart")
	target, _ := cmd.Flags().GetString("target")
	out, _ := cmd.Flags().GetString("out")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		ops, err := render.DryRun(cfg, chartPath, target)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	}

	path, err := render.Render(cfg, chartPath, target, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
