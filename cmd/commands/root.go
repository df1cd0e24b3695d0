package commands

// Root command for Cobra CLI
// Defines the main command structure of the application
// Registers all subcommands (render, publish, targets)
// Persistent flags override config file and environment values

import (
	"fmt"

	"simple-charts/internal/infra/config"
	logging "simple-charts/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "simple-charts",
	Short: "Simple Charts - render line and bar charts to PNG and publish them",
	Long: `Simple Charts renders line and bar chart definitions onto named surfaces
and saves them as PNG images. Rendered charts can be published to a Telegram chat.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml)")
	flags.String("output-dir", "", "directory for rendered charts")
	flags.String("log-dir", "", "directory for app.log")
	flags.String("log-level", "", "file log level (debug, info, warn, error)")
	flags.String("font", "", `TrueType font file, or "system"`)
	flags.String("background", "", "chart background color (empty = transparent)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(targetsCmd)
}

// loadConfig reads configuration for cmd and enables file logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		logging.LogError("Failed to load config", zap.Error(err))
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Setup(cfg.App.LogDir, cfg.App.LogLevel); err != nil {
		logging.LogWarn("File logging disabled", zap.Error(err))
	}
	return cfg, nil
}
