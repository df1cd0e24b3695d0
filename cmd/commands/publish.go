package commands

// Command to render a chart and send it to the configured Telegram chat
// Requires TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID
// Cancels in-flight sends on SIGINT/SIGTERM

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"simple-charts/internal/features/render"
	"simple-charts/internal/publish"

	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Render a chart and publish it to Telegram",
	Long:  `Render a chart definition onto a configured surface and send the PNG to the configured Telegram chat.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().String("chart", "", "chart definition file (.json, .yaml)")
	publishCmd.Flags().String("target", "", "surface id to draw on")
	publishCmd.Flags().String("out", "", "output PNG path (default from surface config)")
	publishCmd.Flags().String("caption", "", "photo caption (HTML)")
	publishCmd.MarkFlagRequired("chart")
	publishCmd.MarkFlagRequired("target")
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateTelegram(); err != nil {
		return err
	}

	chartPath, _ := cmd.Flags().GetString("chart")
	target, _ := cmd.Flags().GetString("target")
	out, _ := cmd.Flags().GetString("out")
	caption, _ := cmd.Flags().GetString("caption")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	path, err := render.Render(cfg, chartPath, target, out)
	if err != nil {
		return err
	}

	bot, err := publish.NewBot(cfg.Telegram)
	if err != nil {
		return err
	}

	messageID, err := publish.New(bot, cfg.Telegram).PublishPhoto(ctx, path, caption)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s sent as message %d\n", path, messageID)
	return nil
}
