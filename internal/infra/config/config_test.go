package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "app:\n  output_dir: out\n"), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Render.Padding != 50 || cfg.Render.FallbackHeight != 300 || cfg.Render.GridIntervals != 5 {
		t.Errorf("render defaults = %+v", cfg.Render)
	}
	if cfg.Render.BorderColor != "#3498db" {
		t.Errorf("border default = %q", cfg.Render.BorderColor)
	}
	if cfg.App.OutputDir != "out" {
		t.Errorf("output_dir = %q, want value from file", cfg.App.OutputDir)
	}
	if cfg.Telegram.MaxRetries != 3 || cfg.Telegram.Burst != 1 {
		t.Errorf("telegram defaults = %+v", cfg.Telegram)
	}
}

func TestLoadConfigSurfaces(t *testing.T) {
	path := writeConfig(t, `
surfaces:
  - id: salesChart
    width: 640
    height: 320
    output: charts/sales.png
  - id: unmeasured
    width: 400
`)
	cfg, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Surfaces) != 2 {
		t.Fatalf("surfaces = %+v", cfg.Surfaces)
	}
	want := SurfaceConfig{ID: "salesChart", Width: 640, Height: 320, Output: "charts/sales.png"}
	if cfg.Surfaces[0] != want {
		t.Errorf("surface[0] = %+v, want %+v", cfg.Surfaces[0], want)
	}
	if cfg.Surfaces[1].Height != 0 {
		t.Errorf("missing height should stay 0, got %v", cfg.Surfaces[1].Height)
	}
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CHART_PADDING", "20")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("CHARTS_APP_LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output-dir", "ignored-default", "")
	flags.String("background", "", "")
	if err := flags.Parse([]string{"--background", "white"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := LoadConfig(writeConfig(t, "render:\n  padding: 30\n  background: black\n"), flags)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Render.Padding != 20 {
		t.Errorf("padding = %v, env should override file", cfg.Render.Padding)
	}
	if cfg.Render.Background != "white" {
		t.Errorf("background = %q, flag should override file", cfg.Render.Background)
	}
	if cfg.App.OutputDir != "etc/charts" {
		t.Errorf("output_dir = %q, unset flag must not override default", cfg.App.OutputDir)
	}
	if cfg.Telegram.ChatID != -100123 {
		t.Errorf("chat_id = %d", cfg.Telegram.ChatID)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("log_level = %q", cfg.App.LogLevel)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing id", "surfaces:\n  - width: 10\n", "id is required"},
		{"duplicate id", "surfaces:\n  - {id: a, width: 10}\n  - {id: a, width: 20}\n", "duplicate id"},
		{"zero width", "surfaces:\n  - {id: a, width: 0}\n", "width must be positive"},
		{"negative padding", "render:\n  padding: -1\n", "padding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidateTelegram(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidateTelegram(); err == nil {
		t.Error("expected error without token")
	}
	cfg.Telegram.BotToken = "token"
	if err := cfg.ValidateTelegram(); err == nil {
		t.Error("expected error without chat id")
	}
	cfg.Telegram.ChatID = 42
	if err := cfg.ValidateTelegram(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
