package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Render   RenderConfig    `mapstructure:"render"`
	Surfaces []SurfaceConfig `mapstructure:"surfaces"`
	App      AppConfig       `mapstructure:"app"`
	Telegram TelegramConfig  `mapstructure:"telegram"`
}

// RenderConfig overrides the chart style defaults.
type RenderConfig struct {
	Padding        float64 `mapstructure:"padding"`
	FallbackHeight float64 `mapstructure:"fallback_height"`
	GridIntervals  int     `mapstructure:"grid_intervals"`
	MaxXLabels     int     `mapstructure:"max_x_labels"`
	Background     string  `mapstructure:"background"` // empty = transparent
	BorderColor    string  `mapstructure:"border_color"`
	LineFillColor  string  `mapstructure:"line_fill_color"`
	BarFillColor   string  `mapstructure:"bar_fill_color"`
	FontPath       string  `mapstructure:"font_path"` // TTF file, "system", or empty for the embedded font
}

// SurfaceConfig describes one render target. Height 0 means "not measured"
// and triggers the fallback height.
type SurfaceConfig struct {
	ID     string  `mapstructure:"id"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Output string  `mapstructure:"output"` // PNG path, defaults to <output_dir>/<id>.png
}

type AppConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	LogDir    string `mapstructure:"log_dir"`
	LogLevel  string `mapstructure:"log_level"`
}

// TelegramConfig is used by the publish command only.
type TelegramConfig struct {
	BotToken   string  `mapstructure:"bot_token"`
	ChatID     int64   `mapstructure:"chat_id"`
	RateLimit  float64 `mapstructure:"rate_limit"` // messages per second
	Burst      int     `mapstructure:"burst"`
	MaxRetries int     `mapstructure:"max_retries"`
}

// LoadConfig builds the configuration in layers:
// 1. defaults
// 2. config file (configPath, or ./config.yaml when empty)
// 3. .env file
// 4. environment variables
// 5. flags, when flags is not nil
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	// .env values become environment variables for the env layer
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config.yaml: %w", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("CHARTS")
	v.AutomaticEnv()
	setupEnvAliases(v)

	if flags != nil {
		bindFlags(v, flags)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	// Short names without the CHARTS_ prefix
	v.BindEnv("render.padding", "CHARTS_RENDER_PADDING", "CHART_PADDING")
	v.BindEnv("render.fallback_height", "CHARTS_RENDER_FALLBACK_HEIGHT", "CHART_FALLBACK_HEIGHT")
	v.BindEnv("render.background", "CHARTS_RENDER_BACKGROUND", "CHART_BACKGROUND")
	v.BindEnv("render.font_path", "CHARTS_RENDER_FONT_PATH", "CHART_FONT_PATH")

	v.BindEnv("app.output_dir", "CHARTS_APP_OUTPUT_DIR", "CHART_OUTPUT_DIR")
	v.BindEnv("app.log_dir", "CHARTS_APP_LOG_DIR", "LOG_DIR")
	v.BindEnv("app.log_level", "CHARTS_APP_LOG_LEVEL", "LOG_LEVEL")

	v.BindEnv("telegram.bot_token", "CHARTS_TELEGRAM_BOT_TOKEN", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "CHARTS_TELEGRAM_CHAT_ID", "TELEGRAM_CHAT_ID")
}

// setDefaults mirrors chart.DefaultStyle for the values exposed here.
func setDefaults(v *viper.Viper) {
	// Render
	v.SetDefault("render.padding", 50.0)
	v.SetDefault("render.fallback_height", 300.0)
	v.SetDefault("render.grid_intervals", 5)
	v.SetDefault("render.max_x_labels", 10)
	v.SetDefault("render.background", "")
	v.SetDefault("render.border_color", "#3498db")
	v.SetDefault("render.line_fill_color", "rgba(52, 152, 219, 0.1)")
	v.SetDefault("render.bar_fill_color", "rgba(52, 152, 219, 0.7)")
	v.SetDefault("render.font_path", "")

	// App
	v.SetDefault("app.output_dir", "etc/charts")
	v.SetDefault("app.log_dir", "logs")
	v.SetDefault("app.log_level", "info")

	// Telegram
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("telegram.rate_limit", 1.0) // 1 message per second
	v.SetDefault("telegram.burst", 1)
	v.SetDefault("telegram.max_retries", 3)
}

// bindFlags maps command-line flags onto config keys. Flags that were not
// set on the command line do not override lower layers.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	keys := map[string]string{
		"output-dir": "app.output_dir",
		"log-dir":    "app.log_dir",
		"log-level":  "app.log_level",
		"font":       "render.font_path",
		"background": "render.background",
	}
	for name, key := range keys {
		if f := flags.Lookup(name); f != nil {
			v.BindPFlag(key, f)
		}
	}
}

func validateConfig(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Surfaces))
	for i, s := range cfg.Surfaces {
		if s.ID == "" {
			return fmt.Errorf("surfaces[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("surfaces[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if s.Width <= 0 {
			return fmt.Errorf("surface %q: width must be positive", s.ID)
		}
		if s.Height < 0 {
			return fmt.Errorf("surface %q: height must not be negative", s.ID)
		}
	}
	if cfg.Render.Padding < 0 {
		return fmt.Errorf("render.padding must not be negative")
	}
	return nil
}

// ValidateTelegram checks the settings the publish command needs.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required (env: TELEGRAM_BOT_TOKEN)")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required (env: TELEGRAM_CHAT_ID)")
	}
	return nil
}
