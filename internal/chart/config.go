package chart

import (
	"fmt"
	"math"

	"simple-charts/internal/infra/fs"
)

// Type selects the drawing branch.
type Type string

const (
	TypeLine Type = "line"
	TypeBar  Type = "bar"
)

// Config is a chart definition: type, labeled data and options.
type Config struct {
	Type    Type                   `json:"type" yaml:"type"`
	Data    Data                   `json:"data" yaml:"data"`
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty"`
	// ShowTitle forces the title on or off. When nil, bar charts draw it and
	// line charts draw it only if Options carries "scales".
	ShowTitle *bool `json:"showTitle,omitempty" yaml:"showTitle,omitempty"`
}

// Data holds the category labels and the series. Only the first dataset
// is rendered.
type Data struct {
	Labels   []string  `json:"labels" yaml:"labels"`
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
}

// Dataset is one numeric series plus its styling.
type Dataset struct {
	Label           string    `json:"label,omitempty" yaml:"label,omitempty"`
	Data            []float64 `json:"data" yaml:"data"`
	BorderColor     string    `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Fill            bool      `json:"fill,omitempty" yaml:"fill,omitempty"`
}

// LoadConfig reads a chart definition from a .json, .yaml or .yml file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := fs.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load chart definition: %w", err)
	}
	return cfg, nil
}

func (c Config) chartType() Type {
	if c.Type == "" {
		return TypeLine
	}
	return c.Type
}

// primary returns the rendered dataset, or nil when there is none.
func (c Config) primary() *Dataset {
	if len(c.Data.Datasets) == 0 {
		return nil
	}
	return &c.Data.Datasets[0]
}

// titleEnabled resolves the title flag for the chart type.
func (c Config) titleEnabled() bool {
	if c.ShowTitle != nil {
		return *c.ShowTitle
	}
	switch c.chartType() {
	case TypeBar:
		return true
	case TypeLine:
		return truthy(c.Options["scales"])
	}
	return false
}

// truthy reports whether an option value counts as set: null, false, zero
// and the empty string do not.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	}
	return true
}
