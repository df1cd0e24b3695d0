package render

// Chart rendering feature
// Builds the chart style and the surface registry from configuration
// Renders a chart definition onto a configured target and saves it as PNG
// Dry runs draw onto a recorder and return the drawing calls

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"simple-charts/internal/chart"
	"simple-charts/internal/infra/config"
	logging "simple-charts/internal/infra/log"
	"simple-charts/internal/surface"

	"go.uber.org/zap"
)

// StyleFromConfig applies the configured overrides on top of chart.DefaultStyle.
// Zero values keep the default.
func StyleFromConfig(rc config.RenderConfig) (chart.Style, error) {
	st := chart.DefaultStyle()

	if rc.Padding > 0 {
		st.Padding = rc.Padding
	}
	if rc.FallbackHeight > 0 {
		st.FallbackHeight = rc.FallbackHeight
	}
	if rc.GridIntervals > 0 {
		st.GridIntervals = rc.GridIntervals
	}
	if rc.MaxXLabels > 0 {
		st.MaxXLabels = rc.MaxXLabels
	}

	colors := []struct {
		name  string
		value string
		apply func(c color.Color)
	}{
		{"background", rc.Background, func(c color.Color) { st.Background = c }},
		{"border_color", rc.BorderColor, func(c color.Color) { st.BorderColor = c }},
		{"line_fill_color", rc.LineFillColor, func(c color.Color) { st.LineFillColor = c }},
		{"bar_fill_color", rc.BarFillColor, func(c color.Color) { st.BarFillColor = c }},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := surface.ParseColor(c.value)
		if err != nil {
			return st, fmt.Errorf("render.%s: %w", c.name, err)
		}
		c.apply(parsed)
	}

	return st, nil
}

// Targets holds one canvas per configured surface.
type Targets struct {
	Registry *surface.Registry
	canvases map[string]*surface.Canvas
	configs  map[string]config.SurfaceConfig
}

func NewTargets(cfg *config.Config) *Targets {
	t := &Targets{
		Registry: surface.NewRegistry(),
		canvases: make(map[string]*surface.Canvas, len(cfg.Surfaces)),
		configs:  make(map[string]config.SurfaceConfig, len(cfg.Surfaces)),
	}
	for _, sc := range cfg.Surfaces {
		var opts []surface.CanvasOption
		if cfg.Render.FontPath != "" {
			opts = append(opts, surface.WithFontPath(cfg.Render.FontPath))
		}
		canvas := surface.NewCanvas(sc.Width, sc.Height, opts...)
		t.Registry.Register(sc.ID, canvas)
		t.canvases[sc.ID] = canvas
		t.configs[sc.ID] = sc
	}
	return t
}

func (t *Targets) Canvas(id string) (*surface.Canvas, bool) {
	c, ok := t.canvases[id]
	return c, ok
}

func (t *Targets) Surface(id string) (config.SurfaceConfig, bool) {
	sc, ok := t.configs[id]
	return sc, ok
}

// OutputPath returns out when set, then the surface's own output, then
// <output_dir>/<id>.png.
func OutputPath(cfg *config.Config, sc config.SurfaceConfig, out string) string {
	if out != "" {
		return out
	}
	if sc.Output != "" {
		return sc.Output
	}
	dir := cfg.App.OutputDir
	if dir == "" {
		dir = filepath.Join("etc", "charts")
	}
	return filepath.Join(dir, sc.ID+".png")
}

// Render draws the chart definition at chartPath onto targetID and saves the
// result. It returns the PNG path.
func Render(cfg *config.Config, chartPath, targetID, out string) (string, error) {
	def, err := chart.LoadConfig(chartPath)
	if err != nil {
		return "", err
	}
	style, err := StyleFromConfig(cfg.Render)
	if err != nil {
		return "", err
	}

	targets := NewTargets(cfg)
	r := chart.New(targets.Registry, targetID, def, chart.WithStyle(style))
	if err := r.Err(); err != nil {
		return "", err
	}

	canvas, _ := targets.Canvas(targetID)
	sc, _ := targets.Surface(targetID)
	filename := OutputPath(cfg, sc, out)

	if err := canvas.SavePNG(filename); err != nil {
		return "", err
	}

	fileInfo, err := os.Stat(filename)
	if err != nil {
		return "", fmt.Errorf("failed to stat chart file: %w", err)
	}
	if fileInfo.Size() == 0 {
		os.Remove(filename)
		logging.LogError("Chart file is empty after rendering", zap.String("filename", filename))
		return "", fmt.Errorf("chart file is empty after rendering")
	}

	logging.LogSuccess("Chart saved",
		zap.String("target", targetID),
		zap.String("filename", filename),
		zap.Int64("fileSize", fileInfo.Size()))

	return filename, nil
}

// DryRun draws the chart onto a recorder sized like targetID and returns the
// recorded calls. Nothing is written to disk.
func DryRun(cfg *config.Config, chartPath, targetID string) ([]surface.Op, error) {
	def, err := chart.LoadConfig(chartPath)
	if err != nil {
		return nil, err
	}
	style, err := StyleFromConfig(cfg.Render)
	if err != nil {
		return nil, err
	}

	reg := surface.NewRegistry()
	for _, sc := range cfg.Surfaces {
		if sc.ID == targetID {
			reg.Register(sc.ID, surface.NewRecorder(sc.Width, sc.Height))
		}
	}

	r := chart.New(reg, targetID, def, chart.WithStyle(style))
	if err := r.Err(); err != nil {
		return nil, err
	}

	s, _ := reg.Resolve(targetID)
	return s.(*surface.Recorder).Ops(), nil
}
