package chart

// Chart renderer
// Construction resolves the target surface, sizes it and draws once
// Line and bar charts share the frame (axes, grid, Y labels) computed by computeLayout
// A missing target is logged and leaves every surface untouched

import (
	"errors"
	"fmt"
	"image/color"

	logging "simple-charts/internal/infra/log"
	"simple-charts/internal/surface"

	"go.uber.org/zap"
)

var ErrTargetNotFound = errors.New("chart target not found")

// Renderer is the result of one draw pass. It is not redrawn after New.
type Renderer struct {
	targetID string
	config   Config
	style    Style
	surface  surface.Surface
	err      error
}

type Option func(*Renderer)

// WithStyle replaces the default style.
func WithStyle(st Style) Option {
	return func(r *Renderer) {
		r.style = st
	}
}

// New resolves targetID and renders cfg onto it. Failures are logged, never
// returned; Err reports whether the target could be resolved.
func New(resolver surface.Resolver, targetID string, cfg Config, opts ...Option) *Renderer {
	r := &Renderer{
		targetID: targetID,
		config:   cfg,
		style:    DefaultStyle(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var (
		s  surface.Surface
		ok bool
	)
	if resolver != nil {
		s, ok = resolver.Resolve(targetID)
	}
	if !ok {
		r.err = fmt.Errorf("%w: %s", ErrTargetNotFound, targetID)
		logging.LogError(fmt.Sprintf("Chart target %q not found", targetID), zap.String("target", targetID))
		return r
	}

	r.surface = s
	r.draw()
	return r
}

// Err returns ErrTargetNotFound (wrapped) when nothing was drawn.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) draw() {
	width, height := r.size()
	r.surface.Resize(int(width), int(height))
	r.surface.Clear()
	if r.style.Background != nil {
		r.surface.SetColor(r.style.Background)
		r.surface.DrawRectangle(0, 0, width, height)
		r.surface.Fill()
	}

	chartType := r.config.chartType()
	if chartType != TypeLine && chartType != TypeBar {
		logging.LogDebug("Unsupported chart type, nothing drawn",
			zap.String("target", r.targetID),
			zap.String("type", string(chartType)))
		return
	}

	ds := r.config.primary()
	if ds == nil || len(ds.Data) == 0 {
		drawNoData(r.surface, width, height, r.style)
		logging.LogInfo("Chart has no data, placeholder drawn", zap.String("target", r.targetID))
		return
	}

	l := computeLayout(width, height, ds.Data, r.style)
	drawFrame(r.surface, l, r.style)

	border := r.datasetColor(ds.BorderColor, r.style.BorderColor, "borderColor")
	switch chartType {
	case TypeLine:
		fill := r.datasetColor(ds.BackgroundColor, r.style.LineFillColor, "backgroundColor")
		drawLineChart(r.surface, l, r.style, r.config.Data.Labels, ds, border, fill)
	case TypeBar:
		fill := r.datasetColor(ds.BackgroundColor, r.style.BarFillColor, "backgroundColor")
		drawBarChart(r.surface, l, r.style, r.config.Data.Labels, ds, border, fill)
	}

	if r.config.titleEnabled() {
		drawTitle(r.surface, l, r.style, ds.Label)
	}

	logging.LogInfo("Chart rendered",
		zap.String("target", r.targetID),
		zap.String("type", string(chartType)),
		zap.Int("points", len(ds.Data)),
		zap.Float64("maxValue", l.MaxValue))
}

// size returns the pixel size taken from the target's on-screen bounds,
// substituting the fallback height when the measured height is zero.
func (r *Renderer) size() (float64, float64) {
	w, h := r.surface.Bounds()
	if h == 0 {
		h = r.style.FallbackHeight
	}
	return float64(int(w)), float64(int(h))
}

func (r *Renderer) datasetColor(value string, fallback color.Color, field string) color.Color {
	if value == "" {
		return fallback
	}
	c, err := surface.ParseColor(value)
	if err != nil {
		logging.LogWarn("Invalid dataset color, using default",
			zap.String("target", r.targetID),
			zap.String("field", field),
			zap.String("value", value),
			zap.Error(err))
		return fallback
	}
	return c
}
