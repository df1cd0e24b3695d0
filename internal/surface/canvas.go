package surface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"simple-charts/internal/infra/fs"

	"github.com/fogleman/gg"
)

// Canvas is a raster Surface backed by a gg.Context.
type Canvas struct {
	dc     *gg.Context
	width  float64
	height float64
	fonts  *fontLoader
}

type CanvasOption func(*Canvas)

// WithFontPath loads text faces from a TrueType file, or searches the usual
// system locations when path is SystemFonts. The embedded Go fonts are used
// otherwise.
func WithFontPath(path string) CanvasOption {
	return func(c *Canvas) {
		c.fonts = newFontLoader(path)
	}
}

// NewCanvas creates a canvas whose on-screen size is width x height. The
// pixel buffer starts at that size and is re-created on Resize.
func NewCanvas(width, height float64, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		fonts:  newFontLoader(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dc = gg.NewContext(pixels(width), pixels(height))
	return c
}

func pixels(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}

func (c *Canvas) Bounds() (float64, float64) {
	return c.width, c.height
}

func (c *Canvas) Resize(width, height int) {
	c.dc = gg.NewContext(pixels(float64(width)), pixels(float64(height)))
}

func (c *Canvas) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

func (c *Canvas) SetColor(col color.Color) { c.dc.SetColor(col) }
func (c *Canvas) SetLineWidth(w float64)   { c.dc.SetLineWidth(w) }
func (c *Canvas) MoveTo(x, y float64)      { c.dc.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64)      { c.dc.LineTo(x, y) }
func (c *Canvas) ClosePath()               { c.dc.ClosePath() }
func (c *Canvas) DrawCircle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
}
func (c *Canvas) DrawRectangle(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
}
func (c *Canvas) Stroke()         { c.dc.Stroke() }
func (c *Canvas) StrokePreserve() { c.dc.StrokePreserve() }
func (c *Canvas) Fill()           { c.dc.Fill() }
func (c *Canvas) FillPreserve()   { c.dc.FillPreserve() }

func (c *Canvas) SetFont(f Font) {
	c.dc.SetFontFace(c.fonts.face(f))
}

func (c *Canvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// Image returns the current pixel buffer.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG encodes the canvas and writes it to path atomically.
func (c *Canvas) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := fs.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save png: %w", err)
	}
	return nil
}
