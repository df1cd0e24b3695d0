package surface

import (
	"image/color"
)

// Op is one recorded drawing call.
type Op struct {
	Name  string    `json:"op"`
	Args  []float64 `json:"args,omitempty"`
	Text  string    `json:"text,omitempty"`
	Color string    `json:"color,omitempty"`
	Font  *Font     `json:"font,omitempty"`
}

// Recorder is a Surface that keeps a log of every call instead of drawing.
type Recorder struct {
	width  float64
	height float64
	ops    []Op
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) record(name string, args ...float64) {
	r.ops = append(r.ops, Op{Name: name, Args: args})
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls named name.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter("DrawStringAnchored") {
		out = append(out, op.Text)
	}
	return out
}

func (r *Recorder) Reset() {
	r.ops = nil
}

func (r *Recorder) Bounds() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) Resize(width, height int) {
	r.record("Resize", float64(width), float64(height))
}

func (r *Recorder) Clear() { r.record("Clear") }

func (r *Recorder) SetColor(c color.Color) {
	r.ops = append(r.ops, Op{Name: "SetColor", Color: HexString(c)})
}

func (r *Recorder) SetLineWidth(w float64) { r.record("SetLineWidth", w) }
func (r *Recorder) MoveTo(x, y float64)    { r.record("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)    { r.record("LineTo", x, y) }
func (r *Recorder) ClosePath()             { r.record("ClosePath") }

func (r *Recorder) DrawCircle(x, y, radius float64) {
	r.record("DrawCircle", x, y, radius)
}

func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.record("DrawRectangle", x, y, w, h)
}

func (r *Recorder) Stroke()         { r.record("Stroke") }
func (r *Recorder) StrokePreserve() { r.record("StrokePreserve") }
func (r *Recorder) Fill()           { r.record("Fill") }
func (r *Recorder) FillPreserve()   { r.record("FillPreserve") }

func (r *Recorder) SetFont(f Font) {
	r.ops = append(r.ops, Op{Name: "SetFont", Font: &f})
}

func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.ops = append(r.ops, Op{Name: "DrawStringAnchored", Text: s, Args: []float64{x, y, ax, ay}})
}
