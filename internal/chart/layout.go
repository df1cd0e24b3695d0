package chart

import (
	"math"
	"strconv"

	"simple-charts/internal/surface"
)

// Layout is the geometry shared by the line and bar branches: the padded
// plot area and the linear value scale anchored at 0.
type Layout struct {
	Width      float64
	Height     float64
	Padding    float64
	PlotWidth  float64
	PlotHeight float64
	MaxValue   float64
	MinValue   float64
	// ValueRange is MaxValue-MinValue, or 1 when that is zero.
	ValueRange float64
	Intervals  int
}

func computeLayout(width, height float64, values []float64, st Style) Layout {
	l := Layout{
		Width:      width,
		Height:     height,
		Padding:    st.Padding,
		PlotWidth:  width - 2*st.Padding,
		PlotHeight: height - 2*st.Padding,
		Intervals:  st.GridIntervals,
	}
	if l.Intervals < 1 {
		l.Intervals = 1
	}

	l.MaxValue = math.Inf(-1)
	for _, v := range values {
		if v > l.MaxValue {
			l.MaxValue = v
		}
	}
	if len(values) == 0 {
		l.MaxValue = 0
	}

	l.ValueRange = l.MaxValue - l.MinValue
	if l.ValueRange == 0 {
		l.ValueRange = 1
	}
	return l
}

// Right is the X of the plot's right edge.
func (l Layout) Right() float64 { return l.Width - l.Padding }

// Bottom is the Y of the baseline.
func (l Layout) Bottom() float64 { return l.Height - l.Padding }

// ValueHeight is the pixel height of v above the baseline.
func (l Layout) ValueHeight(v float64) float64 {
	return ((v - l.MinValue) / l.ValueRange) * l.PlotHeight
}

// ValueY maps v onto the surface Y axis.
func (l Layout) ValueY(v float64) float64 {
	return l.Bottom() - l.ValueHeight(v)
}

// GridY is the Y of grid line i, 0 being the top of the plot.
func (l Layout) GridY(i int) float64 {
	return l.Padding + (l.PlotHeight/float64(l.Intervals))*float64(i)
}

// GridValue is the value labelled at grid line i, rounded half up.
func (l Layout) GridValue(i int) float64 {
	v := l.MaxValue - (l.MaxValue/float64(l.Intervals))*float64(i)
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// visibleLabel reports whether label i of n survives tick thinning.
func visibleLabel(i, n, limit int) bool {
	if limit < 1 || n <= limit {
		return true
	}
	every := (n + limit - 1) / limit
	return i%every == 0
}

// drawFrame paints the axes, the grid lines and the Y labels.
func drawFrame(s surface.Surface, l Layout, st Style) {
	s.SetColor(st.AxisColor)
	s.SetLineWidth(st.AxisWidth)

	s.MoveTo(l.Padding, l.Padding)
	s.LineTo(l.Padding, l.Bottom())
	s.Stroke()

	s.MoveTo(l.Padding, l.Bottom())
	s.LineTo(l.Right(), l.Bottom())
	s.Stroke()

	s.SetColor(st.GridColor)
	s.SetLineWidth(st.GridWidth)
	for i := 0; i <= l.Intervals; i++ {
		y := l.GridY(i)
		s.MoveTo(l.Padding, y)
		s.LineTo(l.Right(), y)
		s.Stroke()
	}

	s.SetColor(st.LabelColor)
	s.SetFont(st.YLabelFont)
	for i := 0; i <= l.Intervals; i++ {
		s.DrawStringAnchored(formatValue(l.GridValue(i)), l.Padding-st.YLabelOffsetX, l.GridY(i)+st.YLabelOffsetY, 1, 0)
	}
}

// drawXLabels writes the category names under the plot, thinned when there
// are too many of them.
func drawXLabels(s surface.Surface, l Layout, st Style, labels []string, xAt func(int) float64) {
	s.SetColor(st.LabelColor)
	s.SetFont(st.XLabelFont)
	for i, label := range labels {
		if !visibleLabel(i, len(labels), st.MaxXLabels) {
			continue
		}
		s.DrawStringAnchored(label, xAt(i), l.Bottom()+st.XLabelOffsetY, 0.5, 0)
	}
}

func drawTitle(s surface.Surface, l Layout, st Style, title string) {
	if title == "" {
		title = st.DefaultTitle
	}
	s.SetColor(st.TitleColor)
	s.SetFont(st.TitleFont)
	s.DrawStringAnchored(title, l.Width/2, st.TitleY, 0.5, 0)
}

func drawNoData(s surface.Surface, width, height float64, st Style) {
	s.SetColor(st.LabelColor)
	s.SetFont(st.PlaceholderFont)
	s.DrawStringAnchored(st.NoDataText, width/2, height/2, 0.5, 0)
}
