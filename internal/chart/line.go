package chart

import (
	"image/color"

	"simple-charts/internal/surface"
)

// lineStep is the horizontal distance between consecutive points. A single
// point gets the full plot width so it sits on the left edge.
func lineStep(l Layout, n int) float64 {
	if n <= 1 {
		return l.PlotWidth
	}
	return l.PlotWidth / float64(n-1)
}

func drawLineChart(s surface.Surface, l Layout, st Style, labels []string, ds *Dataset, border, fill color.Color) {
	values := ds.Data
	step := lineStep(l, len(values))
	xAt := func(i int) float64 { return l.Padding + step*float64(i) }

	s.SetColor(border)
	s.SetLineWidth(st.LineWidth)
	for i, v := range values {
		if i == 0 {
			s.MoveTo(xAt(i), l.ValueY(v))
		} else {
			s.LineTo(xAt(i), l.ValueY(v))
		}
	}

	if ds.Fill {
		s.StrokePreserve()
		s.LineTo(xAt(len(values)-1), l.Bottom())
		s.LineTo(xAt(0), l.Bottom())
		s.ClosePath()
		s.SetColor(fill)
		s.Fill()
	} else {
		s.Stroke()
	}

	for i, v := range values {
		s.SetColor(border)
		s.DrawCircle(xAt(i), l.ValueY(v), st.MarkerRadius)
		s.FillPreserve()
		s.SetColor(st.MarkerOutline)
		s.SetLineWidth(st.MarkerLineWidth)
		s.Stroke()
	}

	drawXLabels(s, l, st, labels, xAt)
}
