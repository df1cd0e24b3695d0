package chart

import (
	"image/color"

	"simple-charts/internal/surface"
)

// barSlot returns the width of one category slot, the bar width inside it
// and the gap left on each side of the bar.
func barSlot(l Layout, st Style, n int) (slot, width, gap float64) {
	slot = l.PlotWidth / float64(n)
	width = slot * st.BarWidthRatio
	gap = slot * (1 - st.BarWidthRatio) / 2
	return slot, width, gap
}

func drawBarChart(s surface.Surface, l Layout, st Style, labels []string, ds *Dataset, border, fill color.Color) {
	values := ds.Data
	slot, width, gap := barSlot(l, st, len(values))

	for i, v := range values {
		x := l.Padding + slot*float64(i) + gap
		h := l.ValueHeight(v)
		y := l.Bottom() - h

		s.SetColor(fill)
		s.DrawRectangle(x, y, width, h)
		s.Fill()

		s.SetColor(border)
		s.SetLineWidth(st.BarBorderWidth)
		s.DrawRectangle(x, y, width, h)
		s.Stroke()
	}

	drawXLabels(s, l, st, labels, func(i int) float64 {
		return l.Padding + slot*float64(i) + slot/2
	})
}
