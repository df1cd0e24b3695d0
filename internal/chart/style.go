package chart

import (
	"image/color"

	"simple-charts/internal/surface"
)

// Style carries every visual constant of the renderer.
type Style struct {
	Padding        float64
	FallbackHeight float64
	// GridIntervals is the number of gaps between horizontal grid lines.
	GridIntervals int
	// MaxXLabels is the label count above which X labels are thinned.
	MaxXLabels int
	Background color.Color // nil leaves the cleared surface transparent

	AxisColor  color.Color
	AxisWidth  float64
	GridColor  color.Color
	GridWidth  float64
	LabelColor color.Color
	TitleColor color.Color

	YLabelFont      surface.Font
	XLabelFont      surface.Font
	TitleFont       surface.Font
	PlaceholderFont surface.Font

	YLabelOffsetX float64
	YLabelOffsetY float64
	XLabelOffsetY float64
	TitleY        float64
	DefaultTitle  string
	NoDataText    string

	BorderColor     color.Color
	LineFillColor   color.Color
	BarFillColor    color.Color
	LineWidth       float64
	MarkerRadius    float64
	MarkerOutline   color.Color
	MarkerLineWidth float64
	BarWidthRatio   float64
	BarBorderWidth  float64
}

func DefaultStyle() Style {
	return Style{
		Padding:        50,
		FallbackHeight: 300,
		GridIntervals:  5,
		MaxXLabels:     10,

		AxisColor:  surface.MustParseColor("#e0e6ed"),
		AxisWidth:  2,
		GridColor:  surface.MustParseColor("#f0f0f0"),
		GridWidth:  1,
		LabelColor: surface.MustParseColor("#7f8c8d"),
		TitleColor: surface.MustParseColor("#2c3e50"),

		YLabelFont:      surface.Font{Size: 12},
		XLabelFont:      surface.Font{Size: 11},
		TitleFont:       surface.Font{Size: 14, Bold: true},
		PlaceholderFont: surface.Font{Size: 16},

		YLabelOffsetX: 10,
		YLabelOffsetY: 4,
		XLabelOffsetY: 20,
		TitleY:        20,
		DefaultTitle:  "Chart",
		NoDataText:    "No data available",

		BorderColor:     surface.MustParseColor("#3498db"),
		LineFillColor:   surface.MustParseColor("rgba(52, 152, 219, 0.1)"),
		BarFillColor:    surface.MustParseColor("rgba(52, 152, 219, 0.7)"),
		LineWidth:       3,
		MarkerRadius:    5,
		MarkerOutline:   color.White,
		MarkerLineWidth: 2,
		BarWidthRatio:   0.7,
		BarBorderWidth:  2,
	}
}
