package surface

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ParseColor parses any CSS color string a canvas accepts: hex (#rgb,
// #rrggbb, #rrggbbaa), rgb()/rgba(), hsl()/hsla(), hwb() and named colors.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}

	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("unsupported color %q: %w", s, err)
	}
	return color.NRGBA{R: to255(c.R), G: to255(c.G), B: to255(c.B), A: to255(c.A)}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// to255 maps a 0..1 channel to 0..255, saturating out-of-range input.
func to255(v float64) uint8 {
	v = math.Round(v * 255)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// HexString formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func HexString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	hex := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}.Hex()
	if n.A == 255 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, n.A)
}
