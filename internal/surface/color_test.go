package surface

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#3498db", color.NRGBA{52, 152, 219, 255}},
		{"#FFF", color.NRGBA{255, 255, 255, 255}},
		{"#e0e6ed", color.NRGBA{224, 230, 237, 255}},
		{"#3498db80", color.NRGBA{52, 152, 219, 128}},
		{"rgba(52, 152, 219, 0.1)", color.NRGBA{52, 152, 219, 26}},
		{"rgba(52,152,219,0.7)", color.NRGBA{52, 152, 219, 179}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 255}},
		{"rgba(300, -4, 10, 2)", color.NRGBA{255, 0, 10, 255}},
		{"  White ", color.NRGBA{255, 255, 255, 255}},
		{"transparent", color.NRGBA{}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"steelblue", color.NRGBA{70, 130, 180, 255}},
		{"RebeccaPurple", color.NRGBA{102, 51, 153, 255}},
		{"hsl(0, 100%, 50%)", color.NRGBA{255, 0, 0, 255}},
		{"hsla(240, 100%, 50%, 0.5)", color.NRGBA{0, 0, 255, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "blue-ish", "#12", "#12345", "#gggggg", "rgba(1, 2)", "rgb(a, b, c)", "rgba(1, 2, 3, x)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(color.NRGBA{52, 152, 219, 255}); got != "#3498db" {
		t.Errorf("opaque = %s", got)
	}
	if got := HexString(color.NRGBA{52, 152, 219, 26}); got != "#3498db1a" {
		t.Errorf("translucent = %s", got)
	}
	if got := HexString(color.White); got != "#ffffff" {
		t.Errorf("white = %s", got)
	}
}
