package chart

import (
	"math"
	"testing"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(500, 300, []float64{10, 20, 15}, DefaultStyle())

	if l.PlotWidth != 400 || l.PlotHeight != 200 {
		t.Fatalf("plot area = %vx%v, want 400x200", l.PlotWidth, l.PlotHeight)
	}
	if l.MaxValue != 20 || l.ValueRange != 20 {
		t.Fatalf("max=%v range=%v, want 20/20", l.MaxValue, l.ValueRange)
	}
	if l.Bottom() != 250 || l.Right() != 450 {
		t.Fatalf("bottom=%v right=%v, want 250/450", l.Bottom(), l.Right())
	}

	cases := map[float64]float64{0: 250, 10: 150, 15: 100, 20: 50}
	for v, want := range cases {
		if got := l.ValueY(v); got != want {
			t.Errorf("ValueY(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestComputeLayoutZeroRange(t *testing.T) {
	l := computeLayout(500, 300, []float64{0, 0, 0}, DefaultStyle())
	if l.ValueRange != 1 {
		t.Fatalf("ValueRange = %v, want 1", l.ValueRange)
	}
	if got := l.ValueY(0); got != l.Bottom() {
		t.Errorf("ValueY(0) = %v, want baseline %v", got, l.Bottom())
	}
	for i := 0; i <= l.Intervals; i++ {
		if got := l.GridValue(i); got != 0 || math.Signbit(got) {
			t.Errorf("GridValue(%d) = %v, want 0", i, got)
		}
	}
}

func TestGridValues(t *testing.T) {
	tests := []struct {
		max  float64
		want []float64
	}{
		{20, []float64{20, 16, 12, 8, 4, 0}},
		{7, []float64{7, 6, 4, 3, 1, 0}},
		{2.5, []float64{3, 2, 2, 1, 1, 0}},
		{1000, []float64{1000, 800, 600, 400, 200, 0}},
	}

	for _, tt := range tests {
		l := computeLayout(500, 300, []float64{tt.max}, DefaultStyle())
		for i, want := range tt.want {
			if got := l.GridValue(i); got != want {
				t.Errorf("max=%v GridValue(%d) = %v, want %v", tt.max, i, got, want)
			}
		}
	}
}

func TestGridY(t *testing.T) {
	l := computeLayout(500, 300, []float64{1}, DefaultStyle())
	want := []float64{50, 90, 130, 170, 210, 250}
	for i, w := range want {
		if got := l.GridY(i); got != w {
			t.Errorf("GridY(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestVisibleLabel(t *testing.T) {
	tests := []struct {
		n       int
		visible int
	}{
		{1, 1},
		{10, 10},
		{11, 6},
		{20, 10},
		{25, 9},
		{100, 10},
	}

	for _, tt := range tests {
		count := 0
		for i := 0; i < tt.n; i++ {
			if visibleLabel(i, tt.n, 10) {
				count++
			}
		}
		if count != tt.visible {
			t.Errorf("n=%d visible=%d, want %d", tt.n, count, tt.visible)
		}
		if !visibleLabel(0, tt.n, 10) {
			t.Errorf("n=%d index 0 must always be visible", tt.n)
		}
	}
}

func TestLineStep(t *testing.T) {
	l := computeLayout(500, 300, []float64{1, 2, 3}, DefaultStyle())
	if got := lineStep(l, 3); got != 200 {
		t.Errorf("lineStep(3) = %v, want 200", got)
	}
	if got := lineStep(l, 1); got != 400 {
		t.Errorf("lineStep(1) = %v, want plot width 400", got)
	}
}

func TestBarSlot(t *testing.T) {
	l := computeLayout(500, 300, []float64{1, 2, 3, 4}, DefaultStyle())
	slot, width, gap := barSlot(l, DefaultStyle(), 4)
	if slot != 100 {
		t.Fatalf("slot = %v, want 100", slot)
	}
	if math.Abs(width-70) > 1e-9 {
		t.Errorf("width = %v, want 70", width)
	}
	if math.Abs(gap-15) > 1e-9 {
		t.Errorf("gap = %v, want 15", gap)
	}
	if math.Abs(width+2*gap-slot) > 1e-9 {
		t.Errorf("bar plus gaps = %v, want slot %v", width+2*gap, slot)
	}
}
