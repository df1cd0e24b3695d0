package surface

import (
	"image/color"
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	a := NewRecorder(100, 50)
	reg.Register("b", NewRecorder(1, 1))
	reg.Register("a", a)

	got, ok := reg.Resolve("a")
	if !ok || got != Surface(a) {
		t.Fatalf("Resolve(a) = %v, %v", got, ok)
	}
	if _, ok := reg.Resolve("missing"); ok {
		t.Error("Resolve(missing) should fail")
	}

	reg.Register("nil", nil)
	if _, ok := reg.Resolve("nil"); ok {
		t.Error("a nil surface must not resolve")
	}

	if ids := reg.IDs(); !reflect.DeepEqual(ids, []string{"a", "b", "nil"}) {
		t.Errorf("IDs = %v", ids)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(300, 0)
	if w, h := rec.Bounds(); w != 300 || h != 0 {
		t.Fatalf("Bounds = %v, %v", w, h)
	}

	rec.Resize(300, 300)
	rec.SetColor(color.NRGBA{255, 0, 0, 255})
	rec.SetFont(Font{Size: 14, Bold: true})
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	rec.Stroke()
	rec.DrawStringAnchored("hi", 5, 6, 0.5, 0)

	want := []Op{
		{Name: "Resize", Args: []float64{300, 300}},
		{Name: "SetColor", Color: "#ff0000"},
		{Name: "SetFont", Font: &Font{Size: 14, Bold: true}},
		{Name: "MoveTo", Args: []float64{1, 2}},
		{Name: "LineTo", Args: []float64{3, 4}},
		{Name: "Stroke"},
		{Name: "DrawStringAnchored", Text: "hi", Args: []float64{5, 6, 0.5, 0}},
	}
	if !reflect.DeepEqual(rec.Ops(), want) {
		t.Errorf("ops = %+v, want %+v", rec.Ops(), want)
	}
	if rec.Count("LineTo") != 1 || len(rec.Filter("MoveTo")) != 1 {
		t.Error("Count/Filter mismatch")
	}
	if texts := rec.Texts(); !reflect.DeepEqual(texts, []string{"hi"}) {
		t.Errorf("Texts = %v", texts)
	}

	rec.Reset()
	if len(rec.Ops()) != 0 {
		t.Error("Reset should drop ops")
	}
}
