package geom

import "testing"

func TestMeasure_Resolve_Percent(t *testing.T) {
	m := Percent(50)
	if got := m.Resolve(400); got != 200 {
		t.Errorf("Resolve(400) = %v, want 200", got)
	}
}

func TestMeasure_Resolve_PixelsIgnoreParent(t *testing.T) {
	m := Pixels(120)
	if got := m.Resolve(400); got != 120 {
		t.Errorf("Resolve(400) = %v, want 120", got)
	}
}

func TestMeasure_Equals_Tolerance(t *testing.T) {
	if !Percent(100).Equals(Percent(100.00001)) {
		t.Error("expected measures within epsilon to be equal")
	}
	if Percent(100).Equals(Pixels(100)) {
		t.Error("expected measures with different units to differ")
	}
}

func TestMeasure_String(t *testing.T) {
	if got := Percent(100).String(); got != "100%" {
		t.Errorf("String() = %q, want %q", got, "100%")
	}
	if got := Pixels(50).String(); got != "50px" {
		t.Errorf("String() = %q, want %q", got, "50px")
	}
}

func TestRect_FromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("got %vx%v, want 100x50", r.Width(), r.Height())
	}
	if !r.Contains(10, 20) {
		t.Error("expected rect to contain its top-left corner")
	}
	if r.Contains(110, 20) {
		t.Error("expected rect to exclude its right edge")
	}
}
