package colorspace

import "testing"

func TestRoundtrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.04045, 0.1, 0.5, 0.73, 1} {
		got := ToSRGB(ToLinear(v))
		if diff := got - v; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("roundtrip(%v) = %v", v, got)
		}
	}
}

func TestEndpoints(t *testing.T) {
	if got := ToLinear(0); got != 0 {
		t.Errorf("ToLinear(0) = %v, want 0", got)
	}
	if got := ToSRGB(0); got != 0 {
		t.Errorf("ToSRGB(0) = %v, want 0", got)
	}
	if got := ToLinear(1); got < 0.9999999 || got > 1.0000001 {
		t.Errorf("ToLinear(1) = %v, want 1", got)
	}
	if got := ToSRGB(1); got < 0.9999999 || got > 1.0000001 {
		t.Errorf("ToSRGB(1) = %v, want 1", got)
	}
}

func TestMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := ToLinear(float64(i) / 100)
		if v <= prev {
			t.Fatalf("ToLinear not strictly increasing at %v", float64(i)/100)
		}
		prev = v
	}
}
