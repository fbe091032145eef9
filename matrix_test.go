package genart

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	m := Identity()
	p := Pt(3.5, -2)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transformed %v to %v", p, got)
	}
}

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{name: "translate", m: Translate(10, 20), p: Pt(1, 2), want: Pt(11, 22)},
		{name: "scale", m: Scale(2, 3), p: Pt(1, 2), want: Pt(2, 6)},
		{name: "rotate quarter turn", m: Rotate(math.Pi / 2), p: Pt(1, 0), want: Pt(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !pointsClose(got, tt.want, 1e-12) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// Translate then scale: scale applies first in m.Multiply(other) order.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 2)
	if !pointsClose(got, want, 1e-12) {
		t.Errorf("composed transform = %v, want %v", got, want)
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 4))
	inv := m.Invert()

	p := Pt(1.25, -8)
	roundtrip := inv.TransformPoint(m.TransformPoint(p))
	if !pointsClose(roundtrip, p, 1e-9) {
		t.Errorf("invert roundtrip moved %v to %v", p, roundtrip)
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	// A zero-determinant matrix inverts to the identity rather than blowing up.
	m := Scale(0, 0)
	if got := m.Invert(); got != Identity() {
		t.Errorf("singular Invert = %+v, want identity", got)
	}
}
