package genart

import "testing"

func TestMapper_ExactMidpoint(t *testing.T) {
	// Two-stop palette, attribute 0.5: the result is the exact
	// component-wise midpoint with no rounding.
	tests := []struct {
		name   string
		c1, c2 RGBA
		want   RGBA
	}{
		{
			name: "black to white",
			c1:   Black, c2: White,
			want: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
		},
		{
			name: "red to blue",
			c1:   Red, c2: Blue,
			want: RGBA{R: 0.5, G: 0, B: 0.5, A: 1},
		},
		{
			name: "representable quarters",
			c1:   RGBA{R: 0.25, G: 1, B: 0, A: 1},
			c2:   RGBA{R: 0.75, G: 0, B: 1, A: 1},
			want: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(NewPalette(tt.c1, tt.c2))
			got := m.Map(Attr{Value: 0.5})
			if got != tt.want {
				t.Errorf("Map(0.5) = %v, want exactly %v", got, tt.want)
			}
		})
	}
}

func TestMapper_ClampsToEndpoints(t *testing.T) {
	m := NewMapper(NewPalette(Red, Green, Blue))

	// Out-of-domain values return the end colors exactly, never an
	// extrapolation past them.
	tests := []struct {
		name  string
		value float64
		want  RGBA
	}{
		{name: "far below", value: -1e6, want: Red},
		{name: "just below", value: -0.0001, want: Red},
		{name: "at min", value: 0, want: Red},
		{name: "at max", value: 1, want: Blue},
		{name: "just above", value: 1.0001, want: Blue},
		{name: "far above", value: 1e6, want: Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Map(Attr{Value: tt.value})
			if got != tt.want {
				t.Errorf("Map(%v) = %v, want exactly %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMapper_SetDomain(t *testing.T) {
	m := NewMapper(NewPalette(Black, White))
	m.SetDomain(10, 20)

	if got := m.Map(Attr{Value: 15}); got != (RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Map(15) over [10, 20] = %v, want mid gray", got)
	}
	if got := m.Map(Attr{Value: 10}); got != Black {
		t.Errorf("Map(10) = %v, want black", got)
	}
	if got := m.Map(Attr{Value: 25}); got != White {
		t.Errorf("Map(25) = %v, want white (clamped)", got)
	}
}

func TestMapper_FitScene(t *testing.T) {
	s := NewScene()
	s.Add(Dot{Center: Pt(1, 1), Radius: 1, Attr: Attr{Value: 2}})
	s.Add(Dot{Center: Pt(2, 2), Radius: 1, Attr: Attr{Value: 6}})

	m := NewMapper(NewPalette(Black, White))
	m.FitScene(s)

	if got := m.Domain(); got != (Domain{Min: 2, Max: 6}) {
		t.Fatalf("Domain after FitScene = %+v, want {2 6}", got)
	}
	if got := m.Map(Attr{Value: 4}); got != (RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Map(4) = %v, want mid gray", got)
	}
}

func TestMapper_FixedDomainWins(t *testing.T) {
	s := NewScene()
	s.Add(Dot{Center: Pt(1, 1), Radius: 1, Attr: Attr{Value: 100}})
	s.Add(Dot{Center: Pt(2, 2), Radius: 1, Attr: Attr{Value: 200}})

	m := NewMapper(NewPalette(Black, White))
	m.SetDomain(0, 1)
	m.FitScene(s)

	if got := m.Domain(); got != (Domain{Min: 0, Max: 1}) {
		t.Errorf("Domain = %+v, want the fixed {0 1}", got)
	}
}

func TestMapper_FitEmptySceneKeepsDomain(t *testing.T) {
	m := NewMapper(NewPalette(Black, White))
	m.FitScene(NewScene())
	if got := m.Domain(); got != (Domain{Min: 0, Max: 1}) {
		t.Errorf("Domain = %+v, want the default {0 1}", got)
	}
}

func TestMapper_DegenerateDomain(t *testing.T) {
	m := NewMapper(NewPalette(Black, White))
	m.SetDomain(5, 5)

	// Every value maps to the palette midpoint when the domain has
	// zero width.
	for _, v := range []float64{-10, 0, 5, 99} {
		got := m.Map(Attr{Value: v})
		want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
		if got != want {
			t.Errorf("Map(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestMapper_OverrideWins(t *testing.T) {
	m := NewMapper(NewPalette(Black, White))
	override := Red
	got := m.Map(Attr{Value: 0.9, Color: &override})
	if got != Red {
		t.Errorf("Map with override = %v, want red", got)
	}
}

func TestMapper_SpaceLinear(t *testing.T) {
	m := NewMapper(NewPalette(Black, White))
	m.SetSpace(SpaceLinear)

	mid := m.Map(Attr{Value: 0.5})
	if mid.R <= 0.5 {
		t.Errorf("linear-light midpoint R = %v, want > 0.5", mid.R)
	}

	// Endpoints are exact in either space.
	if got := m.Map(Attr{Value: 0}); got != Black {
		t.Errorf("Map(0) = %v, want black", got)
	}
	if got := m.Map(Attr{Value: 1}); got != White {
		t.Errorf("Map(1) = %v, want white", got)
	}
}
