package genart

import "testing"

func TestPalette_At(t *testing.T) {
	p := NewPalette(Black, White)

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{name: "start", t: 0, want: Black},
		{name: "end", t: 1, want: White},
		{name: "exact midpoint", t: 0.5, want: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{name: "quarter", t: 0.25, want: RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}},
		{name: "clamped below", t: -3, want: Black},
		{name: "clamped above", t: 7, want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.At(tt.t)
			if got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPalette_AtExactStops(t *testing.T) {
	p := NewPalette(Red, Green, Blue)
	// Three colors sit at offsets 0, 0.5, and 1. Sampling exactly on a
	// stop returns that stop's color with no interpolation drift.
	if got := p.At(0); got != Red {
		t.Errorf("At(0) = %v, want red", got)
	}
	if got := p.At(0.5); got != Green {
		t.Errorf("At(0.5) = %v, want green", got)
	}
	if got := p.At(1); got != Blue {
		t.Errorf("At(1) = %v, want blue", got)
	}
}

func TestPalette_AtEdgeCases(t *testing.T) {
	t.Run("empty palette", func(t *testing.T) {
		var p Palette
		if got := p.At(0.5); got != Transparent {
			t.Errorf("At on empty palette = %v, want transparent", got)
		}
	})

	t.Run("single stop", func(t *testing.T) {
		p := NewPalette(Red)
		for _, pos := range []float64{0, 0.5, 1} {
			if got := p.At(pos); got != Red {
				t.Errorf("At(%v) on single stop = %v, want red", pos, got)
			}
		}
	})

	t.Run("coincident stops form a hard edge", func(t *testing.T) {
		p := NewPaletteStops(
			ColorStop{Offset: 0, Color: Black},
			ColorStop{Offset: 0.5, Color: Red},
			ColorStop{Offset: 0.5, Color: Blue},
			ColorStop{Offset: 1, Color: White},
		)
		if got := p.At(0.5); got != Red {
			t.Errorf("At(0.5) = %v, want red (first of the coincident pair)", got)
		}
		// Just past the edge the blend runs from blue toward white.
		got := p.At(0.5625)
		want := Blue.Lerp(White, 0.125)
		if !colorsClose(got, want, 1e-9) {
			t.Errorf("At(0.5625) = %v, want %v", got, want)
		}
	})
}

func TestPalette_AtExtend(t *testing.T) {
	p := NewPalette(Black, White)

	tests := []struct {
		name string
		t    float64
		mode ExtendMode
		want RGBA
	}{
		{name: "pad clamps below", t: -3, mode: ExtendPad, want: Black},
		{name: "pad clamps above", t: 7, mode: ExtendPad, want: White},
		{name: "pad inside untouched", t: 0.25, mode: ExtendPad, want: RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}},
		{name: "repeat wraps forward", t: 1.25, mode: ExtendRepeat, want: RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}},
		{name: "repeat wraps backward", t: -0.25, mode: ExtendRepeat, want: RGBA{R: 0.75, G: 0.75, B: 0.75, A: 1}},
		{name: "reflect mirrors odd period", t: 1.25, mode: ExtendReflect, want: RGBA{R: 0.75, G: 0.75, B: 0.75, A: 1}},
		{name: "reflect keeps even period", t: 2.25, mode: ExtendReflect, want: RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}},
		{name: "reflect mirrors negative", t: -0.25, mode: ExtendReflect, want: RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.AtExtend(tt.t, tt.mode)
			if got != tt.want {
				t.Errorf("AtExtend(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestNewPaletteStops_Sorts(t *testing.T) {
	p := NewPaletteStops(
		ColorStop{Offset: 1, Color: White},
		ColorStop{Offset: 0, Color: Black},
	)
	if got := p.At(0); got != Black {
		t.Errorf("At(0) = %v, want black after sorting", got)
	}
	if got := p.At(1); got != White {
		t.Errorf("At(1) = %v, want white after sorting", got)
	}
}

func TestPalette_AtLinear(t *testing.T) {
	p := NewPalette(Black, White)

	// Endpoints stay exact in either space.
	if got := p.AtLinear(0); got != Black {
		t.Errorf("AtLinear(0) = %v, want black", got)
	}
	if got := p.AtLinear(1); got != White {
		t.Errorf("AtLinear(1) = %v, want white", got)
	}

	// The linear-light midpoint of black and white is brighter than
	// the component-wise midpoint.
	mid := p.AtLinear(0.5)
	if mid.R <= 0.5 {
		t.Errorf("AtLinear(0.5).R = %v, want > 0.5", mid.R)
	}
	if absDiff(mid.R, mid.G) > 1e-12 || absDiff(mid.R, mid.B) > 1e-12 {
		t.Errorf("AtLinear(0.5) = %v, want a neutral gray", mid)
	}
}

func TestPalette_Cycle(t *testing.T) {
	p := NewPalette(Red, Green, Blue)

	tests := []struct {
		i    int
		want RGBA
	}{
		{i: 0, want: Red},
		{i: 1, want: Green},
		{i: 2, want: Blue},
		{i: 3, want: Red},
		{i: 7, want: Green},
		{i: -1, want: Blue},
	}

	for _, tt := range tests {
		if got := p.Cycle(tt.i); got != tt.want {
			t.Errorf("Cycle(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}

	var empty Palette
	if got := empty.Cycle(0); got != Transparent {
		t.Errorf("Cycle on empty palette = %v, want transparent", got)
	}
}

func TestPalette_StopsIsACopy(t *testing.T) {
	p := NewPalette(Red, Blue)
	stops := p.Stops()
	stops[0].Color = Green
	if got := p.At(0); got != Red {
		t.Error("mutating the Stops copy changed the palette")
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Len() < 2 {
		t.Fatalf("DefaultPalette has %d stops, want at least 2", p.Len())
	}
	first := p.At(0)
	last := p.At(1)
	if first == last {
		t.Error("DefaultPalette endpoints are identical")
	}
}
