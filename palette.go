package genart

import (
	"math"
	"sort"

	"github.com/iamkag/Generative-Algorithms/internal/colorspace"
)

// ExtendMode defines how palette positions outside [0, 1] resolve.
type ExtendMode int

const (
	// ExtendPad clamps to the edge stops (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the palette with period 1.
	ExtendRepeat
	// ExtendReflect mirrors the palette on every other period.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a palette.
type ColorStop struct {
	Offset float64 // Position in the palette, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Palette is an ordered sequence of color stops over [0, 1]. The color
// mapper samples it with normalized attribute values; generators can
// also walk it color by color with Cycle.
//
// A Palette is immutable after construction.
type Palette struct {
	stops []ColorStop
}

// NewPalette creates a palette from colors spaced evenly over [0, 1].
// One color yields a single stop at offset 0.
func NewPalette(colors ...RGBA) Palette {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: offset, Color: c}
	}
	return Palette{stops: stops}
}

// NewPaletteStops creates a palette from explicit stops. Stops are
// sorted by offset; the originals are not modified.
func NewPaletteStops(stops ...ColorStop) Palette {
	return Palette{stops: sortStops(stops)}
}

// sortStops sorts color stops by offset without modifying the input.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// Len returns the number of stops.
func (p Palette) Len() int {
	return len(p.stops)
}

// Stops returns a copy of the palette's stops in offset order.
func (p Palette) Stops() []ColorStop {
	out := make([]ColorStop, len(p.stops))
	copy(out, p.stops)
	return out
}

// Cycle returns the i-th stop color, wrapping around the stop count.
// Negative indices wrap the same way, so Cycle(-1) is the last color.
func (p Palette) Cycle(i int) RGBA {
	if len(p.stops) == 0 {
		return Transparent
	}
	i %= len(p.stops)
	if i < 0 {
		i += len(p.stops)
	}
	return p.stops[i].Color
}

// At returns the palette color at position t. Between adjacent stops
// the color is interpolated component-wise: a t exactly halfway
// between two stops yields the exact component midpoint. Positions
// outside [0, 1] clamp to the edge stops.
func (p Palette) At(t float64) RGBA {
	c1, c2, localT, single := p.locate(t)
	if single {
		return c1
	}
	return c1.Lerp(c2, localT)
}

// AtExtend is like At with an explicit extend mode for positions
// outside [0, 1]: ExtendPad clamps like At, ExtendRepeat wraps so the
// palette cycles every whole unit, ExtendReflect alternates direction
// each cycle. Pattern rules use the cyclic modes for indices or phases
// that run past the palette; the color mapper itself always pads.
func (p Palette) AtExtend(t float64, mode ExtendMode) RGBA {
	return p.At(applyExtend(t, mode))
}

// applyExtend normalizes a position into [0, 1] per the extend mode.
func applyExtend(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// AtLinear is like At but interpolates in linear-light space: the
// stops are converted through the sRGB transfer function, blended, and
// converted back. This avoids the darkened midtones of component-wise
// blending at the cost of exactness.
func (p Palette) AtLinear(t float64) RGBA {
	c1, c2, localT, single := p.locate(t)
	if single {
		return c1
	}
	l1 := toLinear(c1)
	l2 := toLinear(c2)
	return fromLinear(l1.Lerp(l2, localT))
}

// locate finds the two stops bracketing t and the interpolation factor
// between them. single is true when no interpolation is needed: the
// palette is empty or has one stop, t lies outside the stop range, or
// t lands exactly on a stop.
func (p Palette) locate(t float64) (c1, c2 RGBA, localT float64, single bool) {
	if len(p.stops) == 0 {
		return Transparent, Transparent, 0, true
	}
	if len(p.stops) == 1 {
		return p.stops[0].Color, p.stops[0].Color, 0, true
	}

	t = clamp01(t)

	idx := sort.Search(len(p.stops), func(i int) bool {
		return p.stops[i].Offset >= t
	})
	if idx == 0 {
		return p.stops[0].Color, p.stops[0].Color, 0, true
	}
	if idx >= len(p.stops) {
		last := p.stops[len(p.stops)-1].Color
		return last, last, 0, true
	}

	stop2 := p.stops[idx]

	// A position landing exactly on a stop returns that stop's color
	// with no interpolation drift.
	if stop2.Offset == t {
		return stop2.Color, stop2.Color, 0, true
	}

	// stop1.Offset < t < stop2.Offset holds here, so the divisor is
	// never zero even when the palette contains coincident stops.
	stop1 := p.stops[idx-1]
	return stop1.Color, stop2.Color, (t - stop1.Offset) / (stop2.Offset - stop1.Offset), false
}

func toLinear(c RGBA) RGBA {
	return RGBA{
		R: colorspace.ToLinear(c.R),
		G: colorspace.ToLinear(c.G),
		B: colorspace.ToLinear(c.B),
		A: c.A, // Alpha is always linear
	}
}

func fromLinear(c RGBA) RGBA {
	return RGBA{
		R: colorspace.ToSRGB(c.R),
		G: colorspace.ToSRGB(c.G),
		B: colorspace.ToSRGB(c.B),
		A: c.A, // Alpha is always linear
	}
}

// DefaultPalette returns a warm-to-cool ramp suitable as a starting
// point when no palette is configured explicitly.
func DefaultPalette() Palette {
	return NewPalette(
		Hex("#1a1a2e"),
		Hex("#16213e"),
		Hex("#0f3460"),
		Hex("#e94560"),
		Hex("#f5c518"),
	)
}
