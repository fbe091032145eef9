package genart

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// FieldParams configures a noise field.
type FieldParams struct {
	// Frequency scales input coordinates before sampling: higher
	// frequency packs more field variation into the same area. Must
	// be positive for the field to contribute anything.
	Frequency float64

	// Octaves is how many noise layers are summed, clamped to at
	// most 8. More octaves add finer detail.
	Octaves int

	// Persistence is the amplitude falloff per octave. Non-positive
	// values fall back to 0.5.
	Persistence float64

	// Lacunarity is the frequency growth per octave. Non-positive
	// values fall back to 2.
	Lacunarity float64
}

// DefaultFieldParams returns the conventional fractal noise settings.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		Frequency:   1,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Field is a smooth pseudo-random scalar field over the plane, built
// from OpenSimplex gradient noise with fractal octave summing.
//
// A Field is deterministic: the same stream seed and parameters
// produce the same value at every coordinate. Unlike Stream it is
// stateless, so sampling order does not matter.
type Field struct {
	noise  opensimplex.Noise
	params FieldParams
	zero   bool
}

// NewField creates a field seeded from the stream's seed. The stream
// itself is not advanced; callers wanting several independent fields
// fork the stream under distinct labels.
//
// Degenerate parameters, an octave count or frequency at or below
// zero, yield the zero field: every sample is 0, an empty
// contribution rather than an error.
func NewField(stream *Stream, params FieldParams) *Field {
	zero := params.Octaves <= 0 || params.Frequency <= 0
	if params.Octaves > 8 {
		params.Octaves = 8
	}
	if params.Persistence <= 0 {
		params.Persistence = 0.5
	}
	if params.Lacunarity <= 0 {
		params.Lacunarity = 2
	}
	return &Field{
		noise:  opensimplex.New(stream.Seed()),
		params: params,
		zero:   zero,
	}
}

// Eval samples the field at (x, y). The result is always in [-1, 1];
// the zero field samples to 0 everywhere.
func (f *Field) Eval(x, y float64) float64 {
	if f.zero {
		return 0
	}
	var total, norm float64
	frequency := f.params.Frequency
	amplitude := 1.0
	for i := 0; i < f.params.Octaves; i++ {
		total += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= f.params.Persistence
		frequency *= f.params.Lacunarity
	}
	return total / norm
}

// Unit samples the field remapped to [0, 1], the range attribute
// values and palette offsets use.
func (f *Field) Unit(x, y float64) float64 {
	return (f.Eval(x, y) + 1) / 2
}
