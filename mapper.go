package genart

// Space selects the interpolation space for palette lookups.
type Space int

const (
	// SpaceSRGB interpolates palette colors component-wise in
	// gamma-encoded sRGB. This is the default: it is exact, so a
	// position halfway between two stops yields the precise
	// component midpoint.
	SpaceSRGB Space = iota

	// SpaceLinear interpolates in linear light, avoiding the
	// darkened midtones of gamma-space blending.
	SpaceLinear
)

// Domain is the attribute range mapped onto the palette: Min maps to
// palette position 0 and Max to position 1.
type Domain struct {
	Min, Max float64
}

// Mapper turns primitive attributes into colors. Attribute values are
// normalized against the domain and looked up in the palette; values
// outside the domain clamp to the palette's end colors, never
// extrapolating past them. An explicit color override on a primitive
// bypasses the palette entirely.
type Mapper struct {
	palette Palette
	domain  Domain
	fixed   bool
	space   Space
}

// NewMapper creates a mapper over the palette with the default domain
// [0, 1] and component-wise sRGB interpolation.
func NewMapper(palette Palette) *Mapper {
	return &Mapper{
		palette: palette,
		domain:  Domain{Min: 0, Max: 1},
	}
}

// SetDomain fixes the attribute domain. A fixed domain is never
// replaced by FitScene.
func (m *Mapper) SetDomain(min, max float64) {
	m.domain = Domain{Min: min, Max: max}
	m.fixed = true
}

// SetSpace selects the interpolation space for palette lookups.
func (m *Mapper) SetSpace(space Space) {
	m.space = space
}

// FitScene adopts the scene's observed attribute range as the domain,
// unless the domain was fixed with SetDomain. A scene with no mappable
// primitives leaves the domain unchanged.
func (m *Mapper) FitScene(s *Scene) {
	if m.fixed {
		return
	}
	if min, max, ok := s.AttrRange(); ok {
		m.domain = Domain{Min: min, Max: max}
	}
}

// Domain returns the active attribute domain.
func (m *Mapper) Domain() Domain {
	return m.domain
}

// Map returns the color for the given attributes.
func (m *Mapper) Map(a Attr) RGBA {
	if a.Color != nil {
		return *a.Color
	}
	t := m.normalize(a.Value)
	if m.space == SpaceLinear {
		return m.palette.AtLinear(t)
	}
	return m.palette.At(t)
}

// Assign resolves one color per scene primitive, in draw order. The
// returned slice lines up index-for-index with the scene, which is the
// shape the renderer consumes.
func (m *Mapper) Assign(s *Scene) []RGBA {
	colors := make([]RGBA, s.Len())
	for i, p := range s.Primitives() {
		colors[i] = m.Map(primitiveAttr(p))
	}
	return colors
}

// normalize maps a value into palette position space. A degenerate
// domain, where every observed attribute is equal, maps everything to
// the palette midpoint.
func (m *Mapper) normalize(v float64) float64 {
	if m.domain.Max <= m.domain.Min {
		return 0.5
	}
	return (v - m.domain.Min) / (m.domain.Max - m.domain.Min)
}
