package genart

// Attr carries the per-primitive attributes consumed by the color
// mapping stage.
type Attr struct {
	// Value is the scalar attribute used for palette lookup. The
	// mapper normalizes it against the scene's attribute domain.
	Value float64

	// Color, when non-nil, bypasses palette mapping entirely and
	// draws the primitive with exactly this color.
	Color *RGBA
}

// Primitive is a drawable shape plus its attributes. The variants are
// Dot, Segment, Polygon, and Region. The interface is closed: only
// types in this package implement it, which lets the renderer switch
// exhaustively over the variants.
type Primitive interface {
	primitive()
}

// Dot is a filled circle.
type Dot struct {
	Center Point
	Radius float64
	Attr   Attr
}

// Segment is a stroked line with square ends.
type Segment struct {
	From, To Point
	Width    float64
	Attr     Attr
}

// Polygon is a filled closed polygon. Points holds the vertices in
// order; the closing edge from the last vertex back to the first is
// implicit.
type Polygon struct {
	Points []Point
	Attr   Attr
}

// Region is an axis-aligned filled rectangle.
type Region struct {
	Rect Rect
	Attr Attr
}

func (Dot) primitive()     {}
func (Segment) primitive() {}
func (Polygon) primitive() {}
func (Region) primitive()  {}

// primitiveAttr extracts the attributes of any primitive variant.
func primitiveAttr(p Primitive) Attr {
	switch v := p.(type) {
	case Dot:
		return v.Attr
	case Segment:
		return v.Attr
	case Polygon:
		return v.Attr
	case Region:
		return v.Attr
	}
	return Attr{}
}

// primitiveUsable reports whether a primitive can be rendered. A
// primitive is unusable when any coordinate or dimension is NaN or
// infinite, when a dot radius or segment width is negative, when a
// polygon has fewer than three vertices, or when the attribute value
// is not finite.
func primitiveUsable(p Primitive) bool {
	if !finite(primitiveAttr(p).Value) {
		return false
	}
	switch v := p.(type) {
	case Dot:
		return v.Center.IsFinite() && finite(v.Radius) && v.Radius >= 0
	case Segment:
		return v.From.IsFinite() && v.To.IsFinite() && finite(v.Width) && v.Width >= 0
	case Polygon:
		if len(v.Points) < 3 {
			return false
		}
		for _, pt := range v.Points {
			if !pt.IsFinite() {
				return false
			}
		}
		return true
	case Region:
		return v.Rect.IsFinite()
	}
	return false
}

// Scene is the retained container the composer fills and the renderer
// consumes. Primitives accumulate in draw order; the renderer paints
// them front to back of that order, so later primitives win wherever
// shapes overlap.
type Scene struct {
	prims    []Primitive
	rejected int

	haveRange bool
	minAttr   float64
	maxAttr   float64
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a primitive in draw order. Degenerate primitives, those
// with NaN or infinite coordinates or otherwise unusable geometry, are
// not appended: the rejection is counted and logged, and composition
// continues without the primitive. Add reports whether the primitive
// was accepted.
func (s *Scene) Add(p Primitive) bool {
	if !primitiveUsable(p) {
		s.rejected++
		Logger().Warn("rejected degenerate primitive",
			"position", len(s.prims),
			"rejected", s.rejected)
		return false
	}

	if a := primitiveAttr(p); a.Color == nil {
		if !s.haveRange {
			s.minAttr, s.maxAttr = a.Value, a.Value
			s.haveRange = true
		} else {
			if a.Value < s.minAttr {
				s.minAttr = a.Value
			}
			if a.Value > s.maxAttr {
				s.maxAttr = a.Value
			}
		}
	}

	s.prims = append(s.prims, p)
	return true
}

// Len returns the number of accepted primitives.
func (s *Scene) Len() int {
	return len(s.prims)
}

// At returns the primitive at index i in draw order.
func (s *Scene) At(i int) Primitive {
	return s.prims[i]
}

// Primitives returns the primitives in draw order. The slice is shared
// with the scene; callers must not modify it.
func (s *Scene) Primitives() []Primitive {
	return s.prims
}

// Rejected returns how many primitives were rejected as degenerate.
func (s *Scene) Rejected() int {
	return s.rejected
}

// AttrRange returns the observed minimum and maximum attribute value
// over primitives that use palette mapping, i.e. those without a color
// override. ok is false when no such primitive has been added.
func (s *Scene) AttrRange() (min, max float64, ok bool) {
	if !s.haveRange {
		return 0, 0, false
	}
	return s.minAttr, s.maxAttr, true
}

// Reset clears the scene for reuse without deallocating the primitive
// slice.
func (s *Scene) Reset() {
	s.prims = s.prims[:0]
	s.rejected = 0
	s.haveRange = false
	s.minAttr = 0
	s.maxAttr = 0
}
