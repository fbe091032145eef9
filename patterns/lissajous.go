package patterns

import (
	"math"

	genart "github.com/iamkag/Generative-Algorithms"
)

// Lissajous samples a Lissajous curve into dots, colored by phase
// along the curve. The sample count scales with the depth budget, so
// deeper configurations trace the same curve more densely.
//
// Parameters:
//
//	a, b   angular frequencies of the two axes (defaults 3, 4)
//	delta  x-axis phase offset in radians (default: stream-drawn)
//	cycles how many full 2π cycles to trace (default 1)
//	radius dot radius in pixels (default 1.5)
//	margin canvas margin as a fraction of the short side (default 0.1)
type Lissajous struct{}

// NewLissajous creates the parametric curve rule.
func NewLissajous() *Lissajous {
	return &Lissajous{}
}

// Name implements genart.Generator.
func (*Lissajous) Name() string {
	return "lissajous"
}

// Generate implements genart.Generator.
func (g *Lissajous) Generate(c *genart.Composer) error {
	cfg := c.Config()
	bounds := c.Bounds()
	center := bounds.Center()

	short := math.Min(bounds.Width(), bounds.Height())
	ampX := bounds.Width()/2 - short*cfg.Param("margin", 0.1)
	ampY := bounds.Height()/2 - short*cfg.Param("margin", 0.1)

	a := cfg.Param("a", 3)
	b := cfg.Param("b", 4)
	delta := cfg.Param("delta", c.Stream().Angle())
	radius := cfg.Param("radius", 1.5)

	samples := c.Depth() * 400
	total := cfg.Param("cycles", 1) * 2 * math.Pi
	for i := 0; i < samples; i++ {
		t := total * float64(i) / float64(samples)
		p := center.Add(genart.Pt(
			ampX*math.Sin(a*t+delta),
			ampY*math.Sin(b*t),
		))
		if err := c.Emit(genart.Dot{
			Center: p,
			Radius: radius,
			Attr:   genart.Attr{Value: t / total},
		}); err != nil {
			return err
		}
	}
	return nil
}
