package patterns

import (
	"math"

	genart "github.com/iamkag/Generative-Algorithms"
)

// FlowField advects a set of particles along a fractal noise field
// and draws their trails as segments, colored by the local field
// value. Each particle starts at a stream-drawn position and follows
// the field direction for a bounded number of steps proportional to
// the depth budget.
//
// Parameters:
//
//	particles    number of trails (default 160)
//	frequency    field periods across the canvas (default 3.0)
//	octaves      noise octaves (default 4)
//	persistence  amplitude falloff per octave (default 0.5)
//	lacunarity   frequency growth per octave (default 2)
//	step         advection step length in pixels (default 3)
//	width        trail stroke width in pixels (default 1.2)
//	curl         field-to-heading multiplier in turns (default 1.0)
type FlowField struct{}

// NewFlowField creates the noise-advection rule.
func NewFlowField() *FlowField {
	return &FlowField{}
}

// Name implements genart.Generator.
func (*FlowField) Name() string {
	return "flowfield"
}

// Generate implements genart.Generator.
func (g *FlowField) Generate(c *genart.Composer) error {
	cfg := c.Config()
	bounds := c.Bounds()

	// Frequency is expressed in field periods across the canvas so a
	// configuration scales with its resolution.
	longSide := math.Max(bounds.Width(), bounds.Height())
	field := c.Field(genart.FieldParams{
		Frequency:   cfg.Param("frequency", 3.0) / longSide,
		Octaves:     int(cfg.Param("octaves", 4)),
		Persistence: cfg.Param("persistence", 0.5),
		Lacunarity:  cfg.Param("lacunarity", 2),
	})
	particles := c.Stream().Fork("particles")

	count := int(cfg.Param("particles", 160))
	stepLen := cfg.Param("step", 3)
	width := cfg.Param("width", 1.2)
	curl := cfg.Param("curl", 1.0)
	steps := c.Depth() * 6

	// Trails may wander a little past the canvas before they are cut
	// off; the renderer clips them.
	margin := stepLen * 2
	for i := 0; i < count; i++ {
		pos := genart.Pt(
			particles.FloatInRange(bounds.Min.X, bounds.Max.X),
			particles.FloatInRange(bounds.Min.Y, bounds.Max.Y),
		)
		for s := 0; s < steps; s++ {
			heading := field.Eval(pos.X, pos.Y) * curl * 2 * math.Pi
			next := pos.Add(genart.Pt(math.Cos(heading), math.Sin(heading)).Mul(stepLen))

			if err := c.Emit(genart.Segment{
				From:  pos,
				To:    next,
				Width: width,
				Attr:  genart.Attr{Value: field.Unit(pos.X, pos.Y)},
			}); err != nil {
				return err
			}

			pos = next
			if pos.X < bounds.Min.X-margin || pos.X > bounds.Max.X+margin ||
				pos.Y < bounds.Min.Y-margin || pos.Y > bounds.Max.Y+margin {
				break
			}
		}
	}
	return nil
}
