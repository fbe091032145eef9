package patterns

import (
	"math"

	genart "github.com/iamkag/Generative-Algorithms"
)

// Swarm iterates a particle population attracted toward a sequence of
// stream-drawn targets, drawing each particle's path as segments and
// capping it with an oriented triangle marker. Velocities blend
// inertia, attraction toward the current target and random jitter;
// positions are clamped to the canvas every iteration. The depth
// budget is the iteration count.
//
// Parameters:
//
//	population  number of particles (default 48)
//	inertia     velocity carried between iterations (default 0.82)
//	attraction  pull toward the target per iteration (default 0.06)
//	jitter      random velocity kick in pixels (default 2.5)
//	retarget    iterations between target moves (default 12)
//	width       trail stroke width in pixels (default 1)
//	marker      triangle marker size in pixels (default 5)
type Swarm struct{}

// NewSwarm creates the particle swarm rule.
func NewSwarm() *Swarm {
	return &Swarm{}
}

// Name implements genart.Generator.
func (*Swarm) Name() string {
	return "swarm"
}

type swarmParticle struct {
	pos genart.Point
	vel genart.Point
}

// Generate implements genart.Generator.
func (g *Swarm) Generate(c *genart.Composer) error {
	cfg := c.Config()
	bounds := c.Bounds()
	stream := c.Stream()

	population := int(cfg.Param("population", 48))
	inertia := cfg.Param("inertia", 0.82)
	attraction := cfg.Param("attraction", 0.06)
	jitter := cfg.Param("jitter", 2.5)
	retarget := int(cfg.Param("retarget", 12))
	if retarget < 1 {
		retarget = 1
	}
	width := cfg.Param("width", 1)

	particles := make([]swarmParticle, population)
	for i := range particles {
		particles[i].pos = genart.Pt(
			stream.FloatInRange(bounds.Min.X, bounds.Max.X),
			stream.FloatInRange(bounds.Min.Y, bounds.Max.Y),
		)
	}

	target := bounds.Center()
	iterations := c.Depth()
	for iter := 0; iter < iterations; iter++ {
		if iter%retarget == 0 {
			target = genart.Pt(
				stream.FloatInRange(bounds.Min.X, bounds.Max.X),
				stream.FloatInRange(bounds.Min.Y, bounds.Max.Y),
			)
		}

		for i := range particles {
			p := &particles[i]
			pull := target.Sub(p.pos).Mul(attraction)
			kick := genart.Pt(
				stream.FloatInRange(-jitter, jitter),
				stream.FloatInRange(-jitter, jitter),
			)
			p.vel = p.vel.Mul(inertia).Add(pull).Add(kick)

			next := clampToRect(p.pos.Add(p.vel), bounds)
			if err := c.Emit(genart.Segment{
				From:  p.pos,
				To:    next,
				Width: width,
				Attr:  genart.Attr{Value: float64(iter) / float64(iterations)},
			}); err != nil {
				return err
			}
			p.pos = next
		}
	}

	return g.markers(c, particles)
}

// markers caps each particle's trail with a triangle pointing along
// its final velocity, colored by final speed.
func (g *Swarm) markers(c *genart.Composer, particles []swarmParticle) error {
	size := c.Config().Param("marker", 5)
	if size <= 0 {
		return nil
	}

	// Unit triangle pointing along +x, placed per particle by an
	// affine transform.
	base := []genart.Point{
		genart.Pt(1, 0),
		genart.Pt(-0.5, 0.6),
		genart.Pt(-0.5, -0.6),
	}

	for _, p := range particles {
		heading := math.Atan2(p.vel.Y, p.vel.X)
		m := genart.Translate(p.pos.X, p.pos.Y).
			Multiply(genart.Rotate(heading)).
			Multiply(genart.Scale(size, size))

		pts := make([]genart.Point, len(base))
		for i, bp := range base {
			pts[i] = m.TransformPoint(bp)
		}
		if err := c.Emit(genart.Polygon{
			Points: pts,
			Attr:   genart.Attr{Value: p.vel.Length()},
		}); err != nil {
			return err
		}
	}
	return nil
}

// clampToRect clamps a point into the rectangle, component-wise.
func clampToRect(p genart.Point, r genart.Rect) genart.Point {
	return genart.Pt(
		math.Min(math.Max(p.X, r.Min.X), r.Max.X),
		math.Min(math.Max(p.Y, r.Min.Y), r.Max.Y),
	)
}
