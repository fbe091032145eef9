package genart

import "fmt"

// MinRegionSize is the smallest region dimension, in pixels, that
// recursive rules may keep splitting. Rules treat any region smaller
// than this as exhausted regardless of remaining depth.
const MinRegionSize = 1.0

// Generator is a pattern rule: it drives iteration or recursion over
// geometry and field primitives, emitting scene primitives through the
// composer as it goes.
//
// A rule must terminate for every depth budget: each recursion or
// iteration step has to strictly decrease the remaining depth or
// shrink the region it works on below MinRegionSize. The composer's
// step budget backstops rules that fail to do so.
type Generator interface {
	// Name identifies the rule in logs and error messages.
	Name() string

	// Generate builds the scene by emitting primitives through the
	// composer. Any Emit error must be returned unmodified so the
	// run can abort.
	Generate(c *Composer) error
}

// Composer drives a pattern rule over a configuration and accumulates
// the scene it emits. The composer owns the scene exclusively during
// composition; Compose hands it over read-only when the rule finishes.
type Composer struct {
	cfg    Config
	scene  *Scene
	stream *Stream
	steps  int
	budget int
}

// NewComposer creates a composer for a validated configuration. Most
// callers use Compose or Generate instead; constructing a composer
// directly is useful when unit testing a rule in isolation.
func NewComposer(cfg Config) *Composer {
	return &Composer{
		cfg:    cfg,
		scene:  NewScene(),
		stream: cfg.Stream(),
		budget: stepBudget(cfg),
	}
}

// stepBudget bounds how many primitives a rule may emit: a flat floor
// plus a per-pixel allowance, so large canvases may carry
// proportionally larger scenes.
func stepBudget(cfg Config) int {
	return 64*1024 + 16*cfg.Width*cfg.Height
}

// Config returns the configuration driving this composition.
func (c *Composer) Config() Config {
	return c.cfg
}

// Bounds returns the canvas rectangle primitives should target.
func (c *Composer) Bounds() Rect {
	return c.cfg.Bounds()
}

// Depth returns the configured depth/iteration budget.
func (c *Composer) Depth() int {
	return c.cfg.Depth
}

// Stream returns the root random stream for this composition. The
// stream is stateful and shared: rules needing isolated randomness for
// sub-processes should Fork it.
func (c *Composer) Stream() *Stream {
	return c.stream
}

// Field creates a noise field for this composition. The field is
// seeded from a fixed fork of the composition stream, so it depends
// only on the configured seed and the parameters, not on how much
// randomness the rule has already consumed.
func (c *Composer) Field(params FieldParams) *Field {
	return NewField(c.stream.Fork("field"), params)
}

// Scene returns the scene composed so far.
func (c *Composer) Scene() *Scene {
	return c.scene
}

// Steps returns how many emission steps the rule has used.
func (c *Composer) Steps() int {
	return c.steps
}

// Emit appends a primitive to the scene, charging one step against
// the composition budget. Degenerate primitives are dropped by the
// scene but still cost their step. Emit fails with ErrBudgetExhausted
// once the budget is used up; rules must propagate that error.
func (c *Composer) Emit(p Primitive) error {
	if c.steps >= c.budget {
		return fmt.Errorf("%w: %d steps", ErrBudgetExhausted, c.budget)
	}
	c.steps++
	c.scene.Add(p)
	return nil
}

// Compose validates the configuration, runs the rule, and returns the
// finished scene. A depth of zero short-circuits to an empty scene
// without invoking the rule, so every rule yields a background-only
// image at depth zero.
func Compose(cfg Config, g Generator) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGenerator
	}

	c := NewComposer(cfg)

	if cfg.Depth == 0 {
		Logger().Debug("depth 0, composing empty scene", "rule", g.Name())
		return c.scene, nil
	}

	Logger().Debug("composing scene",
		"rule", g.Name(),
		"depth", cfg.Depth,
		"seed", cfg.Seed,
		"budget", c.budget)

	if err := g.Generate(c); err != nil {
		return nil, fmt.Errorf("compose %s: %w", g.Name(), err)
	}

	Logger().Info("scene composed",
		"rule", g.Name(),
		"primitives", c.scene.Len(),
		"rejected", c.scene.Rejected(),
		"steps", c.steps)

	return c.scene, nil
}
