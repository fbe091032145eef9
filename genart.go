package genart

import (
	"fmt"
	"time"
)

// Generate runs the whole pipeline: validate the configuration,
// compose the scene by driving the pattern rule, assign colors, and
// rasterize. It is a single synchronous pass; the returned pixmap is
// the only artifact, ready for the caller to encode or save.
//
// Validation failures abort the run before any generation work, with
// an error wrapping ErrCanvasSize, ErrDepthRange or ErrPaletteSize.
// Given the same Config, rule and options, Generate always returns a
// bit-identical pixmap.
func Generate(cfg Config, g Generator, opts ...Option) (*Pixmap, error) {
	start := time.Now()

	scene, err := Compose(cfg, g)
	if err != nil {
		return nil, err
	}

	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := NewMapper(cfg.Palette)
	m.SetSpace(o.space)
	if o.domain != nil {
		m.SetDomain(o.domain.Min, o.domain.Max)
	} else {
		m.FitScene(scene)
	}
	colors := m.Assign(scene)

	pm, err := NewRenderer(opts...).Render(scene, colors, cfg)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", g.Name(), err)
	}

	Logger().Info("image generated",
		"rule", g.Name(),
		"seed", cfg.Seed,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"primitives", scene.Len(),
		"elapsed", time.Since(start))

	return pm, nil
}
