package genart

// Option configures a generation run beyond what the Configuration
// itself carries. Options tune how the scene is turned into pixels;
// they never affect which primitives are generated.
//
// Example:
//
//	// Default rendering
//	pm, err := genart.Generate(cfg, rule)
//
//	// Dark background, 2x supersampling
//	pm, err := genart.Generate(cfg, rule,
//		genart.WithBackground(genart.Black),
//		genart.WithSupersample(2))
type Option func(*runOptions)

// runOptions holds optional configuration for a generation run.
type runOptions struct {
	background  RGBA
	space       Space
	domain      *Domain
	antialias   bool
	supersample int
}

// defaultRunOptions returns the default run options.
func defaultRunOptions() runOptions {
	return runOptions{
		background:  White,
		space:       SpaceSRGB,
		antialias:   true,
		supersample: 1,
	}
}

// WithBackground sets the color the canvas is filled with before any
// primitive is drawn. The default is white.
func WithBackground(c RGBA) Option {
	return func(o *runOptions) {
		o.background = c
	}
}

// WithColorSpace selects the space palette interpolation happens in.
// The default, SpaceSRGB, blends component-wise in gamma-encoded sRGB.
func WithColorSpace(s Space) Option {
	return func(o *runOptions) {
		o.space = s
	}
}

// WithDomain fixes the attribute domain for color mapping instead of
// fitting it to the attribute range observed in the scene.
func WithDomain(min, max float64) Option {
	return func(o *runOptions) {
		o.domain = &Domain{Min: min, Max: max}
	}
}

// WithAntialias toggles edge antialiasing. It is enabled by default;
// disabling it produces hard-edged pixel output.
func WithAntialias(enabled bool) Option {
	return func(o *runOptions) {
		o.antialias = enabled
	}
}

// WithSupersample renders at factor times the configured size and
// downscales to the target size with a high-quality filter. Factors
// are clamped to [1, 4]; 1 disables supersampling.
func WithSupersample(factor int) Option {
	return func(o *runOptions) {
		if factor < 1 {
			factor = 1
		}
		if factor > 4 {
			factor = 4
		}
		o.supersample = factor
	}
}
