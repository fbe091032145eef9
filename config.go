package genart

import "fmt"

// Config is the immutable record of one generation run. It fully
// determines the output: identical configurations produce identical
// pixel buffers. Construct it once per run and treat it as read-only.
type Config struct {
	// Seed initializes the random stream every pattern rule draws
	// from.
	Seed int64

	// Width and Height give the canvas size in pixels. Both must be
	// positive.
	Width, Height int

	// Depth is the recursion or iteration budget handed to the
	// pattern rule. Zero is valid and produces a background-only
	// image.
	Depth int

	// Palette supplies the colors attribute values map to. At least
	// two colors are required.
	Palette Palette

	// Params carries named numeric parameters for the pattern rule.
	// Keys are rule-specific; rules ignore keys they do not
	// recognize. May be nil.
	Params map[string]float64
}

// Param returns the named shape parameter, or fallback when the
// parameter is absent.
func (c Config) Param(name string, fallback float64) float64 {
	if v, ok := c.Params[name]; ok {
		return v
	}
	return fallback
}

// Validate checks the configuration before any generation work
// begins. The returned error wraps ErrCanvasSize, ErrDepthRange, or
// ErrPaletteSize. Nothing is generated from an invalid configuration.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrCanvasSize, c.Width, c.Height)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: %d", ErrDepthRange, c.Depth)
	}
	if c.Palette.Len() < 2 {
		return fmt.Errorf("%w: %d stops", ErrPaletteSize, c.Palette.Len())
	}
	return nil
}

// Bounds returns the canvas rectangle: origin at the top-left corner,
// x growing right and y growing down.
func (c Config) Bounds() Rect {
	return RectWH(0, 0, float64(c.Width), float64(c.Height))
}

// Stream creates the root random stream for this configuration.
func (c Config) Stream() *Stream {
	return NewStream(c.Seed)
}
