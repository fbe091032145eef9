package genart

import "errors"

// Configuration errors are surfaced by Config.Validate before any generation
// work starts; a failed validation aborts the run with no partial artifact.
var (
	// ErrCanvasSize indicates a non-positive canvas width or height.
	ErrCanvasSize = errors.New("genart: canvas width and height must be positive")

	// ErrDepthRange indicates a negative depth/iteration budget.
	// A budget of zero is valid and yields a background-only image.
	ErrDepthRange = errors.New("genart: depth must not be negative")

	// ErrPaletteSize indicates a palette with fewer than two stops.
	ErrPaletteSize = errors.New("genart: palette needs at least two colors")

	// ErrNilGenerator indicates Generate was called without a pattern rule.
	ErrNilGenerator = errors.New("genart: generator must not be nil")
)

// Engine guard errors.
var (
	// ErrBudgetExhausted indicates a pattern rule emitted more primitives
	// than the step budget derived from the Config allows. Built-in rules
	// stay well under the budget; a custom rule hitting it is looping
	// without decreasing its depth or region measure.
	ErrBudgetExhausted = errors.New("genart: step budget exhausted")

	// ErrColorCount indicates the renderer was handed a color slice whose
	// length does not match the scene.
	ErrColorCount = errors.New("genart: one color per primitive required")
)
