// Package genart provides a deterministic procedural pattern engine for Go.
//
// # Overview
//
// genart turns a compact parameter set — canvas size, random seed, a
// depth/iteration budget, a color palette and named shape parameters — into
// a raster image through iterative or recursive geometric construction.
// The same Config always produces the same pixels, byte for byte.
//
// # Quick Start
//
//	import (
//	    genart "github.com/iamkag/Generative-Algorithms"
//	    "github.com/iamkag/Generative-Algorithms/patterns"
//	)
//
//	cfg := genart.Config{
//	    Seed:    42,
//	    Width:   800,
//	    Height:  600,
//	    Depth:   6,
//	    Palette: genart.NewPalette(genart.Hex("#001f3f"), genart.Hex("#7FDBFF")),
//	}
//
//	pm, err := genart.Generate(cfg, patterns.NewSubdivide())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("output.png")
//
// # Architecture
//
// Generation is a single one-way pass through five stages:
//
//   - Stream: a seeded random source, explicitly threaded — no global state
//   - Field / geometry primitives: noise, subdivision, transforms
//   - Composer: drives a Generator rule, accumulating an ordered Scene
//   - Mapper: assigns palette colors to scene attributes
//   - Renderer: rasterizes the Scene onto a Pixmap
//
// Concrete pattern rules live in the patterns subpackage and implement the
// Generator interface; the engine itself is rule-agnostic.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// # Determinism
//
// Every source of variation is derived from Config.Seed through explicit
// Stream values. Two runs of Generate with the same Config produce
// bit-identical Pixmaps. All rasterization is pure CPU code.
package genart

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
