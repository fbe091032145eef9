// Command genart renders a built-in pattern rule to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	genart "github.com/iamkag/Generative-Algorithms"
	"github.com/iamkag/Generative-Algorithms/patterns"
)

func main() {
	var (
		seed        = flag.Int64("seed", 1, "random seed")
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 800, "image height")
		depth       = flag.Int("depth", 6, "recursion/iteration budget")
		pattern     = flag.String("pattern", "subdivide", "pattern rule: "+strings.Join(patterns.Names(), ", "))
		palette     = flag.String("palette", "#0b1e3d,#2e86ab,#f6f5ae", "comma-separated hex colors (at least 2)")
		background  = flag.String("background", "#ffffff", "background hex color")
		params      = flag.String("params", "", "shape parameters as name=value[,name=value...]")
		supersample = flag.Int("supersample", 1, "supersampling factor (1-4)")
		hardEdges   = flag.Bool("hard-edges", false, "disable antialiasing")
		output      = flag.String("output", "out.png", "output file")
		verbose     = flag.Bool("v", false, "log engine diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		genart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rule, ok := patterns.Lookup(*pattern)
	if !ok {
		log.Fatalf("Unknown pattern %q; available: %s", *pattern, strings.Join(patterns.Names(), ", "))
	}

	shapeParams, err := parseParams(*params)
	if err != nil {
		log.Fatalf("Bad -params: %v", err)
	}

	cfg := genart.Config{
		Seed:    *seed,
		Width:   *width,
		Height:  *height,
		Depth:   *depth,
		Palette: parsePalette(*palette),
		Params:  shapeParams,
	}

	pm, err := genart.Generate(cfg, rule,
		genart.WithBackground(genart.Hex(*background)),
		genart.WithSupersample(*supersample),
		genart.WithAntialias(!*hardEdges),
	)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s to %s (%dx%d, seed %d)\n", rule.Name(), *output, *width, *height, *seed)
}

// parsePalette splits a comma-separated list of hex colors. Config
// validation rejects palettes that end up too small.
func parsePalette(s string) genart.Palette {
	var colors []genart.RGBA
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colors = append(colors, genart.Hex(part))
	}
	return genart.NewPalette(colors...)
}

// parseParams parses "name=value,name=value" into shape parameters.
func parseParams(s string) (map[string]float64, error) {
	if s == "" {
		return nil, nil
	}
	out := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("expected name=value, got %q", part)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}
