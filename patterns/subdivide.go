package patterns

import (
	genart "github.com/iamkag/Generative-Algorithms"
)

// Subdivide recursively splits the canvas into jittered quadrants and
// fills the leaf regions, colored by the depth at which recursion
// stopped. Leaf cells get a thin outline in a darkened palette color,
// so adjacent cells of similar depth stay distinguishable.
//
// Parameters:
//
//	jitter     asymmetry of each split, in [0, 1] (default 0.35)
//	leaf       probability a cell stops splitting early (default 0.22)
//	inset      leaf margin as a fraction of cell width (default 0.04)
//	edge_gamma gamma applied to darken outline colors (default 1.6)
type Subdivide struct{}

// NewSubdivide creates the recursive quad subdivision rule.
func NewSubdivide() *Subdivide {
	return &Subdivide{}
}

// Name implements genart.Generator.
func (*Subdivide) Name() string {
	return "subdivide"
}

// Generate implements genart.Generator.
func (g *Subdivide) Generate(c *genart.Composer) error {
	return g.split(c, c.Bounds(), c.Depth())
}

// split recurses over one cell. Every call either stops or hands each
// quadrant a strictly smaller depth, and cells below the minimum
// region size stop regardless, so recursion is bounded both ways.
func (g *Subdivide) split(c *genart.Composer, cell genart.Rect, depth int) error {
	if depth <= 0 || cell.Width() < genart.MinRegionSize || cell.Height() < genart.MinRegionSize {
		return nil
	}

	cfg := c.Config()
	stream := c.Stream()

	if depth == 1 || stream.Coin(cfg.Param("leaf", 0.22)) {
		return g.leaf(c, cell, depth)
	}

	jitter := cfg.Param("jitter", 0.35)
	fx := 0.5 + (stream.Float64()-0.5)*jitter
	fy := 0.5 + (stream.Float64()-0.5)*jitter
	for _, child := range cell.SplitQuad(fx, fy) {
		if err := g.split(c, child, depth-1); err != nil {
			return err
		}
	}
	return nil
}

// leaf fills a terminal cell and outlines it. The fill attribute is
// the remaining depth, so the mapper spreads the palette across
// recursion levels; the outline carries an explicit override color,
// the cycled palette stop for this depth darkened by edge_gamma.
func (g *Subdivide) leaf(c *genart.Composer, cell genart.Rect, depth int) error {
	cfg := c.Config()
	inner := cell.Inset(cell.Width() * cfg.Param("inset", 0.04))

	if err := c.Emit(genart.Region{
		Rect: inner,
		Attr: genart.Attr{Value: float64(depth)},
	}); err != nil {
		return err
	}

	edge := cfg.Palette.Cycle(depth).Darken(cfg.Param("edge_gamma", 1.6))
	corners := inner.Corners()
	for i := range corners {
		if err := c.Emit(genart.Segment{
			From:  corners[i],
			To:    corners[(i+1)%len(corners)],
			Width: 1,
			Attr:  genart.Attr{Color: &edge},
		}); err != nil {
			return err
		}
	}
	return nil
}
