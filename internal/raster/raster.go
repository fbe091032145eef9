// Package raster converts scene geometry into pixels. It provides a
// hard-edged scanline rasterizer with overwrite semantics and an
// antialiased fill path built on golang.org/x/image/vector.
package raster

import "math"

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// SpanFiller is implemented by pixel sinks that can fill a horizontal
// run faster than per-pixel SetPixel calls. The rasterizer hands such
// sinks whole clamped spans.
type SpanFiller interface {
	FillSpan(x0, x1, y int, c RGBA)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer performs hard-edged scanline rasterization with
// overwrite semantics: every covered pixel is set to the fill color,
// replacing whatever was there before. A pixel is covered when its
// center lies inside the shape. Spans are clamped to the rasterizer
// dimensions, so a fill can never write outside the target buffer.
type Rasterizer struct {
	width  int
	height int
	aet    *ActiveEdgeTable
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    NewActiveEdgeTable(),
	}
}

// Fill rasterizes a filled polygon onto a pixmap. The outline is
// closed implicitly when the last point differs from the first.
func (r *Rasterizer) Fill(pm Pixmap, points []Point, rule FillRule, c RGBA) {
	if len(points) < 3 {
		return
	}

	edges := make([]Edge, 0, len(points)+1)
	appendEdge := func(p0, p1 Point) {
		// Horizontal edges never cross a scanline.
		if math.Abs(p1.Y-p0.Y) < 0.001 {
			return
		}
		edges = append(edges, NewEdge(p0, p1))
	}
	for i := 0; i < len(points)-1; i++ {
		appendEdge(points[i], points[i+1])
	}
	if points[0] != points[len(points)-1] {
		appendEdge(points[len(points)-1], points[0])
	}

	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.height {
		y1 = r.height
	}

	for y := y0; y < y1; y++ {
		r.scanline(pm, edges, float64(y)+0.5, y, rule, c)
	}
}

// scanline fills the covered spans of a single scanline. Crossings
// are computed at the pixel-center scan height.
func (r *Rasterizer) scanline(pm Pixmap, edges []Edge, scanY float64, y int, rule FillRule, c RGBA) {
	r.aet.Clear()

	for _, e := range edges {
		if e.y0 <= scanY && scanY < e.y1 {
			r.aet.AddAtY(e, scanY)
		}
	}

	crossings := r.aet.Edges()
	if len(crossings) == 0 {
		return
	}
	r.aet.Sort()

	if rule == FillRuleNonZero {
		r.fillNonZero(pm, crossings, y, c)
	} else {
		r.fillEvenOdd(pm, crossings, y, c)
	}
}

// fillNonZero fills using the non-zero winding rule.
func (r *Rasterizer) fillNonZero(pm Pixmap, crossings []ActiveEdge, y int, c RGBA) {
	winding := 0
	var x1 float64

	for _, cr := range crossings {
		if winding == 0 {
			x1 = cr.x
		}
		winding += cr.dir
		if winding == 0 {
			r.fillSpan(pm, x1, cr.x, y, c)
		}
	}
}

// fillEvenOdd fills using the even-odd rule.
func (r *Rasterizer) fillEvenOdd(pm Pixmap, crossings []ActiveEdge, y int, c RGBA) {
	for i := 0; i+1 < len(crossings); i += 2 {
		r.fillSpan(pm, crossings[i].x, crossings[i+1].x, y, c)
	}
}

// fillSpan fills the pixels of row y whose centers lie in [x1, x2),
// clamped to the rasterizer bounds.
func (r *Rasterizer) fillSpan(pm Pixmap, x1, x2 float64, y int, c RGBA) {
	if y < 0 || y >= r.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	start := int(math.Ceil(x1 - 0.5))
	end := int(math.Ceil(x2 - 0.5))
	if start < 0 {
		start = 0
	}
	if end > r.width {
		end = r.width
	}

	if sf, ok := pm.(SpanFiller); ok {
		sf.FillSpan(start, end, y, c)
		return
	}
	for x := start; x < end; x++ {
		pm.SetPixel(x, y, c)
	}
}

// FillCircle rasterizes a filled circle using exact per-scanline
// spans. A non-positive radius contributes nothing.
func (r *Rasterizer) FillCircle(pm Pixmap, cx, cy, radius float64, c RGBA) {
	if radius <= 0 {
		return
	}

	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.height {
		y1 = r.height
	}

	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		d := radius*radius - dy*dy
		if d <= 0 {
			continue
		}
		dx := math.Sqrt(d)
		r.fillSpan(pm, cx-dx, cx+dx, y, c)
	}
}

// Stroke rasterizes a line segment of the given width as a filled
// quad with square ends. Zero-length segments and non-positive widths
// contribute nothing; widths below one pixel are widened to one so
// hard-edged hairlines stay visible.
func (r *Rasterizer) Stroke(pm Pixmap, p0, p1 Point, width float64, c RGBA) {
	if width <= 0 {
		return
	}
	if width < 1 {
		width = 1
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	// Perpendicular vector
	nx := -dy / length
	ny := dx / length
	offset := width / 2

	quad := []Point{
		{X: p0.X + nx*offset, Y: p0.Y + ny*offset},
		{X: p0.X - nx*offset, Y: p0.Y - ny*offset},
		{X: p1.X - nx*offset, Y: p1.Y - ny*offset},
		{X: p1.X + nx*offset, Y: p1.Y + ny*offset},
	}
	r.Fill(pm, quad, FillRuleNonZero, c)
}
