package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the control-point distance for approximating a quarter
// circle with a cubic Bézier.
const kappa = 0.5522847498307933

// AAFiller rasterizes antialiased shapes into a premultiplied RGBA
// image, compositing them source-over: interior pixels of opaque
// shapes replace what was below exactly, while edge pixels blend by
// coverage. The underlying vector rasterizer clips coverage to the
// image bounds, so a shape can never write outside the target.
type AAFiller struct {
	dst *image.RGBA
	ras *vector.Rasterizer
	src *image.Uniform
}

// NewAAFiller creates a filler targeting dst, whose bounds must be
// anchored at the origin.
func NewAAFiller(dst *image.RGBA) *AAFiller {
	b := dst.Bounds()
	return &AAFiller{
		dst: dst,
		ras: vector.NewRasterizer(b.Dx(), b.Dy()),
		src: &image.Uniform{},
	}
}

// FillPolygon fills a closed polygon. The outline closes itself back
// to the first point.
func (f *AAFiller) FillPolygon(points []Point, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	f.reset()
	f.ras.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		f.ras.LineTo(float32(p.X), float32(p.Y))
	}
	f.ras.ClosePath()
	f.draw(c)
}

// FillCircle fills a circle approximated by four cubic Bézier arcs.
// A non-positive radius contributes nothing.
func (f *AAFiller) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	f.reset()

	k := radius * kappa
	f.ras.MoveTo(float32(cx), float32(cy-radius))
	f.ras.CubeTo(
		float32(cx+k), float32(cy-radius),
		float32(cx+radius), float32(cy-k),
		float32(cx+radius), float32(cy))
	f.ras.CubeTo(
		float32(cx+radius), float32(cy+k),
		float32(cx+k), float32(cy+radius),
		float32(cx), float32(cy+radius))
	f.ras.CubeTo(
		float32(cx-k), float32(cy+radius),
		float32(cx-radius), float32(cy+k),
		float32(cx-radius), float32(cy))
	f.ras.CubeTo(
		float32(cx-radius), float32(cy-k),
		float32(cx-k), float32(cy-radius),
		float32(cx), float32(cy-radius))
	f.ras.ClosePath()
	f.draw(c)
}

// StrokeSegment fills a line segment of the given width as a quad
// with square ends. Widths below one pixel thin out through partial
// coverage rather than disappearing.
func (f *AAFiller) StrokeSegment(p0, p1 Point, width float64, c color.NRGBA) {
	if width <= 0 {
		return
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	nx := -dy / length
	ny := dx / length
	offset := width / 2

	f.FillPolygon([]Point{
		{X: p0.X + nx*offset, Y: p0.Y + ny*offset},
		{X: p0.X - nx*offset, Y: p0.Y - ny*offset},
		{X: p1.X - nx*offset, Y: p1.Y - ny*offset},
		{X: p1.X + nx*offset, Y: p1.Y + ny*offset},
	}, c)
}

func (f *AAFiller) reset() {
	b := f.dst.Bounds()
	f.ras.Reset(b.Dx(), b.Dy())
}

func (f *AAFiller) draw(c color.NRGBA) {
	f.src.C = c
	f.ras.Draw(f.dst, f.dst.Bounds(), f.src, image.Point{})
}
