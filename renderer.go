package genart

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/iamkag/Generative-Algorithms/internal/raster"
)

// Renderer rasterizes a composed scene onto a pixel buffer. The
// canvas is filled with the background color first, then primitives
// are painted strictly in scene order, so later primitives win
// wherever shapes overlap. Geometry reaching past the canvas is
// clipped, never rejected.
//
// Rendering is pure CPU work and fully deterministic: the same scene,
// colors and options always produce the same bytes.
type Renderer struct {
	opts runOptions
}

// NewRenderer creates a renderer with the given options applied over
// the defaults (white background, antialiasing on, no supersampling).
func NewRenderer(opts ...Option) *Renderer {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render rasterizes the scene onto a fresh pixmap of the configured
// canvas size. colors supplies one color per primitive in scene
// order, normally produced by Mapper.Assign. The whole buffer is
// populated: background first, then every primitive in order.
func (r *Renderer) Render(scene *Scene, colors []RGBA, cfg Config) (*Pixmap, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasSize, cfg.Width, cfg.Height)
	}
	if scene.Len() != len(colors) {
		return nil, fmt.Errorf("%w: %d primitives, %d colors",
			ErrColorCount, scene.Len(), len(colors))
	}

	start := time.Now()
	scale := float64(r.opts.supersample)
	w := cfg.Width * r.opts.supersample
	h := cfg.Height * r.opts.supersample

	var out *Pixmap
	if r.opts.antialias {
		out = r.renderAA(scene, colors, w, h, scale, cfg)
	} else {
		out = r.renderHard(scene, colors, w, h, scale, cfg)
	}

	Logger().Debug("scene rendered",
		"primitives", scene.Len(),
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"supersample", r.opts.supersample,
		"antialias", r.opts.antialias,
		"elapsed", time.Since(start))

	return out, nil
}

// renderAA paints with coverage-based antialiasing into a
// premultiplied working image, then converts (and, when
// supersampling, downscales) into the straight-alpha pixmap.
func (r *Renderer) renderAA(scene *Scene, colors []RGBA, w, h int, scale float64, cfg Config) *Pixmap {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stddraw.Draw(img, img.Bounds(),
		image.NewUniform(toNRGBA(r.opts.background)), image.Point{}, stddraw.Src)

	filler := raster.NewAAFiller(img)
	for i, p := range scene.Primitives() {
		c := toNRGBA(colors[i])
		switch v := p.(type) {
		case Dot:
			radius := v.Radius
			if radius < 0.5 {
				radius = 0.5
			}
			filler.FillCircle(v.Center.X*scale, v.Center.Y*scale, radius*scale, c)
		case Segment:
			filler.StrokeSegment(scalePt(v.From, scale), scalePt(v.To, scale), v.Width*scale, c)
		case Polygon:
			filler.FillPolygon(scalePts(v.Points, scale), c)
		case Region:
			corners := v.Rect.Corners()
			filler.FillPolygon(scalePts(corners[:], scale), c)
		}
	}

	return resolve(img, cfg.Width, cfg.Height)
}

// renderHard paints hard-edged pixels straight into a pixmap: a pixel
// is either the primitive's color or untouched, with no edge
// blending.
func (r *Renderer) renderHard(scene *Scene, colors []RGBA, w, h int, scale float64, cfg Config) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Clear(r.opts.background)

	rz := raster.NewRasterizer(w, h)
	tgt := rasterTarget{pm}
	for i, p := range scene.Primitives() {
		c := raster.RGBA(colors[i])
		switch v := p.(type) {
		case Dot:
			// A sub-pixel dot lands on exactly one pixel.
			if v.Radius*scale <= 0.5 {
				pm.SetPixel(int(math.Floor(v.Center.X*scale)), int(math.Floor(v.Center.Y*scale)), colors[i])
				continue
			}
			rz.FillCircle(tgt, v.Center.X*scale, v.Center.Y*scale, v.Radius*scale, c)
		case Segment:
			rz.Stroke(tgt, scalePt(v.From, scale), scalePt(v.To, scale), v.Width*scale, c)
		case Polygon:
			rz.Fill(tgt, scalePts(v.Points, scale), raster.FillRuleNonZero, c)
		case Region:
			corners := v.Rect.Corners()
			rz.Fill(tgt, scalePts(corners[:], scale), raster.FillRuleNonZero, c)
		}
	}

	if r.opts.supersample == 1 {
		return pm
	}
	return resolve(pm.ToImage(), cfg.Width, cfg.Height)
}

// resolve converts a working image to a straight-alpha pixmap of the
// target size, downscaling with Catmull-Rom when the source was
// rendered at a supersampled resolution.
func resolve(src image.Image, width, height int) *Pixmap {
	out := NewPixmap(width, height)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	sb := src.Bounds()
	if sb.Dx() == width && sb.Dy() == height {
		stddraw.Draw(dst, dst.Bounds(), src, image.Point{}, stddraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	}

	copy(out.data, dst.Pix)
	return out
}

// rasterTarget adapts a Pixmap to the internal rasterizer's pixel
// sink. The pixmap's own bounds check backs up the rasterizer's span
// clamping, so no primitive can write outside the buffer.
type rasterTarget struct {
	pm *Pixmap
}

func (t rasterTarget) Width() int  { return t.pm.Width() }
func (t rasterTarget) Height() int { return t.pm.Height() }

func (t rasterTarget) SetPixel(x, y int, c raster.RGBA) {
	t.pm.SetPixel(x, y, RGBA(c))
}

func (t rasterTarget) FillSpan(x0, x1, y int, c raster.RGBA) {
	t.pm.FillSpan(x0, x1, y, RGBA(c))
}

func toNRGBA(c RGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func scalePt(p Point, s float64) raster.Point {
	return raster.Point{X: p.X * s, Y: p.Y * s}
}

func scalePts(pts []Point, s float64) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = scalePt(p, s)
	}
	return out
}
