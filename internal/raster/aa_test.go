package raster

import (
	"image"
	"image/color"
	"testing"
)

var aaColor = color.NRGBA{R: 200, G: 100, B: 50, A: 255}

func newAATarget(w, h int) (*image.RGBA, *AAFiller) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	return dst, NewAAFiller(dst)
}

func TestAAFiller_FillPolygonInterior(t *testing.T) {
	dst, f := newAATarget(20, 20)

	f.FillPolygon([]Point{{2, 2}, {18, 2}, {18, 18}, {2, 18}}, aaColor)

	// A fully covered pixel takes the source color exactly.
	got := dst.RGBAAt(10, 10)
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("interior pixel = %v, want %v", got, want)
	}

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel outside the polygon = %v, want untouched", got)
	}
}

func TestAAFiller_EdgeCoverage(t *testing.T) {
	dst, f := newAATarget(20, 20)

	// The left edge runs through the middle of pixel column 2, so
	// those pixels are half covered and blend instead of snapping.
	f.FillPolygon([]Point{{2.5, 2}, {18, 2}, {18, 18}, {2.5, 18}}, aaColor)

	got := dst.RGBAAt(2, 10)
	if got.A == 0 || got.A == 255 {
		t.Errorf("edge pixel alpha = %d, want partial coverage", got.A)
	}
}

func TestAAFiller_ClipsToBounds(t *testing.T) {
	dst, f := newAATarget(10, 10)

	f.FillPolygon([]Point{{-100, -100}, {100, -100}, {100, 100}, {-100, 100}}, aaColor)

	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestAAFiller_LaterShapeWins(t *testing.T) {
	dst, f := newAATarget(10, 10)

	square := []Point{{1, 1}, {9, 1}, {9, 9}, {1, 9}}
	f.FillPolygon(square, color.NRGBA{R: 255, A: 255})
	f.FillPolygon(square, color.NRGBA{B: 255, A: 255})

	got := dst.RGBAAt(5, 5)
	want := color.RGBA{B: 255, A: 255}
	if got != want {
		t.Errorf("pixel after two opaque fills = %v, want the later %v", got, want)
	}
}

func TestAAFiller_FillCircle(t *testing.T) {
	dst, f := newAATarget(20, 20)

	f.FillCircle(10, 10, 6, aaColor)

	if got := dst.RGBAAt(10, 10); got.A != 255 {
		t.Errorf("circle center alpha = %d, want 255", got.A)
	}
	if got := dst.RGBAAt(10, 2); got.A != 0 {
		t.Errorf("pixel outside the circle alpha = %d, want 0", got.A)
	}
}

func TestAAFiller_FillCircleZeroRadius(t *testing.T) {
	dst, f := newAATarget(10, 10)
	f.FillCircle(5, 5, 0, aaColor)

	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("zero-radius circle wrote byte %d", i)
		}
	}
}

func TestAAFiller_StrokeSegment(t *testing.T) {
	dst, f := newAATarget(20, 20)

	f.StrokeSegment(Point{2, 10}, Point{18, 10}, 3, aaColor)

	if got := dst.RGBAAt(10, 10); got.A == 0 {
		t.Error("pixel on the stroked line not covered")
	}
	if got := dst.RGBAAt(10, 3); got.A != 0 {
		t.Error("pixel far from the line was covered")
	}
}

func TestAAFiller_StrokeDegenerate(t *testing.T) {
	dst, f := newAATarget(10, 10)

	f.StrokeSegment(Point{5, 5}, Point{5, 5}, 2, aaColor)
	f.StrokeSegment(Point{1, 1}, Point{9, 9}, 0, aaColor)

	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("degenerate stroke wrote byte %d", i)
		}
	}
}

func TestAAFiller_SubpixelStrokeStillVisible(t *testing.T) {
	dst, f := newAATarget(20, 20)

	f.StrokeSegment(Point{2, 10.5}, Point{18, 10.5}, 0.5, aaColor)

	// Partial coverage thins the line out instead of dropping it.
	if got := dst.RGBAAt(10, 10); got.A == 0 {
		t.Error("sub-pixel stroke left no coverage")
	}
}
