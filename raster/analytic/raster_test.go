package analytic

import (
	"bytes"
	"testing"

	"github.com/cwbudde/algo-raster/geom"
)

// drawStrip draws a two-cell-wide full-height strip on a 4x4 grid:
// a top-to-bottom edge at x=1 and a bottom-to-top edge at x=3.
func drawStrip(r *Rasterizer) {
	r.DrawLine(geom.Pt(1, 0), geom.Pt(1, 4))
	r.DrawLine(geom.Pt(3, 4), geom.Pt(3, 0))
}

func TestDrawLineVerticalStrip(t *testing.T) {
	r := NewRasterizer(4, 4)
	drawStrip(r)

	got := r.Bitmap()
	wantRow := []uint8{0, 255, 255, 0}
	for y := 0; y < 4; y++ {
		if !bytes.Equal(got[y*4:(y+1)*4], wantRow) {
			t.Fatalf("row %d = %v, want %v", y, got[y*4:(y+1)*4], wantRow)
		}
	}
}

func TestDrawLineHalfCoveredColumns(t *testing.T) {
	// Edges at x=0.5 and x=1.5 cover the right half of column 0 and the
	// left half of column 1: every cell is half covered.
	r := NewRasterizer(2, 2)
	r.DrawLine(geom.Pt(0.5, 0), geom.Pt(0.5, 2))
	r.DrawLine(geom.Pt(1.5, 2), geom.Pt(1.5, 0))

	got := r.Bitmap()
	want := []uint8{127, 127, 127, 127}
	if !bytes.Equal(got, want) {
		t.Fatalf("bitmap = %v, want %v", got, want)
	}
}

func TestDrawLineShallowSlopeExactCoverage(t *testing.T) {
	// One row, slope 8:1. The area right of the edge in cell k is
	// dyadic, so the expected bytes are exact.
	r := NewRasterizer(8, 1)
	r.DrawLine(geom.Pt(0, 0), geom.Pt(8, 1))

	got := r.Bitmap()
	want := []uint8{15, 47, 79, 111, 143, 175, 207, 239}
	if !bytes.Equal(got, want) {
		t.Fatalf("bitmap = %v, want %v", got, want)
	}
}

func TestDrawLineRowClipping(t *testing.T) {
	clipped := NewRasterizer(4, 4)
	clipped.DrawLine(geom.Pt(1, -2), geom.Pt(1, 6))
	clipped.DrawLine(geom.Pt(3, 6), geom.Pt(3, -2))

	inner := NewRasterizer(4, 4)
	drawStrip(inner)

	if !bytes.Equal(clipped.Bitmap(), inner.Bitmap()) {
		t.Fatal("rows outside the grid changed in-grid coverage")
	}
}

func TestDrawLineOffGridNoop(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.DrawLine(geom.Pt(1, -5), geom.Pt(1, -1))
	r.DrawLine(geom.Pt(1, 20), geom.Pt(1, 30))

	for i, v := range r.Bitmap() {
		if v != 0 {
			t.Fatalf("bitmap[%d] = %d after off-grid lines", i, v)
		}
	}
}

func TestDrawLineHorizontalNoop(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.DrawLine(geom.Pt(0, 1), geom.Pt(5, 1))

	for i, v := range r.Bitmap() {
		if v != 0 {
			t.Fatalf("bitmap[%d] = %d after horizontal line", i, v)
		}
	}
}

// Regression: outline coordinates from a real glyph where the recomputed
// x of a near-flat edge lands within one ulp of a cell boundary. The
// buffer slack has to absorb the resulting writes.
func TestDrawLineEdgeHuggingOutline(t *testing.T) {
	r := NewRasterizer(6, 16)
	r.DrawLine(geom.Pt(5.54, 14.299999), geom.Pt(3.7399998, 13.799999))
	r.DrawLine(geom.Pt(3.7399998, 13.799999), geom.Pt(3.7399998, 0.0))
	r.DrawLine(geom.Pt(3.7399998, 0.0), geom.Pt(0.0, 0.10000038))

	if got := len(r.Bitmap()); got != 6*16 {
		t.Fatalf("bitmap length = %d, want %d", got, 6*16)
	}
}

func TestRectangleWinding(t *testing.T) {
	r := NewRasterizer(8, 8)
	r.DrawLine(geom.Pt(2, 1), geom.Pt(2, 5))
	r.DrawLine(geom.Pt(2, 5), geom.Pt(6, 5))
	r.DrawLine(geom.Pt(6, 5), geom.Pt(6, 1))
	r.DrawLine(geom.Pt(6, 1), geom.Pt(2, 1))

	got := r.Bitmap()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 1 && y < 5
			want := uint8(0)
			if inside {
				want = 255
			}
			if got[y*8+x] != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got[y*8+x], want)
			}
		}
	}

	// Reversed orientation flips every delta's sign; the magnitude
	// mapping makes the image identical.
	rev := NewRasterizer(8, 8)
	rev.DrawLine(geom.Pt(2, 5), geom.Pt(2, 1))
	rev.DrawLine(geom.Pt(6, 1), geom.Pt(6, 5))

	if !bytes.Equal(got, rev.Bitmap()) {
		t.Fatal("reversed winding changed the rendered image")
	}
}

func TestTriangleCoverage(t *testing.T) {
	// Right triangle (0,0) (0,2) (2,2) on a 2x2 grid: cell (0,0) and
	// (1,1) are half covered, (0,1) fully, (1,0) not at all.
	r := NewRasterizer(2, 2)
	r.DrawLine(geom.Pt(0, 0), geom.Pt(0, 2))
	r.DrawLine(geom.Pt(0, 2), geom.Pt(2, 2))
	r.DrawLine(geom.Pt(2, 2), geom.Pt(0, 0))

	got := r.Bitmap()
	want := []uint8{127, 0, 255, 127}
	if !bytes.Equal(got, want) {
		t.Fatalf("bitmap = %v, want %v", got, want)
	}
}

func TestDrawQuadCollinearMatchesLine(t *testing.T) {
	quad := NewRasterizer(4, 4)
	quad.DrawQuad(geom.Pt(0, 0), geom.Pt(1.5, 1.5), geom.Pt(3, 3))

	line := NewRasterizer(4, 4)
	line.DrawLine(geom.Pt(0, 0), geom.Pt(3, 3))

	if !bytes.Equal(quad.Bitmap(), line.Bitmap()) {
		t.Fatal("collinear quad does not match its chord line")
	}
}

func sumCoverage(bm []uint8) int {
	total := 0
	for _, v := range bm {
		total += int(v)
	}
	return total
}

func TestDrawQuadCurveArea(t *testing.T) {
	// Region between the quad (0,0)-(16,16) with control (16,0) and its
	// chord. True area is 2/3 of the control triangle, 85.33 px; the
	// flattened polygon comes in slightly under.
	r := NewRasterizer(16, 16)
	r.DrawQuad(geom.Pt(0, 0), geom.Pt(16, 0), geom.Pt(16, 16))
	r.DrawLine(geom.Pt(16, 16), geom.Pt(0, 0))

	sum := sumCoverage(r.Bitmap())
	lo, hi := 80*255, 86*255
	if sum < lo || sum > hi {
		t.Fatalf("coverage sum = %d, want within [%d, %d]", sum, lo, hi)
	}
}

func TestQuadToleranceControlsSubdivision(t *testing.T) {
	render := func(tol float32) int {
		r := NewRasterizer(16, 16, WithQuadTolerance(tol))
		r.DrawQuad(geom.Pt(0, 0), geom.Pt(16, 0), geom.Pt(16, 16))
		r.DrawLine(geom.Pt(16, 16), geom.Pt(0, 0))
		return sumCoverage(r.Bitmap())
	}

	coarse := render(0.5)
	fine := render(30)

	// Finer subdivision recovers more of the area the chord polygon
	// cuts off the convex side of the curve.
	if fine <= coarse {
		t.Fatalf("coverage sum did not grow with tolerance: coarse=%d fine=%d", coarse, fine)
	}
}

func TestResetClearsAndReuses(t *testing.T) {
	r := NewRasterizer(4, 4)
	drawStrip(r)
	first := r.Bitmap()

	r.Reset(4, 4)
	for i, v := range r.Bitmap() {
		if v != 0 {
			t.Fatalf("bitmap[%d] = %d after Reset", i, v)
		}
	}

	drawStrip(r)
	if !bytes.Equal(r.Bitmap(), first) {
		t.Fatal("redraw after Reset differs from a fresh rasterizer")
	}
}

func TestResetGrows(t *testing.T) {
	r := NewRasterizer(2, 2)
	r.Reset(8, 8)

	if r.Width() != 8 || r.Height() != 8 {
		t.Fatalf("dims = %dx%d, want 8x8", r.Width(), r.Height())
	}

	bm := r.Bitmap()
	if len(bm) != 64 {
		t.Fatalf("bitmap length = %d, want 64", len(bm))
	}
	for i, v := range bm {
		if v != 0 {
			t.Fatalf("bitmap[%d] = %d after growing Reset", i, v)
		}
	}
}

func TestAccumulateIntoMatchesBitmap(t *testing.T) {
	r := NewRasterizer(4, 4)
	drawStrip(r)

	dst := make([]uint8, 16)
	r.AccumulateInto(dst)

	if !bytes.Equal(dst, r.Bitmap()) {
		t.Fatal("AccumulateInto differs from Bitmap")
	}
}

func TestAccumulateIntoPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong destination length")
		}
	}()

	r := NewRasterizer(4, 4)
	r.AccumulateInto(make([]uint8, 15))
}

func TestPooledRasterizerRoundTrip(t *testing.T) {
	pool := NewBufferPool()

	r := NewRasterizer(4, 4, WithPool(pool))
	drawStrip(r)
	first := r.Bitmap()
	r.Release()

	r2 := NewRasterizer(4, 4, WithPool(pool))
	for i, v := range r2.Bitmap() {
		if v != 0 {
			t.Fatalf("pooled bitmap[%d] = %d before drawing", i, v)
		}
	}

	drawStrip(r2)
	if !bytes.Equal(r2.Bitmap(), first) {
		t.Fatal("pooled rasterizer differs from a fresh one")
	}
	r2.Release()
}
