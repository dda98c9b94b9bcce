// Package analytic rasterizes line and quadratic Bezier outlines into
// signed-area coverage deltas. Each drawn edge deposits per-cell deltas
// proportional to the exact area it sweeps; the final alpha image is
// produced by running the accumulation kernel over the delta buffer.
package analytic

import (
	"math"

	"github.com/cwbudde/algo-raster/geom"
	"github.com/cwbudde/algo-raster/raster/coverage"
)

// Curves whose squared deviation from their chord falls below this are
// drawn as a single line. With the default tolerance the subdivision
// count would be 1 there anyway.
const flatnessSq = 0.333

// Option configures a Rasterizer.
type Option func(*config)

type config struct {
	quadTol float32
	pool    *BufferPool
}

func defaultConfig() config {
	return config{quadTol: 3.0}
}

// WithQuadTolerance sets the Bezier subdivision density. Higher values
// produce more segments per curve. Non-positive values are ignored.
func WithQuadTolerance(tol float32) Option {
	return func(c *config) {
		if tol > 0 {
			c.quadTol = tol
		}
	}
}

// WithPool draws the accumulation buffer from p instead of allocating.
// Call Release to hand the buffer back.
func WithPool(p *BufferPool) Option {
	return func(c *config) {
		c.pool = p
	}
}

// Rasterizer accumulates signed-area coverage deltas for a w by h pixel
// grid. Draw edges with DrawLine and DrawQuad, then read the alpha image
// with Bitmap or AccumulateInto. A Rasterizer is not safe for concurrent
// use.
type Rasterizer struct {
	w, h    int
	a       []float32
	quadTol float32
	pool    *BufferPool
	pooled  *Buffer
}

// NewRasterizer returns a zeroed Rasterizer for a width by height grid.
// Negative dimensions are treated as zero.
func NewRasterizer(width, height int, opts ...Option) *Rasterizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	r := &Rasterizer{
		w:       width,
		h:       height,
		quadTol: cfg.quadTol,
		pool:    cfg.pool,
	}

	// One delta can land one cell past the end of the last row; the
	// slack keeps that write in bounds.
	need := width*height + 4
	if r.pool != nil {
		r.pooled = r.pool.Get(need)
		r.a = r.pooled.Cells()
	} else {
		r.a = make([]float32, need)
	}

	return r
}

// Width returns the pixel width of the grid.
func (r *Rasterizer) Width() int {
	return r.w
}

// Height returns the pixel height of the grid.
func (r *Rasterizer) Height() int {
	return r.h
}

// DrawLine accumulates the coverage deltas of the directed line from p0
// to p1. Winding is carried by the sign: top-to-bottom edges add, bottom-
// to-top edges subtract. Rows outside [0, h) are clipped; callers keep x
// within [0, w].
func (r *Rasterizer) DrawLine(p0, p1 geom.Point) {
	if p0.Y == p1.Y {
		return
	}

	dir := float32(1)
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)
	x := p0.X

	y0 := int(p0.Y)
	if p0.Y < 0 {
		x -= p0.Y * dxdy
		y0 = 0
	}

	yLimit := int(math.Ceil(float64(p1.Y)))
	if yLimit > r.h {
		yLimit = r.h
	}

	for y := y0; y < yLimit; y++ {
		linestart := y * r.w
		dy := min(float32(y+1), p1.Y) - max(float32(y), p0.Y)
		xnext := x + dxdy*dy
		d := dy * dir

		x0, x1 := x, xnext
		if x > xnext {
			x0, x1 = xnext, x
		}

		x0floor := float32(math.Floor(float64(x0)))
		x0i := int(x0floor)
		x1ceil := float32(math.Ceil(float64(x1)))
		x1i := int(x1ceil)

		if x1i <= x0i+1 {
			// The span stays inside one cell.
			xmf := 0.5*(x+xnext) - x0floor
			r.a[linestart+x0i] += d - d*xmf
			r.a[linestart+x0i+1] += d * xmf
		} else {
			// The span crosses cell boundaries; split the area into
			// the first partial cell, full interior cells, and the
			// last partial cell.
			s := 1 / (x1 - x0)
			x0f := x0 - x0floor
			a0 := 0.5 * s * (1 - x0f) * (1 - x0f)
			x1f := x1 - x1ceil + 1
			am := 0.5 * s * x1f * x1f

			r.a[linestart+x0i] += d * a0
			if x1i == x0i+2 {
				r.a[linestart+x0i+1] += d * (1 - a0 - am)
			} else {
				a1 := s * (1.5 - x0f)
				r.a[linestart+x0i+1] += d * (a1 - a0)
				for xi := x0i + 2; xi < x1i-1; xi++ {
					r.a[linestart+xi] += d * s
				}
				a2 := a1 + float32(x1i-x0i-3)*s
				r.a[linestart+x1i-1] += d * (1 - a2 - am)
			}
			r.a[linestart+x1i] += d * am
		}

		x = xnext
	}
}

// DrawQuad accumulates the coverage deltas of the quadratic Bezier from
// p0 to p2 with control point ctrl. The curve is flattened into line
// segments; the segment count grows with the curve's deviation from its
// chord and with the configured tolerance.
func (r *Rasterizer) DrawQuad(p0, ctrl, p2 geom.Point) {
	devx := p0.X - 2*ctrl.X + p2.X
	devy := p0.Y - 2*ctrl.Y + p2.Y
	devsq := devx*devx + devy*devy
	if devsq < flatnessSq {
		r.DrawLine(p0, p2)
		return
	}

	nf := float32(math.Sqrt(float64(r.quadTol * devsq)))
	nf = float32(math.Sqrt(float64(nf)))
	n := 1 + int(nf)

	p := p0
	nrecip := 1 / float32(n)
	t := float32(0)
	for i := 0; i < n-1; i++ {
		t += nrecip
		pn := geom.Lerp(t, geom.Lerp(t, p0, ctrl), geom.Lerp(t, ctrl, p2))
		r.DrawLine(p, pn)
		p = pn
	}
	r.DrawLine(p, p2)
}

// Bitmap accumulates the delta buffer into a freshly allocated alpha
// image of w*h bytes, row-major, 0 = empty and 255 = fully covered.
func (r *Rasterizer) Bitmap() []uint8 {
	dst := make([]uint8, r.w*r.h)
	coverage.Accumulate(dst, r.a[:r.w*r.h])

	return dst
}

// AccumulateInto is the allocation-free form of Bitmap. dst must have
// exactly w*h bytes. Panics if the length differs.
func (r *Rasterizer) AccumulateInto(dst []uint8) {
	if len(dst) != r.w*r.h {
		panic("analytic: bitmap length mismatch")
	}

	coverage.Accumulate(dst, r.a[:r.w*r.h])
}

// Reset clears the rasterizer for a new width by height grid, reusing the
// accumulation buffer when it is large enough.
func (r *Rasterizer) Reset(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	r.w, r.h = width, height
	need := width*height + 4

	if r.pooled != nil {
		r.pooled.Resize(need)
		r.pooled.Zero()
		r.a = r.pooled.Cells()
		return
	}

	if cap(r.a) >= need {
		r.a = r.a[:need]
		clear(r.a)
		return
	}

	r.a = make([]float32, need)
}

// Release returns a pooled accumulation buffer to its pool. The
// Rasterizer must not be used afterwards. No-op when no pool is attached.
func (r *Rasterizer) Release() {
	if r.pool == nil || r.pooled == nil {
		return
	}

	r.pool.Put(r.pooled)
	r.pooled = nil
	r.a = nil
}
