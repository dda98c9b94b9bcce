package analytic

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-raster/geom"
	"github.com/cwbudde/algo-raster/internal/testutil"
)

// randomOutline draws one closed outline of random lines and quads.
// Self-intersections push the winding past one and exercise the clamp.
func randomOutline(r *Rasterizer, rng *rand.Rand, w, h int) {
	n := 4 + rng.Intn(5)
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float32()*float32(w), rng.Float32()*float32(h))
	}
	cur := pts[0]
	for i := 1; i < n; i++ {
		if rng.Intn(2) == 0 {
			r.DrawLine(cur, pts[i])
		} else {
			ctrl := geom.Pt(rng.Float32()*float32(w), rng.Float32()*float32(h))
			r.DrawQuad(cur, ctrl, pts[i])
		}
		cur = pts[i]
	}
	r.DrawLine(cur, pts[0])
}

func TestPooledRasterizerMatchesFresh(t *testing.T) {
	const w, h = 64, 64
	pool := NewBufferPool()
	pooled := NewRasterizer(w, h, WithPool(pool))
	defer pooled.Release()

	for seed := int64(0); seed < 10; seed++ {
		fresh := NewRasterizer(w, h)
		pooled.Reset(w, h)

		randomOutline(fresh, rand.New(rand.NewSource(seed)), w, h)
		randomOutline(pooled, rand.New(rand.NewSource(seed)), w, h)

		testutil.RequireBytesWithin(t, pooled.Bitmap(), fresh.Bitmap(), 0)
	}
}

func TestResetMatchesFreshAcrossSizes(t *testing.T) {
	reused := NewRasterizer(16, 16)
	sizes := []struct{ w, h int }{{48, 32}, {16, 16}, {80, 80}, {33, 7}}

	for i, sz := range sizes {
		seed := int64(1000 + i)
		fresh := NewRasterizer(sz.w, sz.h)
		reused.Reset(sz.w, sz.h)

		randomOutline(fresh, rand.New(rand.NewSource(seed)), sz.w, sz.h)
		randomOutline(reused, rand.New(rand.NewSource(seed)), sz.w, sz.h)

		testutil.RequireBytesWithin(t, reused.Bitmap(), fresh.Bitmap(), 0)
	}
}
