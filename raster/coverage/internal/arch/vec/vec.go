// Package vec implements the accumulation kernel on go-highway's portable
// vector API. The same kernel backs the SSE2 and NEON registry entries; the
// lane count comes from the hwy build mode (4 float32 lanes in the default
// 128-bit configuration).
package vec

import "github.com/ajroetker/go-highway/hwy"

// Accumulate processes src in blocks of one vector width. Each block runs a
// Hillis-Steele intra-block scan, adds the running sum carried from earlier
// blocks broadcast across all lanes, then clamps, scales and narrows the
// lanes to alpha bytes. The last lane of each block holds the total through
// that block and becomes the carry for the next. A trailing partial block is
// folded in scalarly.
func Accumulate(acc float32, src []float32, dst []uint8) float32 {
	n := len(src)
	lanes := hwy.MaxLanes[float32]()

	one := hwy.Set[float32](1.0)
	scale := hwy.Set[float32](255.0)
	buf := make([]float32, lanes)

	i := 0
	for ; i+lanes <= n; i += lanes {
		v := hwy.Load(src[i:])
		v = prefixVec(v)
		v = hwy.Add(v, hwy.Set[float32](acc))
		acc = hwy.GetLane(v, lanes-1)

		a := hwy.Mul(hwy.Min(hwy.Abs(v), one), scale)
		hwy.Store(a, buf)
		for j := 0; j < lanes; j++ {
			dst[i+j] = uint8(buf[j])
		}
	}

	for ; i < n; i++ {
		acc += src[i]
		y := acc
		if y < 0 {
			y = -y
		}
		if y > 1 {
			y = 1
		}
		dst[i] = uint8(y * 255.0)
	}

	return acc
}

// prefixVec computes the inclusive prefix sum within one vector using the
// Hillis-Steele ladder: add a copy of the vector slid up by 1 lane, then by
// 2, doubling until the lane count is covered. Steps are unrolled for widths
// up to 16 lanes.
func prefixVec(v hwy.Vec[float32]) hwy.Vec[float32] {
	n := v.NumLanes()

	if n >= 2 {
		v = hwy.Add(v, hwy.SlideUpLanes(v, 1))
	}
	if n >= 4 {
		v = hwy.Add(v, hwy.SlideUpLanes(v, 2))
	}
	if n >= 8 {
		v = hwy.Add(v, hwy.SlideUpLanes(v, 4))
	}
	if n >= 16 {
		v = hwy.Add(v, hwy.SlideUpLanes(v, 8))
	}

	return v
}
