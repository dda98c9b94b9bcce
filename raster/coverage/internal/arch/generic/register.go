package generic

import (
	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		Accumulate: Accumulate,
	})
}

// Accumulate is the scalar reference kernel: an inclusive prefix sum over
// the deltas, with each running-sum value mapped through
// clamp(|x|, 0, 1) * 255 and truncated to a byte.
func Accumulate(acc float32, src []float32, dst []uint8) float32 {
	for i, d := range src {
		acc += d
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
