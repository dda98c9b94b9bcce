//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"
	"github.com/cwbudde/algo-raster/raster/coverage/internal/arch/vec"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		Accumulate: vec.Accumulate,
	})
}
