//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"
	"github.com/cwbudde/algo-raster/raster/coverage/internal/arch/vec"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "sse2",
		SIMDLevel:  cpu.SIMDSSE2,
		Priority:   10,
		Accumulate: vec.Accumulate,
	})
}
