//go:build arm64 && !purego

package coverage

import (
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/generic"
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"
)
