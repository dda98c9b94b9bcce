//go:build amd64 && !purego

package coverage

import (
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"   // initialize backend registry
)
