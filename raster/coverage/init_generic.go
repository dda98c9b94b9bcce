//go:build !amd64 && !arm64

package coverage

import (
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/generic"
	_ "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"
)
