//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl on other architectures reports no SIMD features,
// so only the generic coverage kernel is eligible.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
