package coverage

import (
	"sync"

	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/raster/coverage/internal/arch/generic"
	archregistry "github.com/cwbudde/algo-raster/raster/coverage/internal/arch/registry"
)

var (
	accumulateImpl     archregistry.AccumulateFn
	accumulateName     string
	accumulateInitOnce sync.Once
)

// Accumulate writes the alpha byte for every prefix sum of src into dst.
// The running sum starts at zero. Both slices must have the same length and
// must not overlap. Panics if lengths differ. Zero-alloc on the scalar path.
func Accumulate(dst []uint8, src []float32) {
	if len(dst) != len(src) {
		panic("coverage: slice length mismatch")
	}

	accumulateInitOnce.Do(initAccumulateKernel)
	accumulateImpl(0, src, dst)
}

// AccumulateScalar is the scalar reference form of [Accumulate]. It always
// runs the plain sequential loop regardless of CPU features, which makes it
// the correctness oracle for the dispatched kernels. Panics if lengths
// differ.
func AccumulateScalar(dst []uint8, src []float32) {
	if len(dst) != len(src) {
		panic("coverage: slice length mismatch")
	}

	generic.Accumulate(0, src, dst)
}

// Accumulator carries the running coverage sum across successive blocks, so
// a long delta stream can be converted in pieces. The zero value is ready to
// use with a sum of zero.
type Accumulator struct {
	acc float32
}

// NewAccumulator returns an Accumulator with a zero running sum.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// ProcessBlock converts one block of deltas, continuing from the current
// running sum. Both slices must have the same length. Panics if lengths
// differ.
func (a *Accumulator) ProcessBlock(dst []uint8, src []float32) {
	if len(dst) != len(src) {
		panic("coverage: slice length mismatch")
	}

	accumulateInitOnce.Do(initAccumulateKernel)
	a.acc = accumulateImpl(a.acc, src, dst)
}

// Sum returns the current running sum.
func (a *Accumulator) Sum() float32 {
	return a.acc
}

// SetSum restores a previously saved running sum.
func (a *Accumulator) SetSum(sum float32) {
	a.acc = sum
}

// Reset clears the running sum to zero.
func (a *Accumulator) Reset() {
	a.acc = 0
}

// KernelName reports which registered kernel [Accumulate] dispatches to on
// this CPU ("sse2", "neon", "generic", ...).
func KernelName() string {
	accumulateInitOnce.Do(initAccumulateKernel)
	return accumulateName
}

func initAccumulateKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("coverage: no accumulate kernel registered (missing generic fallback?)")
	}

	if entry.Accumulate == nil {
		panic("coverage: selected kernel missing Accumulate")
	}

	accumulateImpl = entry.Accumulate
	accumulateName = entry.Name
}
