package coverage

import (
	"strconv"
	"testing"
)

// makeBenchDeltas builds a winding-style delta buffer: coverage ramps to
// full over eight cells and back to zero over the next eight, similar to
// the span structure a glyph rasterizer emits.
func makeBenchDeltas(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		switch i % 16 {
		case 0:
			out[i] = 0.25
		case 1:
			out[i] = 0.75
		case 8:
			out[i] = -0.5
		case 9:
			out[i] = -0.5
		}
	}

	return out
}

func BenchmarkAccumulate(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		src := makeBenchDeltas(n)
		dst := make([]uint8, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))

			for range b.N {
				Accumulate(dst, src)
			}
		})
	}
}

func BenchmarkAccumulateScalar(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		src := makeBenchDeltas(n)
		dst := make([]uint8, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))

			for range b.N {
				AccumulateScalar(dst, src)
			}
		})
	}
}

func BenchmarkAccumulatorStream(b *testing.B) {
	const rows, width = 64, 256

	src := makeBenchDeltas(rows * width)
	dst := make([]uint8, rows*width)

	b.ReportAllocs()
	b.SetBytes(int64(rows * width * 4))

	for range b.N {
		acc := NewAccumulator()
		for r := 0; r < rows; r++ {
			acc.ProcessBlock(dst[r*width:(r+1)*width], src[r*width:(r+1)*width])
		}
	}
}
