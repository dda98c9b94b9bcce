package testutil

import "math/rand"

// DyadicDeltas generates random coverage deltas that are multiples of
// 1/256 in [-1, 1]. Sums of such values stay exact in float32 no matter
// how the additions associate, so scalar and vectorized prefix sums
// agree byte for byte.
func DyadicDeltas(seed int64, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(rng.Intn(513)-256) / 256.0
	}
	return out
}

// UniformDeltas generates continuous random deltas in
// [-amplitude, amplitude] with a fixed seed for reproducibility.
// Summation order matters for these, so compare results with a
// one-count byte tolerance.
func UniformDeltas(seed int64, amplitude float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// SpanDeltas generates the delta pair of a single covered span: +value
// at start and -value at start+width. Positions outside [0, n) are
// dropped, leaving the span open at that end.
func SpanDeltas(n, start, width int, value float32) []float32 {
	out := make([]float32, n)
	if start >= 0 && start < n {
		out[start] += value
	}
	if end := start + width; end >= 0 && end < n {
		out[end] -= value
	}
	return out
}
