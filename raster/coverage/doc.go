// Package coverage converts signed-area delta streams into 8-bit alpha
// values — the inner loop that turns accumulated geometric coverage into
// pixel intensity.
//
// For an input of per-sample deltas, the byte written at index i is
//
//	trunc(clamp(|src[0] + src[1] + ... + src[i]|, 0, 1) * 255)
//
// i.e. an inclusive prefix sum mapped through a clamp-and-scale. The scale
// constant is fixed at 255.0 with a truncating conversion.
//
// [Accumulate] dispatches to the best kernel for the current CPU: a block
// kernel doing a parallel intra-block scan with a scalar carry between
// blocks, or the plain scalar loop. [AccumulateScalar] always runs the
// scalar reference. [Accumulator] carries the running sum across calls for
// streaming use.
//
// Inputs of any length are accepted; lengths that are not a multiple of the
// vector width are finished on the scalar path. Input and output must not
// overlap.
package coverage
