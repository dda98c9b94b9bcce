package coverage_test

import (
	"fmt"

	"github.com/cwbudde/algo-raster/raster/coverage"
)

func ExampleAccumulate() {
	deltas := []float32{0.25, 0.75, 0, -0.5, -0.1, -0.4}
	alpha := make([]uint8, len(deltas))
	coverage.Accumulate(alpha, deltas)
	fmt.Printf("% 02x\n", alpha)

	// Output:
	// 3f ff ff 7f 66 00
}

func ExampleAccumulator() {
	rows := [][]float32{
		{0.5, 0, 0.5, 0},
		{-0.5, 0, -0.5, 0},
	}

	acc := coverage.NewAccumulator()
	for _, row := range rows {
		alpha := make([]uint8, len(row))
		acc.ProcessBlock(alpha, row)
		fmt.Printf("% 02x\n", alpha)
	}

	// Output:
	// 7f 7f ff ff
	// 7f 7f 00 00
}
