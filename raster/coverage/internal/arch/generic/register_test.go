package generic

import "testing"

func TestAccumulateKnownPrefixes(t *testing.T) {
	src := []float32{0.25, 0.75, 0, -0.5, -0.1, -0.4}
	dst := make([]uint8, len(src))

	acc := Accumulate(0, src, dst)

	want := []uint8{0x3f, 0xff, 0xff, 0x7f, 0x66, 0x00}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %#02x, want %#02x", i, dst[i], want[i])
		}
	}
	if acc != 0 {
		t.Fatalf("final sum = %v, want 0", acc)
	}
}

func TestAccumulateClampsAndSaturates(t *testing.T) {
	src := []float32{2.5, -5.0}
	dst := make([]uint8, len(src))

	Accumulate(0, src, dst)

	// |2.5| clamps to 1.0, |2.5-5.0| = 2.5 clamps to 1.0.
	if dst[0] != 255 || dst[1] != 255 {
		t.Fatalf("dst = %v, want [255 255]", dst)
	}
}

func TestAccumulateCarriesRunningSum(t *testing.T) {
	dst := make([]uint8, 2)

	acc := Accumulate(0.5, []float32{0.25, 0.25}, dst)

	if dst[0] != 191 || dst[1] != 255 { // trunc(0.75*255), trunc(1.0*255)
		t.Fatalf("dst = %v", dst)
	}
	if acc != 1.0 {
		t.Fatalf("final sum = %v, want 1.0", acc)
	}
}

func TestAccumulateEmpty(t *testing.T) {
	if acc := Accumulate(0.25, nil, nil); acc != 0.25 {
		t.Fatalf("empty input changed sum: %v", acc)
	}
}
