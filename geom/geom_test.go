package geom

import (
	"math"
	"testing"
)

const eps = 1e-6

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func pointsAlmostEqual(a, b Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestLerp(t *testing.T) {
	p0 := Pt(1, 2)
	p1 := Pt(3, 6)

	tests := []struct {
		name string
		t    float32
		want Point
	}{
		{"start", 0, Pt(1, 2)},
		{"end", 1, Pt(3, 6)},
		{"mid", 0.5, Pt(2, 4)},
		{"quarter", 0.25, Pt(1.5, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.t, p0, p1)
			if !pointsAlmostEqual(got, tt.want) {
				t.Fatalf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestIdentityApply(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, -2), Pt(3.5, 7.25)}
	id := Identity()
	for _, p := range pts {
		if got := id.Apply(p); got != p {
			t.Fatalf("Identity().Apply(%v) = %v", p, got)
		}
	}
}

func TestTranslateScale(t *testing.T) {
	p := Pt(2, 3)

	if got := Translate(10, -1).Apply(p); !pointsAlmostEqual(got, Pt(12, 2)) {
		t.Fatalf("translate: got %v", got)
	}
	if got := Scale(2, 0.5).Apply(p); !pointsAlmostEqual(got, Pt(4, 1.5)) {
		t.Fatalf("scale: got %v", got)
	}
}

// Concat(z0, z1).Apply(p) must equal z0.Apply(z1.Apply(p)).
func TestConcatMatchesSequentialApply(t *testing.T) {
	z0 := Affine{A: 2, B: 0.5, C: -1, D: 3, E: 4, F: -2}
	z1 := Affine{A: 0.25, B: -1, C: 2, D: 1.5, E: -3, F: 6}
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(-2.5, 3.75)}

	zc := Concat(z0, z1)
	for _, p := range pts {
		want := z0.Apply(z1.Apply(p))
		got := zc.Apply(p)
		if !pointsAlmostEqual(got, want) {
			t.Fatalf("point %v: concat %v, sequential %v", p, got, want)
		}
	}
}

func TestConcatIdentity(t *testing.T) {
	z := Affine{A: 2, B: 0.5, C: -1, D: 3, E: 4, F: -2}
	if got := Concat(Identity(), z); got != z {
		t.Fatalf("Concat(I, z) = %v, want %v", got, z)
	}
	if got := Concat(z, Identity()); got != z {
		t.Fatalf("Concat(z, I) = %v, want %v", got, z)
	}
}
