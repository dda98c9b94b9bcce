// Package geom provides the small 2D geometry vocabulary shared by the
// rasterizer and the font renderer: points and affine transforms in
// single-precision device space.
package geom

// Point is a 2D point in device space.
type Point struct {
	X, Y float32
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Lerp linearly interpolates between p0 and p1: p0 + t*(p1-p0).
func Lerp(t float32, p0, p1 Point) Point {
	return Point{
		X: p0.X + t*(p1.X-p0.X),
		Y: p0.Y + t*(p1.Y-p0.Y),
	}
}

// Affine is a 2D affine transform. Applying it to (x, y) yields
// (A*x + C*y + E, B*x + D*y + F), i.e. the 2x3 matrix
//
//	| A C E |
//	| B D F |
type Affine struct {
	A, B, C, D, E, F float32
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns a pure translation by (dx, dy).
func Translate(dx, dy float32) Affine {
	return Affine{A: 1, D: 1, E: dx, F: dy}
}

// Scale returns a pure, possibly anisotropic, scale about the origin.
func Scale(sx, sy float32) Affine {
	return Affine{A: sx, D: sy}
}

// Concat returns the transform equivalent to applying z1 first, then z0.
func Concat(z0, z1 Affine) Affine {
	return Affine{
		A: z0.A*z1.A + z0.C*z1.B,
		B: z0.B*z1.A + z0.D*z1.B,
		C: z0.A*z1.C + z0.C*z1.D,
		D: z0.B*z1.C + z0.D*z1.D,
		E: z0.A*z1.E + z0.C*z1.F + z0.E,
		F: z0.B*z1.E + z0.D*z1.F + z0.F,
	}
}

// Apply transforms p by z.
func (z Affine) Apply(p Point) Point {
	return Point{
		X: z.A*p.X + z.C*p.Y + z.E,
		Y: z.B*p.X + z.D*p.Y + z.F,
	}
}
