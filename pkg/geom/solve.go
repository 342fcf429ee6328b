package geom

import "math"

// solvePlanes finds one point satisfying n1·X = d1 and n2·X = d2.
//
// The coordinate whose 2x2 minor is largest in magnitude is fixed at 0 and
// the remaining two are solved with Cramer's rule. The minors are the
// components of n1 x n2, so ok is false only for parallel normals.
func solvePlanes(n1 Vector3, d1 float64, n2 Vector3, d2 float64) (point Vector3, ok bool) {
	dir := n1.Cross(n2)
	ax, ay, az := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)

	switch {
	case az != 0 && az >= ax && az >= ay:
		x, y, ok := cramer(n1.X, n1.Y, d1, n2.X, n2.Y, d2)
		return Vector3{X: x, Y: y}, ok
	case ay != 0 && ay >= ax:
		x, z, ok := cramer(n1.X, n1.Z, d1, n2.X, n2.Z, d2)
		return Vector3{X: x, Z: z}, ok
	case ax != 0:
		y, z, ok := cramer(n1.Y, n1.Z, d1, n2.Y, n2.Z, d2)
		return Vector3{Y: y, Z: z}, ok
	}
	return Vector3{}, false
}

// cramer solves a1*u + b1*v = c1, a2*u + b2*v = c2.
func cramer(a1, b1, c1, a2, b2, c2 float64) (u, v float64, ok bool) {
	det := a1*b2 - a2*b1
	if det == 0 {
		return 0, 0, false
	}
	return (c1*b2 - c2*b1) / det, (a1*c2 - a2*c1) / det, true
}

// ratio returns k such that a = k*b, read off the component where b is largest.
func ratio(a, b Vector3) float64 {
	ax, ay, az := math.Abs(b.X), math.Abs(b.Y), math.Abs(b.Z)
	switch {
	case ax >= ay && ax >= az:
		return a.X / b.X
	case ay >= az:
		return a.Y / b.Y
	default:
		return a.Z / b.Z
	}
}
