package geom

import (
	"fmt"
	"math"
)

// Plane is the set of points P with Normal.Direction·P = D.
//
// Normal is a Line through the origin whose direction is the plane normal,
// so the line predicates can be reused on normals.
type Plane struct {
	Point  Vector3
	Normal Line
	D      float64
}

// NewPlane returns the plane through point with the given normal.
func NewPlane(point, normal Vector3) Plane {
	if normal.IsZero() {
		reportDegenerate("plane", "zero normal at %s", point)
	}
	return Plane{
		Point:  point,
		Normal: Line{Direction: normal},
		D:      normal.Dot(point),
	}
}

// PlaneFromPoints returns the plane through three non-collinear points.
func PlaneFromPoints(p1, p2, p3 Vector3) Plane {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if normal.IsZero() {
		reportDegenerate("plane from points", "collinear points %s %s %s", p1, p2, p3)
		return Plane{Point: p1, Normal: Line{Direction: normal}}
	}
	return NewPlane(p1, normal)
}

// PlaneFromEquation returns the plane a*x + b*y + c*z = d. D keeps d as
// given. The stored point is the foot of the perpendicular from the origin
// and lies on the plane only up to rounding, so ContainsPoint(p.Point) may
// be false.
func PlaneFromEquation(a, b, c, d float64) Plane {
	normal := Vector3{X: a, Y: b, Z: c}
	sq := normal.Dot(normal)
	if sq == 0 {
		reportDegenerate("plane from equation", "zero normal for d=%g", d)
		return Plane{Normal: Line{Direction: normal}, D: d}
	}
	return Plane{
		Point:  normal.Scale(d / sq),
		Normal: Line{Direction: normal},
		D:      d,
	}
}

func (Plane) primitive() {}

// Parallel reports whether both planes have parallel normals.
func (p Plane) Parallel(o Plane) bool {
	return p.Normal.Parallel(o.Normal)
}

// ParallelToLine reports whether the normal is perpendicular to the line
// direction, i.e. the line never crosses the plane or lies in it.
func (p Plane) ParallelToLine(l Line) bool {
	return p.Normal.Perpendicular(l)
}

// Perpendicular reports whether the normals are perpendicular.
func (p Plane) Perpendicular(o Plane) bool {
	return p.Normal.Perpendicular(o.Normal)
}

// PerpendicularToLine reports whether the line direction is parallel to the normal.
func (p Plane) PerpendicularToLine(l Line) bool {
	return p.Normal.Parallel(l)
}

// DistanceTo returns the distance from pt to the plane.
func (p Plane) DistanceTo(pt Vector) float64 {
	n := p.Normal.Direction
	return math.Abs(n.Dot(pt.Vec3())-p.D) / n.Abs()
}

// DistanceToLine is 0 for a line crossing the plane, otherwise the distance
// of any point of the line.
func (p Plane) DistanceToLine(l Line) float64 {
	if !p.ParallelToLine(l) {
		return 0
	}
	return p.DistanceTo(l.Point)
}

// DistanceToPlane is 0 for non-parallel planes. For parallel planes the
// constant of o is rescaled onto p's normal before taking the difference.
func (p Plane) DistanceToPlane(o Plane) float64 {
	if !p.Parallel(o) {
		return 0
	}
	k := ratio(p.Normal.Direction, o.Normal.Direction)
	return math.Abs(p.D-o.D*k) / p.Normal.Direction.Abs()
}

// Intersect returns the line shared by two planes. ok is false for parallel
// or coincident planes; use DistanceToPlane to tell those apart.
func (p Plane) Intersect(o Plane) (line Line, ok bool) {
	if p.Parallel(o) {
		reportDegenerate("plane intersection", "parallel normals %s and %s", p.Normal.Direction, o.Normal.Direction)
		return Line{}, false
	}
	n1, n2 := p.Normal.Direction, o.Normal.Direction
	point, ok := solvePlanes(n1, p.D, n2, o.D)
	if !ok {
		return Line{}, false
	}
	return Line{Point: point, Direction: n1.Cross(n2)}, true
}

// ContainsPoint reports whether pt satisfies the plane equation exactly, with
// no tolerance. Points with fractional coordinates, including the ones the
// plane was built from, can miss by a rounding error; compare DistanceTo
// against a tolerance for those.
func (p Plane) ContainsPoint(pt Vector) bool {
	return pt.Vec3().Dot(p.Normal.Direction) == p.D
}

// IntersectLine returns the crossing point, the line itself when it lies in
// the plane, or no intersection for a parallel line off the plane.
func (p Plane) IntersectLine(l Line) Intersection {
	if p.ParallelToLine(l) {
		if p.DistanceToLine(l) == 0 {
			return Intersection{Kind: IntersectionLine, Line: l}
		}
		return Intersection{}
	}
	n := p.Normal.Direction
	t := (p.D - l.Point.Dot(n)) / l.Direction.Dot(n)
	return Intersection{Kind: IntersectionPoint, Point: l.Eval(t)}
}

// Validate returns ErrDegenerateGeometry for a zero normal.
func (p Plane) Validate() error {
	if p.Normal.Direction.IsZero() {
		return fmt.Errorf("%w: plane has a zero normal", ErrDegenerateGeometry)
	}
	return nil
}

func (p Plane) String() string {
	n := p.Normal.Direction
	return fmt.Sprintf("Plane: %.2fx + %.2fy + %.2fz = %g", n.X, n.Y, n.Z, p.D)
}
