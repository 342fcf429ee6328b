package geom

import (
	"fmt"
	"math"
)

const (
	// PerpendicularTolerance is the absolute tolerance, in degrees, of the 90° test.
	PerpendicularTolerance = 0.001
	// Epsilon bounds the distance below which a point is considered to lie on a line.
	Epsilon = 1e-9
)

// Line is the infinite line {Point + t*Direction}. A zero Direction is
// degenerate; it is not rejected but every measurement on it is meaningless.
type Line struct {
	Point     Vector3
	Direction Vector3
}

// Param is one coordinate of a parametric equation: c(t) = At0 + Slope*t.
type Param struct {
	At0   float64
	Slope float64
}

func NewLine(point, direction Vector3) Line {
	if direction.IsZero() {
		reportDegenerate("line", "zero direction at %s", point)
	}
	return Line{Point: point, Direction: direction}
}

// LineFromEndPoints returns the line through p with direction q - p.
func LineFromEndPoints(p, q Vector3) Line {
	if p == q {
		reportDegenerate("line from end points", "coincident points %s", p)
	}
	return Line{Point: p, Direction: q.Sub(p)}
}

// LineFromParameters assembles a line from its x(t), y(t) and z(t) equations.
func LineFromParameters(x, y, z Param) Line {
	return NewLine(Vector3{X: x.At0, Y: y.At0, Z: z.At0}, Vector3{X: x.Slope, Y: y.Slope, Z: z.Slope})
}

func (Line) primitive() {}

// Angle returns the angle between the directions in degrees.
//
// The angle is derived from the sine, asin(|d1 x d2| / (|d1| |d2|)), so it is
// always the acute one in [0, 90]. The ratio is clamped to 1, since rounding
// can push it just above for perpendicular directions.
func (l Line) Angle(o Line) float64 {
	return l.AngleRad(o) * 180 / math.Pi
}

// AngleRad is Angle in radians.
func (l Line) AngleRad(o Line) float64 {
	ratio := l.Direction.Cross(o.Direction).Abs() / (l.Direction.Abs() * o.Direction.Abs())
	return math.Asin(math.Min(1, ratio))
}

// Parallel reports whether the directions have an exactly zero cross product.
// Parallel lines are not necessarily the same line; see Coincident.
func (l Line) Parallel(o Line) bool {
	return l.Direction.Cross(o.Direction).IsZero()
}

// Perpendicular reports whether the angle between the lines is 90° within
// PerpendicularTolerance.
func (l Line) Perpendicular(o Line) bool {
	return math.Abs(l.Angle(o)-90) < PerpendicularTolerance
}

// DistanceTo returns the distance from p to the line.
func (l Line) DistanceTo(p Vector) float64 {
	return p.Vec3().Sub(l.Point).Cross(l.Direction).Abs() / l.Direction.Abs()
}

// ContainsPoint reports whether p lies on the line.
func (l Line) ContainsPoint(p Vector) bool {
	return l.DistanceTo(p) <= Epsilon
}

// Intersects reports whether the lines are not parallel. Skew lines in 3D
// are reported as intersecting.
func (l Line) Intersects(o Line) bool {
	return !l.Parallel(o)
}

// Coincident reports whether both lines describe the same set of points.
func (l Line) Coincident(o Line) bool {
	return l.Parallel(o) && l.ContainsPoint(o.Point)
}

// Eval returns Point + t*Direction.
func (l Line) Eval(t float64) Vector3 {
	return l.Point.Add(l.Direction.Scale(t))
}

// Validate returns ErrDegenerateGeometry for a zero direction.
func (l Line) Validate() error {
	if l.Direction.IsZero() {
		return fmt.Errorf("%w: line has a zero direction", ErrDegenerateGeometry)
	}
	return nil
}

func (l Line) String() string {
	return fmt.Sprintf("Line3d: (x, y, z) = (%g, %g, %g) + t(%g, %g, %g)",
		l.Point.X, l.Point.Y, l.Point.Z, l.Direction.X, l.Direction.Y, l.Direction.Z)
}

// Line2D is the line y = a*x + b in the z = 0 plane, stored as the Line
// through (0, b, 0) with direction (1, a, 0).
type Line2D struct {
	Line
}

func NewLine2D(a, b float64) Line2D {
	return Line2D{Line: Line{Point: Vector3{Y: b}, Direction: Vector3{X: 1, Y: a}}}
}

func (l Line2D) Slope() float64 { return l.Direction.Y }

func (l Line2D) Intercept() float64 { return l.Point.Y }

func (l Line2D) String() string {
	return fmt.Sprintf("Line2d: y = %.2fx + %.2f", l.Direction.Y, l.Point.Y)
}

// FiniteLine is a line bounded by its Point and End. It only carries data;
// predicates are those of the embedded infinite Line.
type FiniteLine struct {
	Line Line
	End  Vector3
}

// NewFiniteLine returns the segment from start to end.
func NewFiniteLine(start, end Vector3) FiniteLine {
	return FiniteLine{Line: LineFromEndPoints(start, end), End: end}
}

// FiniteLineFromLength builds a segment starting at start and heading
// towards ref. The end point is computed as start + start + (ref-start)*length.
//
// TODO: the start point is counted twice in End; confirm whether
// start + (ref-start)*length was intended before changing it.
func FiniteLineFromLength(start, ref Vector3, length float64) FiniteLine {
	direction := ref.Sub(start)
	return FiniteLine{
		Line: NewLine(start, direction),
		End:  start.Add(start).Add(direction.Scale(length)),
	}
}

func (f FiniteLine) Start() Vector3 { return f.Line.Point }
