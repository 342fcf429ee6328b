package geom

// Primitive is the closed set of geometric objects accepted by the binary
// predicates: points (Vector2, Vector3), Line, Line2D and Plane.
type Primitive interface {
	primitive()
}

var (
	_ Primitive = Vector2{}
	_ Primitive = Vector3{}
	_ Primitive = Line{}
	_ Primitive = Line2D{}
	_ Primitive = Plane{}
)

// IntersectionKind tells which field of an Intersection is set.
type IntersectionKind uint8

const (
	IntersectionNone IntersectionKind = iota
	IntersectionPoint
	IntersectionLine
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectionPoint:
		return "point"
	case IntersectionLine:
		return "line"
	default:
		return "none"
	}
}

// Intersection is the result of intersecting two primitives.
type Intersection struct {
	Kind  IntersectionKind
	Point Vector3
	Line  Line
}

// Exists reports whether the primitives share at least one point.
func (i Intersection) Exists() bool { return i.Kind != IntersectionNone }

type kind uint8

const (
	kindOther kind = iota
	kindPoint
	kindLine
	kindPlane
)

func classify(p Primitive) (kind, Vector, Line, Plane) {
	switch v := p.(type) {
	case Vector2:
		return kindPoint, v, Line{}, Plane{}
	case Vector3:
		return kindPoint, v, Line{}, Plane{}
	case Line:
		return kindLine, nil, v, Plane{}
	case Line2D:
		return kindLine, nil, v.Line, Plane{}
	case Plane:
		return kindPlane, nil, Line{}, v
	}
	return kindOther, nil, Line{}, Plane{}
}

type operands struct {
	ka, kb kind
	pa, pb Vector
	la, lb Line
	sa, sb Plane
}

func split(a, b Primitive) operands {
	var o operands
	o.ka, o.pa, o.la, o.sa = classify(a)
	o.kb, o.pb, o.lb, o.sb = classify(b)
	return o
}

// swap orders the operands so that ka >= kb. Every predicate is symmetric.
func (o operands) swap() operands {
	if o.ka >= o.kb {
		return o
	}
	return operands{
		ka: o.kb, kb: o.ka,
		pa: o.pb, pb: o.pa,
		la: o.lb, lb: o.la,
		sa: o.sb, sb: o.sa,
	}
}

// Parallel dispatches Line-Line, Plane-Plane and Plane-Line parallelism tests.
func Parallel(a, b Primitive) (bool, error) {
	o := split(a, b).swap()
	switch {
	case o.ka == kindLine && o.kb == kindLine:
		return o.la.Parallel(o.lb), nil
	case o.ka == kindPlane && o.kb == kindPlane:
		return o.sa.Parallel(o.sb), nil
	case o.ka == kindPlane && o.kb == kindLine:
		return o.sa.ParallelToLine(o.lb), nil
	}
	return false, mismatch("parallel", a, b)
}

// Perpendicular dispatches Line-Line, Plane-Plane and Plane-Line perpendicularity tests.
func Perpendicular(a, b Primitive) (bool, error) {
	o := split(a, b).swap()
	switch {
	case o.ka == kindLine && o.kb == kindLine:
		return o.la.Perpendicular(o.lb), nil
	case o.ka == kindPlane && o.kb == kindPlane:
		return o.sa.Perpendicular(o.sb), nil
	case o.ka == kindPlane && o.kb == kindLine:
		return o.sa.PerpendicularToLine(o.lb), nil
	}
	return false, mismatch("perpendicular", a, b)
}

// Angle returns the angle in degrees between two lines.
func Angle(a, b Primitive) (float64, error) {
	o := split(a, b)
	if o.ka != kindLine || o.kb != kindLine {
		return 0, mismatch("angle", a, b)
	}
	return o.la.Angle(o.lb), nil
}

// Distance dispatches Line-Point, Plane-Point, Plane-Line and Plane-Plane distances.
func Distance(a, b Primitive) (float64, error) {
	o := split(a, b).swap()
	switch {
	case o.ka == kindLine && o.kb == kindPoint:
		return o.la.DistanceTo(o.pb), nil
	case o.ka == kindPlane && o.kb == kindPoint:
		return o.sa.DistanceTo(o.pb), nil
	case o.ka == kindPlane && o.kb == kindLine:
		return o.sa.DistanceToLine(o.lb), nil
	case o.ka == kindPlane && o.kb == kindPlane:
		return o.sa.DistanceToPlane(o.sb), nil
	}
	return 0, mismatch("distance", a, b)
}

// Intersects reports whether two primitives intersect. For two lines this is
// the non-parallel test, which also holds for skew lines.
func Intersects(a, b Primitive) (bool, error) {
	o := split(a, b).swap()
	if o.ka == kindLine && o.kb == kindLine {
		return o.la.Intersects(o.lb), nil
	}
	i, err := Intersect(a, b)
	if err != nil {
		return false, err
	}
	return i.Exists(), nil
}

// Intersect computes the intersection of Plane-Plane, Plane-Line, Plane-Point
// and Line-Point pairs. A point operand is returned as the intersection when
// it lies on the other primitive.
func Intersect(a, b Primitive) (Intersection, error) {
	o := split(a, b).swap()
	switch {
	case o.ka == kindLine && o.kb == kindPoint:
		if o.la.ContainsPoint(o.pb) {
			return Intersection{Kind: IntersectionPoint, Point: o.pb.Vec3()}, nil
		}
		return Intersection{}, nil
	case o.ka == kindPlane && o.kb == kindPoint:
		if o.sa.ContainsPoint(o.pb) {
			return Intersection{Kind: IntersectionPoint, Point: o.pb.Vec3()}, nil
		}
		return Intersection{}, nil
	case o.ka == kindPlane && o.kb == kindLine:
		return o.sa.IntersectLine(o.lb), nil
	case o.ka == kindPlane && o.kb == kindPlane:
		if l, ok := o.sa.Intersect(o.sb); ok {
			return Intersection{Kind: IntersectionLine, Line: l}, nil
		}
		return Intersection{}, nil
	}
	return Intersection{}, mismatch("intersect", a, b)
}
