package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an operation does not support the given operand pairing.
	ErrTypeMismatch = errors.New("unsupported operand types")
	// ErrIndexRange is returned when a coordinate index is outside of the vector dimension.
	ErrIndexRange = errors.New("index out of range")
	// ErrDegenerateGeometry marks zero-length directions, zero normals and parallel planes
	// passed where a unique result is expected.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

func mismatch(op string, a, b any) error {
	return fmt.Errorf("%w: %s between %s and %s", ErrTypeMismatch, op, kindOf(a), kindOf(b))
}

func indexRange(i, dim int) error {
	return fmt.Errorf("%w: %d not in [0-%d]", ErrIndexRange, i, dim-1)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case Scalar:
		return "Scalar"
	case Tuple:
		return "Tuple"
	case Vector2:
		return "Vector2"
	case Vector3:
		return "Vector3"
	case Line:
		return "Line"
	case Line2D:
		return "Line2D"
	case Plane:
		return "Plane"
	default:
		return fmt.Sprintf("%T", v)
	}
}
