package geom

import "fmt"

// Operand is the closed set of values accepted by the vector algebra:
// Scalar, Tuple, Vector2 and Vector3.
type Operand interface {
	operand()
}

// Scalar is a plain number operand.
type Scalar float64

func (Scalar) operand() {}

// Tuple holds raw coordinates. Only 2 and 3 entries are accepted.
type Tuple []float64

func (Tuple) operand() {}

func (t Tuple) check(op string) error {
	if len(t) != 2 && len(t) != 3 {
		return fmt.Errorf("%w: %s with a tuple of %d entries", ErrTypeMismatch, op, len(t))
	}
	return nil
}

// Vec3 converts a 2- or 3-entry tuple into a Vector3.
func (t Tuple) Vec3() (Vector3, error) {
	if err := t.check("conversion"); err != nil {
		return Vector3{}, err
	}
	v := Vector3{X: t[0], Y: t[1]}
	if len(t) == 3 {
		v.Z = t[2]
	}
	return v, nil
}

// Add sums two operands component-wise. A Vector2 mixed with a Vector3 is
// promoted to 3D. A Scalar is added to every coordinate.
func Add(a, b Operand) (Vector, error) {
	switch v := a.(type) {
	case Vector2:
		switch w := b.(type) {
		case Vector2:
			return v.Add(w), nil
		case Vector3:
			return v.Vec3().Add(w), nil
		case Tuple:
			if err := w.check("add"); err != nil {
				return nil, err
			}
			return Vector2{X: v.X + w[0], Y: v.Y + w[1]}, nil
		case Scalar:
			s := float64(w)
			return Vector2{X: v.X + s, Y: v.Y + s}, nil
		}
	case Vector3:
		switch w := b.(type) {
		case Vector3:
			return v.Add(w), nil
		case Vector2:
			return v.Add(w.Vec3()), nil
		case Tuple:
			if err := w.check("add"); err != nil {
				return nil, err
			}
			if len(w) == 2 {
				return Vector3{X: v.X + w[0], Y: v.Y + w[1], Z: v.Z}, nil
			}
			return Vector3{X: v.X + w[0], Y: v.Y + w[1], Z: v.Z + w[2]}, nil
		case Scalar:
			s := float64(w)
			return Vector3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}, nil
		}
	case Scalar, Tuple:
		if isVector(b) {
			return Add(b, a)
		}
	}
	return nil, mismatch("add", a, b)
}

// Sub subtracts b from a component-wise. With a Scalar or Tuple on the left
// the result is -(b - a).
func Sub(a, b Operand) (Vector, error) {
	switch v := a.(type) {
	case Vector2:
		switch w := b.(type) {
		case Vector2:
			return v.Sub(w), nil
		case Vector3:
			return v.Vec3().Sub(w), nil
		case Tuple:
			if err := w.check("subtract"); err != nil {
				return nil, err
			}
			return Vector2{X: v.X - w[0], Y: v.Y - w[1]}, nil
		case Scalar:
			s := float64(w)
			return Vector2{X: v.X - s, Y: v.Y - s}, nil
		}
	case Vector3:
		switch w := b.(type) {
		case Vector3:
			return v.Sub(w), nil
		case Vector2:
			return v.Sub(w.Vec3()), nil
		case Tuple:
			if err := w.check("subtract"); err != nil {
				return nil, err
			}
			if len(w) == 2 {
				return Vector3{X: v.X - w[0], Y: v.Y - w[1], Z: v.Z}, nil
			}
			return Vector3{X: v.X - w[0], Y: v.Y - w[1], Z: v.Z - w[2]}, nil
		case Scalar:
			s := float64(w)
			return Vector3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}, nil
		}
	case Scalar, Tuple:
		if isVector(b) {
			r, err := Sub(b, a)
			if err != nil {
				return nil, err
			}
			return Neg(r), nil
		}
	}
	return nil, mismatch("subtract", a, b)
}

// Mul multiplies two operands. Vector by vector or tuple is the dot product
// and yields a Scalar; vector by Scalar yields the scaled vector.
func Mul(a, b Operand) (Operand, error) {
	switch v := a.(type) {
	case Vector2:
		switch w := b.(type) {
		case Vector2:
			return Scalar(v.Dot(w)), nil
		case Vector3:
			return Scalar(v.Vec3().Dot(w)), nil
		case Tuple:
			if err := w.check("multiply"); err != nil {
				return nil, err
			}
			return Scalar(v.X*w[0] + v.Y*w[1]), nil
		case Scalar:
			return v.Scale(float64(w)), nil
		}
	case Vector3:
		switch w := b.(type) {
		case Vector3:
			return Scalar(v.Dot(w)), nil
		case Vector2:
			return Scalar(v.Dot(w.Vec3())), nil
		case Tuple:
			if err := w.check("multiply"); err != nil {
				return nil, err
			}
			if len(w) == 2 {
				return Scalar(v.X*w[0] + v.Y*w[1]), nil
			}
			return Scalar(v.X*w[0] + v.Y*w[1] + v.Z*w[2]), nil
		case Scalar:
			return v.Scale(float64(w)), nil
		}
	case Scalar, Tuple:
		if isVector(b) {
			return Mul(b, a)
		}
	}
	return nil, mismatch("multiply", a, b)
}

// Pow is the component-wise (Hadamard) product. A missing third component
// is taken as 0.
func Pow(a, b Operand) (Vector, error) {
	switch v := a.(type) {
	case Vector2:
		switch w := b.(type) {
		case Vector2:
			return v.Hadamard(w), nil
		case Vector3:
			return v.Vec3().Hadamard(w), nil
		case Tuple:
			if err := w.check("power"); err != nil {
				return nil, err
			}
			return Vector2{X: v.X * w[0], Y: v.Y * w[1]}, nil
		}
	case Vector3:
		switch w := b.(type) {
		case Vector3:
			return v.Hadamard(w), nil
		case Vector2:
			return v.Hadamard(w.Vec3()), nil
		case Tuple:
			t, err := w.Vec3()
			if err != nil {
				return nil, err
			}
			return v.Hadamard(t), nil
		}
	}
	return nil, mismatch("power", a, b)
}

// Cross returns the 3D cross product. 2D vectors are promoted with z = 0.
func Cross(a, b Operand) (Vector3, error) {
	v, ok1 := a.(Vector)
	w, ok2 := b.(Vector)
	if !ok1 || !ok2 {
		return Vector3{}, mismatch("cross", a, b)
	}
	return v.Vec3().Cross(w.Vec3()), nil
}

// Dist returns the Euclidean distance between two vectors.
func Dist(a, b Operand) (float64, error) {
	v, ok1 := a.(Vector)
	w, ok2 := b.(Vector)
	if !ok1 || !ok2 {
		return 0, mismatch("distance", a, b)
	}
	return v.Vec3().Dist(w.Vec3()), nil
}

// Equal reports per-coordinate equality of two vectors. Any other pairing is unequal.
func Equal(a, b Operand) bool {
	switch v := a.(type) {
	case Vector2:
		return v.Equal(b)
	case Vector3:
		return v.Equal(b)
	}
	return false
}

// Neg flips the sign of every coordinate.
func Neg(v Vector) Vector {
	switch w := v.(type) {
	case Vector2:
		return w.Neg()
	case Vector3:
		return w.Neg()
	}
	return v
}

func isVector(o Operand) bool {
	switch o.(type) {
	case Vector2, Vector3:
		return true
	}
	return false
}
