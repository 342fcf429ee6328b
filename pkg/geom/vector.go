package geom

import (
	"fmt"
	"math"
)

// Vector is implemented by Vector2 and Vector3.
type Vector interface {
	Operand
	Dim() int
	At(i int) (float64, error)
	Abs() float64
	Components() []float64
	// Vec3 returns the vector in 3-space. A Vector2 gets z = 0.
	Vec3() Vector3
	String() string
}

var (
	_ Vector = Vector2{}
	_ Vector = Vector3{}
)

// Vector2 is a 2D vector or point.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector (cos θ, -sin θ). The y axis points
// clockwise from the standard math orientation.
func FromAngle(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: -math.Sin(angle)}
}

func (Vector2) operand()   {}
func (Vector2) primitive() {}

func (v Vector2) Dim() int { return 2 }

func (v Vector2) Add(w Vector2) Vector2 { return Vector2{X: v.X + w.X, Y: v.Y + w.Y} }

func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{X: v.X - w.X, Y: v.Y - w.Y} }

func (v Vector2) Scale(s float64) Vector2 { return Vector2{X: v.X * s, Y: v.Y * s} }

func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Hadamard returns the component-wise product.
func (v Vector2) Hadamard(w Vector2) Vector2 { return Vector2{X: v.X * w.X, Y: v.Y * w.Y} }

// Cross returns the 3D cross product of two vectors lying in the z = 0 plane.
func (v Vector2) Cross(w Vector2) Vector3 {
	return Vector3{Z: v.X*w.Y - v.Y*w.X}
}

func (v Vector2) Neg() Vector2 { return Vector2{X: -v.X, Y: -v.Y} }

// Abs returns the Euclidean norm.
func (v Vector2) Abs() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Dist returns the Euclidean distance between two points.
func (v Vector2) Dist(w Vector2) float64 { return v.Sub(w).Abs() }

func (v Vector2) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, indexRange(i, 2)
}

func (v Vector2) Components() []float64 { return []float64{v.X, v.Y} }

func (v Vector2) Vec3() Vector3 { return Vector3{X: v.X, Y: v.Y} }

// InRange reports whether x <= value <= y, treating the vector as a closed interval.
func (v Vector2) InRange(value float64) bool {
	return value >= v.X && value <= v.Y
}

// Equal compares coordinates exactly. A Vector3 is equal when its z is 0.
func (v Vector2) Equal(o Operand) bool {
	switch w := o.(type) {
	case Vector2:
		return v == w
	case Vector3:
		return v.X == w.X && v.Y == w.Y && w.Z == 0
	}
	return false
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%.2f,%.2f)", v.X, v.Y)
}

// Vector3 is a 3D vector or point.
type Vector3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vector3.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (Vector3) operand()   {}
func (Vector3) primitive() {}

func (v Vector3) Dim() int { return 3 }

func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Hadamard returns the component-wise product.
func (v Vector3) Hadamard(w Vector3) Vector3 {
	return Vector3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector3) Neg() Vector3 { return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Abs returns the Euclidean norm.
func (v Vector3) Abs() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Dist returns the Euclidean distance between two points.
func (v Vector3) Dist(w Vector3) float64 { return v.Sub(w).Abs() }

// IsZero reports whether every coordinate is exactly 0.
func (v Vector3) IsZero() bool { return v == Vector3{} }

func (v Vector3) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, indexRange(i, 3)
}

// Set assigns the i-th coordinate in place.
// It must not be called concurrently on a shared value.
func (v *Vector3) Set(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return indexRange(i, 3)
	}
	return nil
}

func (v Vector3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

func (v Vector3) Vec3() Vector3 { return v }

// Equal compares coordinates exactly. A Vector2 is equal when z is 0.
func (v Vector3) Equal(o Operand) bool {
	switch w := o.(type) {
	case Vector3:
		return v == w
	case Vector2:
		return v.X == w.X && v.Y == w.Y && v.Z == 0
	}
	return false
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%.2f,%.2f,%.2f)", v.X, v.Y, v.Z)
}
