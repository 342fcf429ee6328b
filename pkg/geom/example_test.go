package geom_test

import (
	"fmt"

	"github.com/zeusync/geometry/pkg/geom"
)

func ExamplePlane_Intersect() {
	x5 := geom.PlaneFromEquation(1, 0, 0, 5)
	y3 := geom.PlaneFromEquation(0, 1, 0, 3)

	line, ok := x5.Intersect(y3)
	fmt.Println(ok)
	fmt.Println(line)
	// Output:
	// true
	// Line3d: (x, y, z) = (5, 3, 0) + t(0, 0, 1)
}

func ExampleMul() {
	dot, _ := geom.Mul(geom.V3(1, 2, 3), geom.V3(4, 5, 6))
	scaled, _ := geom.Mul(geom.V3(1, 2, 3), geom.Scalar(2))
	fmt.Println(dot)
	fmt.Println(scaled)
	// Output:
	// 32
	// Vector3(2.00,4.00,6.00)
}

func ExampleLine_Angle() {
	x := geom.NewLine(geom.V3(0, 0, 0), geom.V3(1, 0, 0))
	y := geom.LineFromEndPoints(geom.V3(0, 0, 0), geom.V3(0, 3, 0))
	fmt.Printf("%.1f %v\n", x.Angle(y), x.Perpendicular(y))
	// Output: 90.0 true
}
