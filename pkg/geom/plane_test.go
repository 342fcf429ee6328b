package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneFromPoints_ContainsPoints(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vector3
		normal     Vector3
	}{
		{"unit triangle", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1), V3(1, 1, 1)},
		{"integer points", V3(1, 2, 3), V3(4, 6, 9), V3(12, 11, 9), V3(-30, 48, -17)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlaneFromPoints(tc.p1, tc.p2, tc.p3)
			assert.Equal(t, tc.normal, p.Normal.Direction)
			assert.True(t, p.ContainsPoint(tc.p1))
			assert.True(t, p.ContainsPoint(tc.p2))
			assert.True(t, p.ContainsPoint(tc.p3))
			assert.False(t, p.ContainsPoint(tc.p1.Add(tc.normal)))
		})
	}
}

func TestPlaneFromPoints_FractionalPoints(t *testing.T) {
	p1, p2, p3 := V3(0.1, 0.2, 0.3), V3(1.7, -0.4, 2.2), V3(-0.9, 3.1, 0.6)
	p := PlaneFromPoints(p1, p2, p3)

	// D is computed from p1, so only p1 is guaranteed to match exactly. p3
	// misses the equation by a rounding error and needs a tolerance.
	assert.True(t, p.ContainsPoint(p1))
	assert.InDelta(t, 0, p.DistanceTo(p2), 1e-12)
	assert.InDelta(t, 0, p.DistanceTo(p3), 1e-12)
}

func TestPlaneFromEquation_PointUpToRounding(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
	}{
		{"integers", 1, 2, 3, 4},
		{"tenths", 0.1, 0.2, 0.3, 0.7},
		{"mixed", 0.3, -1.7, 2.2, 0.9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlaneFromEquation(tc.a, tc.b, tc.c, tc.d)

			assert.Equal(t, tc.d, p.D)
			assert.InDelta(t, 0, p.DistanceTo(p.Point), 1e-12)
		})
	}

	// The equation itself is kept exact.
	p := PlaneFromEquation(1, 2, 3, 4)
	assert.True(t, p.ContainsPoint(V3(4, 0, 0)))
	assert.True(t, p.ContainsPoint(V3(0, 2, 0)))
	assert.True(t, p.ContainsPoint(V3(1, 0, 1)))
}

func TestPlaneFromEquation(t *testing.T) {
	p := PlaneFromEquation(1, 2, 3, 4)

	assert.Equal(t, 4.0, p.D)
	assert.Equal(t, V3(1, 2, 3), p.Normal.Direction)
	assert.Equal(t, V3(0, 0, 0), p.Normal.Point)
	assert.InDelta(t, 4, p.Point.Dot(p.Normal.Direction), 1e-12)
	assert.Equal(t, "Plane: 1.00x + 2.00y + 3.00z = 4", p.String())

	// c = 0 is a valid plane.
	x5 := PlaneFromEquation(1, 0, 0, 5)
	assert.Equal(t, V3(5, 0, 0), x5.Point)
	assert.True(t, x5.ContainsPoint(V3(5, -8, 13)))
}

func TestNewPlane(t *testing.T) {
	p := NewPlane(V3(1, 2, 3), V3(0, 0, 2))

	assert.Equal(t, 6.0, p.D)
	assert.True(t, p.ContainsPoint(V3(9, 9, 3)))
	assert.False(t, p.ContainsPoint(V2(9, 9)))
	require.NoError(t, p.Validate())
	require.ErrorIs(t, NewPlane(V3(1, 2, 3), V3(0, 0, 0)).Validate(), ErrDegenerateGeometry)
}

func TestPlane_IntersectPlanes(t *testing.T) {
	x5 := PlaneFromEquation(1, 0, 0, 5)
	y3 := PlaneFromEquation(0, 1, 0, 3)

	l, ok := x5.Intersect(y3)
	require.True(t, ok)
	assert.True(t, l.Parallel(NewLine(V3(0, 0, 0), V3(0, 0, 1))))
	assert.True(t, l.ContainsPoint(V3(5, 3, 0)))
	assert.True(t, l.ContainsPoint(V3(5, 3, -42)))
	assert.Equal(t, V3(5, 3, 0), l.Point)
}

func TestPlane_IntersectionLiesInBothPlanes(t *testing.T) {
	tests := []struct {
		name string
		a, b Plane
	}{
		{"oblique", PlaneFromEquation(1, 2, 3, 4), PlaneFromEquation(2, -1, 1, 5)},
		{"z free", PlaneFromEquation(0, 0, 1, 7), PlaneFromEquation(1, 1, 0, 2)},
		{"from points", PlaneFromPoints(V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)), NewPlane(V3(0, 0, 0), V3(1, -1, 0))},
		{"x axis direction", PlaneFromEquation(0, 1, 0, 2), PlaneFromEquation(0, 0, 1, -3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, ok := tc.a.Intersect(tc.b)
			require.True(t, ok)

			for _, s := range []float64{0, 1, -2.5} {
				x := l.Eval(s)
				assert.InDelta(t, tc.a.D, tc.a.Normal.Direction.Dot(x), 1e-9)
				assert.InDelta(t, tc.b.D, tc.b.Normal.Direction.Dot(x), 1e-9)
			}
			assert.Equal(t, tc.a.Normal.Direction.Cross(tc.b.Normal.Direction), l.Direction)
		})
	}
}

func TestPlane_IntersectParallel(t *testing.T) {
	_, ok := PlaneFromEquation(1, 0, 0, 5).Intersect(PlaneFromEquation(2, 0, 0, 4))
	assert.False(t, ok)

	_, ok = PlaneFromEquation(1, 0, 0, 5).Intersect(PlaneFromEquation(1, 0, 0, 5))
	assert.False(t, ok)
}

func TestPlane_ParallelAndPerpendicular(t *testing.T) {
	xy := NewPlane(V3(0, 0, 0), V3(0, 0, 2))
	lifted := PlaneFromEquation(0, 0, 1, 3)
	xz := NewPlane(V3(0, 0, 0), V3(0, 1, 0))

	// Parallel normals mean parallel planes, perpendicular normals mean
	// perpendicular planes.
	assert.True(t, xy.Parallel(lifted))
	assert.False(t, xy.Perpendicular(lifted))
	assert.True(t, xy.Perpendicular(xz))
	assert.False(t, xy.Parallel(xz))

	flat := NewLine(V3(0, 0, 3), V3(1, 0, 0))
	vertical := NewLine(V3(1, 1, 1), V3(0, 0, 5))
	oblique := NewLine(V3(0, 0, 0), V3(1, 0, 1))

	assert.True(t, xy.ParallelToLine(flat))
	assert.False(t, xy.PerpendicularToLine(flat))
	assert.True(t, xy.PerpendicularToLine(vertical))
	assert.False(t, xy.ParallelToLine(vertical))
	assert.False(t, xy.ParallelToLine(oblique))
	assert.False(t, xy.PerpendicularToLine(oblique))
}

func TestPlane_IntersectLineInPlane(t *testing.T) {
	// The in-plane direction n x b is perpendicular to n only up to rounding.
	n := V3(0.91, -0.14, 0.85)
	point := V3(1, 2, 3)
	p := NewPlane(point, n)
	inside := NewLine(point, n.Cross(V3(0.83, 0.29, 0.09)))

	assert.True(t, p.ParallelToLine(inside))
	hit := p.IntersectLine(inside)
	require.Equal(t, IntersectionLine, hit.Kind)
	assert.Equal(t, inside, hit.Line)

	rng := rand.New(rand.NewPCG(3, 4))
	unit := func() float64 { return rng.Float64()*2 - 1 }
	for i := 0; i < 1000; i++ {
		n := V3(unit(), unit(), unit())
		point := V3(unit(), unit(), unit())
		p := NewPlane(point, n)
		l := NewLine(point, n.Cross(V3(unit(), unit(), unit())))

		hit := p.IntersectLine(l)
		require.Equal(t, IntersectionLine, hit.Kind, "n=%s d=%s", n, l.Direction)
	}
}

func TestPlane_Distance(t *testing.T) {
	xy := NewPlane(V3(0, 0, 0), V3(0, 0, 2))

	assert.Equal(t, 5.0, xy.DistanceTo(V3(1, 1, 5)))
	assert.Equal(t, 5.0, xy.DistanceTo(V3(1, 1, -5)))
	assert.Equal(t, 0.0, xy.DistanceTo(V2(4, 4)))

	assert.Equal(t, 3.0, xy.DistanceToLine(NewLine(V3(0, 0, 3), V3(1, 0, 0))))
	assert.Equal(t, 0.0, xy.DistanceToLine(NewLine(V3(0, 0, 3), V3(1, 0, 1))))

	x5 := PlaneFromEquation(1, 0, 0, 5)
	assert.Equal(t, 3.0, x5.DistanceToPlane(PlaneFromEquation(2, 0, 0, 4)))
	assert.Equal(t, 0.0, x5.DistanceToPlane(PlaneFromEquation(0, 1, 0, 4)))

	// Normals without an x component.
	assert.InDelta(t, 2, PlaneFromEquation(0, 0, 1, 1).DistanceToPlane(PlaneFromEquation(0, 0, 3, 9)), 1e-12)
	assert.InDelta(t, 2, PlaneFromEquation(0, 0, 3, 9).DistanceToPlane(PlaneFromEquation(0, 0, 1, 1)), 1e-12)
}

func TestPlane_IntersectLine(t *testing.T) {
	z2 := PlaneFromEquation(0, 0, 1, 2)

	hit := z2.IntersectLine(NewLine(V3(1, 1, 0), V3(0, 0, 1)))
	require.Equal(t, IntersectionPoint, hit.Kind)
	assert.Equal(t, V3(1, 1, 2), hit.Point)

	hit = z2.IntersectLine(NewLine(V3(0, 0, 0), V3(1, 1, 1)))
	require.Equal(t, IntersectionPoint, hit.Kind)
	assert.Equal(t, V3(2, 2, 2), hit.Point)

	inside := NewLine(V3(0, 0, 2), V3(1, 0, 0))
	hit = z2.IntersectLine(inside)
	require.Equal(t, IntersectionLine, hit.Kind)
	assert.Equal(t, inside, hit.Line)

	hit = z2.IntersectLine(NewLine(V3(0, 0, 1), V3(1, 0, 0)))
	assert.Equal(t, IntersectionNone, hit.Kind)
	assert.False(t, hit.Exists())
}
