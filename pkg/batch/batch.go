package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/geometry/pkg/geom"
)

// Map applies fn to every item with at most workers goroutines, preserving order.
// The first error cancels the context passed to the remaining calls.
func Map[T any, R any](parent context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]R, len(items))
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)

	for idx, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PlanePair is the relation between planes I and J of a batch.
type PlanePair struct {
	I, J         int
	Intersection geom.Intersection
	Distance     float64
}

// PlanePairs evaluates every unordered pair of planes.
func PlanePairs(ctx context.Context, planes []geom.Plane, workers int) ([]PlanePair, error) {
	pairs := make([]PlanePair, 0, len(planes)*(len(planes)-1)/2)
	for i := range planes {
		for j := i + 1; j < len(planes); j++ {
			pairs = append(pairs, PlanePair{I: i, J: j})
		}
	}

	return Map(ctx, pairs, workers, func(_ context.Context, p PlanePair) (PlanePair, error) {
		a, b := planes[p.I], planes[p.J]
		if l, ok := a.Intersect(b); ok {
			p.Intersection = geom.Intersection{Kind: geom.IntersectionLine, Line: l}
		}
		p.Distance = a.DistanceToPlane(b)
		return p, nil
	})
}

// LinePlaneHits intersects every line with plane.
func LinePlaneHits(ctx context.Context, lines []geom.Line, plane geom.Plane, workers int) ([]geom.Intersection, error) {
	return Map(ctx, lines, workers, func(_ context.Context, l geom.Line) (geom.Intersection, error) {
		return plane.IntersectLine(l), nil
	})
}
