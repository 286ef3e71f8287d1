package geometry

import "sort"

// Intersection records where a ray crossed a shape. T is the parametric
// distance along the ray; negative values lie behind the origin. U and V
// carry barycentric coordinates for smooth triangle hits.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection at distance t on a shape
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric coordinates
func NewIntersectionUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections returns the given intersections sorted ascending by T.
// Duplicates at equal distance are preserved.
func Intersections(xs ...Intersection) []Intersection {
	SortIntersections(xs)
	return xs
}

// SortIntersections sorts a slice of intersections ascending by T in place
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative T. Returns nil when every intersection is behind the ray.
func Hit(xs []Intersection) *Intersection {
	if i := HitIndex(xs); i >= 0 {
		return &xs[i]
	}
	return nil
}

// HitIndex returns the position of the visible intersection in xs, or -1
// when every intersection is behind the ray. Ties at equal distance resolve
// to the earliest position.
func HitIndex(xs []Intersection) int {
	hit := -1
	for i := range xs {
		if xs[i].T < 0 {
			continue
		}
		if hit < 0 || xs[i].T < xs[hit].T {
			hit = i
		}
	}
	return hit
}
