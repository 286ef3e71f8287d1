package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Cone is a double-napped cone whose apex sits at the local origin, with
// the same truncation and end-cap scheme as the cylinder. The cap radius at
// a given y equals |y|.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect solves the cone quadratic; the degenerate linear case
// (ray parallel to one half of the cone) yields a single root
func (c *Cone) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray misses both halves entirely
	case math.Abs(a) < core.Epsilon:
		t := -cc / (2 * b)
		y := o.Y + t*d.Y
		if c.Minimum < y && y < c.Maximum {
			xs = append(xs, NewIntersection(t, c))
		}
	default:
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			break
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := o.Y + t*d.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, NewIntersection(t, c))
			}
		}
	}

	xs = c.intersectCaps(ray, xs)
	return xs
}

func (c *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Minimum)) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Maximum)) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalNormalAt returns cap normals inside the cap radius and otherwise a
// wall normal whose y term opposes the apex side of the point
func (c *Cone) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}

// Includes reports whether other is this cone
func (c *Cone) Includes(other Shape) bool {
	return other == c
}

// Bounds returns the cone's extent, derived from the widest y limit
func (c *Cone) Bounds() Bounds {
	limit := math.Max(math.Abs(c.Minimum), math.Abs(c.Maximum))
	return NewBounds(
		core.NewPoint(-limit, c.Minimum, -limit),
		core.NewPoint(limit, c.Maximum, limit),
	)
}
