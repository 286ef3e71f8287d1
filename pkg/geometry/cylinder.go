package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Cylinder is a radius-1 cylinder around the local y axis. It extends
// infinitely unless truncated by Minimum/Maximum (exclusive bounds), and is
// open-ended unless Closed adds end caps.
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect solves the quadratic against the wall, keeps roots within
// the y extents, and tests the end caps when closed
func (c *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// A ray parallel to the y axis can still hit the caps
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, NewIntersection(t, c))
			}
		}
	}

	xs = c.intersectCaps(ray, xs)
	return xs
}

// intersectCaps appends intersections with the end caps when the cylinder
// is closed and the ray could cross them
func (c *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	// Lower cap at y = Minimum
	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}

	// Upper cap at y = Maximum
	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// checkCap reports whether the ray at t lies within radius of the y axis
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt distinguishes the caps from the wall by the squared radial
// distance at the point
func (c *Cylinder) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}

// Includes reports whether other is this cylinder
func (c *Cylinder) Includes(other Shape) bool {
	return other == c
}

// Bounds returns the cylinder's extent, infinite in y when untruncated
func (c *Cylinder) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, c.Minimum, -1), core.NewPoint(1, c.Maximum, 1))
}
