package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Sphere is a unit sphere centered at the local-space origin. Size and
// position come from the shape transform.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the identity transform
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a fully transparent sphere with the refractive
// index of glass
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

// LocalIntersect solves the ray-sphere quadratic, returning 0 or 2 roots
// in ascending order (tangent rays yield a doubled root)
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the vector from the origin to the point
func (s *Sphere) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}

// Includes reports whether other is this sphere
func (s *Sphere) Includes(other Shape) bool {
	return other == s
}

// Bounds returns the unit cube enclosing the sphere
func (s *Sphere) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
