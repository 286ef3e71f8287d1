package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Plane is the infinite xz plane through the local-space origin
type Plane struct {
	baseShape
}

// NewPlane creates an xz plane with the identity transform
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect returns the single crossing point, or nothing when the
// ray is parallel to (or coplanar with) the plane
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(_ core.Tuple, _ *Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// Includes reports whether other is this plane
func (p *Plane) Includes(other Shape) bool {
	return other == p
}

// Bounds returns a box that is infinite in x and z
func (p *Plane) Bounds() Bounds {
	inf := math.Inf(1)
	return NewBounds(core.NewPoint(-inf, 0, -inf), core.NewPoint(inf, 0, inf))
}
