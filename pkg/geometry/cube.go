package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Cube is an axis-aligned cube spanning -1..1 on each local axis
type Cube struct {
	baseShape
}

// NewCube creates a unit cube with the identity transform
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// LocalIntersect runs the slab test against each pair of faces
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X, -1, 1)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y, -1, 1)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// LocalNormalAt picks the face whose coordinate has the largest magnitude
func (c *Cube) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}

// Includes reports whether other is this cube
func (c *Cube) Includes(other Shape) bool {
	return other == c
}

// Bounds returns the cube's own extent
func (c *Cube) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
