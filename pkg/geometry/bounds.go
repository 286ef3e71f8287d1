package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Bounds is an axis-aligned bounding box in a shape's local space. Groups
// use it to reject rays that miss an entire subtree before testing children.
type Bounds struct {
	Min, Max core.Tuple
}

// NewBounds creates a bounding box from min and max corners
func NewBounds(min, max core.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// EmptyBounds returns an inverted box that merges as the identity
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: core.NewPoint(inf, inf, inf),
		Max: core.NewPoint(-inf, -inf, -inf),
	}
}

// AddPoint returns the bounds grown to contain the point
func (b Bounds) AddPoint(p core.Tuple) Bounds {
	return Bounds{
		Min: core.NewPoint(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: core.NewPoint(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Merge returns the union of two bounding boxes
func (b Bounds) Merge(other Bounds) Bounds {
	return b.AddPoint(other.Min).AddPoint(other.Max)
}

// InfiniteBounds returns a box no ray can miss
func InfiniteBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: core.NewPoint(-inf, -inf, -inf),
		Max: core.NewPoint(inf, inf, inf),
	}
}

func (b Bounds) isInfinite() bool {
	return math.IsInf(b.Min.X, 0) || math.IsInf(b.Min.Y, 0) || math.IsInf(b.Min.Z, 0) ||
		math.IsInf(b.Max.X, 0) || math.IsInf(b.Max.Y, 0) || math.IsInf(b.Max.Z, 0)
}

// Transform returns the bounding box containing all eight transformed
// corners of this box. Unbounded boxes (planes, untruncated cylinders)
// stay unbounded rather than picking up NaN corners.
func (b Bounds) Transform(m core.Matrix) Bounds {
	if b.isInfinite() {
		return InfiniteBounds()
	}

	corners := [8]core.Tuple{
		core.NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}

	result := EmptyBounds()
	for _, corner := range corners {
		result = result.AddPoint(m.MultiplyTuple(corner))
	}
	return result
}

// IntersectsRay reports whether a ray passes through the box, using the
// same slab test as the cube primitive
func (b Bounds) IntersectsRay(ray core.Ray) bool {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	return tMin <= tMax
}

// checkAxis intersects the ray against one pair of parallel planes.
// IEEE division by zero yields the correct infinities for axis-parallel rays.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tMin := (min - origin) / direction
	tMax := (max - origin) / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}
