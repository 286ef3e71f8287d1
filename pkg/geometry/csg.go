package geometry

import (
	"github.com/glint-render/glint/pkg/core"
)

// Operation is a constructive solid geometry set operation
type Operation string

const (
	OpUnion        Operation = "union"
	OpIntersection Operation = "intersection"
	OpDifference   Operation = "difference"
)

// CSG combines two child shapes with a boolean set operation. Intersections
// from both children are merged and filtered by the inside/outside state
// transitions the operation permits.
type CSG struct {
	baseShape
	Operation   Operation
	Left, Right Shape
}

// NewCSG creates a CSG node and claims both children
func NewCSG(op Operation, left, right Shape) *CSG {
	c := &CSG{
		baseShape: newBaseShape(),
		Operation: op,
		Left:      left,
		Right:     right,
	}
	left.SetParent(c)
	right.SetParent(c)
	return c
}

// IntersectionAllowed reports whether an intersection survives the set
// operation, given which child was hit (leftHit) and whether the point
// currently lies inside each child.
func IntersectionAllowed(op Operation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case OpUnion:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case OpIntersection:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case OpDifference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	}
	return false
}

// FilterIntersections walks a sorted intersection list, toggling the
// inside state for whichever child owns each intersection, and keeps only
// the allowed ones
func (c *CSG) FilterIntersections(xs []Intersection) []Intersection {
	inLeft := false
	inRight := false

	var result []Intersection
	for _, x := range xs {
		leftHit := c.Left.Includes(x.Object)

		if IntersectionAllowed(c.Operation, leftHit, inLeft, inRight) {
			result = append(result, x)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}

// LocalIntersect intersects both children, merges the sorted lists, and
// filters by the set operation
func (c *CSG) LocalIntersect(ray core.Ray) []Intersection {
	if !c.Bounds().IntersectsRay(ray) {
		return nil
	}

	xs := Intersect(c.Left, ray)
	xs = append(xs, Intersect(c.Right, ray)...)
	SortIntersections(xs)
	return c.FilterIntersections(xs)
}

// LocalNormalAt is never meaningful for a CSG node
func (c *CSG) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	panic("geometry: csg has no local normal")
}

// Includes reports whether the CSG node is, or contains, other
func (c *CSG) Includes(other Shape) bool {
	if other == Shape(c) {
		return true
	}
	return c.Left.Includes(other) || c.Right.Includes(other)
}

// Bounds returns the box enclosing both children in CSG space
func (c *CSG) Bounds() Bounds {
	left := c.Left.Bounds().Transform(c.Left.Transform())
	right := c.Right.Bounds().Transform(c.Right.Transform())
	return left.Merge(right)
}
