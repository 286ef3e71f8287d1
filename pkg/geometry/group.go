package geometry

import (
	"github.com/glint-render/glint/pkg/core"
)

// Group is a shape that owns an ordered collection of children. A group
// has no surface of its own: intersecting it means intersecting every
// child, after a bounding-box test rejects rays that miss the subtree.
type Group struct {
	baseShape
	children []Shape
	bounds   Bounds
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{
		baseShape: newBaseShape(),
		bounds:    EmptyBounds(),
	}
}

// Children returns the group's child shapes
func (g *Group) Children() []Shape {
	return g.children
}

// AddChild appends a child and sets its parent back-reference. The cached
// bounds of this group and every ancestor group are recomputed here and
// again whenever a child's transform changes; groups must not be mutated
// once rendering has started.
func (g *Group) AddChild(child Shape) {
	child.SetParent(g)
	g.children = append(g.children, child)
	g.recalculateBounds()
}

func (g *Group) recalculateBounds() {
	bounds := EmptyBounds()
	for _, child := range g.children {
		bounds = bounds.Merge(child.Bounds().Transform(child.Transform()))
	}
	g.bounds = bounds

	if parent, ok := g.parent.(*Group); ok {
		parent.recalculateBounds()
	}
}

// LocalIntersect merges every child's intersections, sorted ascending.
// Rays that miss the group's bounding box skip the children entirely.
func (g *Group) LocalIntersect(ray core.Ray) []Intersection {
	if len(g.children) == 0 || !g.bounds.IntersectsRay(ray) {
		return nil
	}

	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	SortIntersections(xs)
	return xs
}

// LocalNormalAt is never meaningful for a group; normals are always asked
// of the child that was hit
func (g *Group) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	panic("geometry: group has no local normal")
}

// Includes reports whether the group is, or contains, other
func (g *Group) Includes(other Shape) bool {
	if other == Shape(g) {
		return true
	}
	for _, child := range g.children {
		if child.Includes(other) {
			return true
		}
	}
	return false
}

// Bounds returns the cached box enclosing all children in group space
func (g *Group) Bounds() Bounds {
	return g.bounds
}
