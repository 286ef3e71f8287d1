package geometry

import (
	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/material"
)

// Shape is implemented by every primitive. Each primitive supplies its
// local-space intersection and normal logic; the world-space wrappers
// (Intersect, NormalAt) apply the transform machinery shared by all shapes.
type Shape interface {
	// LocalIntersect returns the intersections of a ray already expressed
	// in the shape's local space.
	LocalIntersect(ray core.Ray) []Intersection

	// LocalNormalAt returns the surface normal at a local-space point.
	// The hit carries barycentric coordinates for smooth triangles and is
	// nil for callers that don't have one.
	LocalNormalAt(point core.Tuple, hit *Intersection) core.Tuple

	Transform() core.Matrix
	SetTransform(m core.Matrix)
	InverseTransform() core.Matrix
	InverseTransposeTransform() core.Matrix

	Material() *material.Material
	SetMaterial(m material.Material)

	// Parent is a weak back-reference used only for coordinate conversion
	// through nested groups; ownership flows strictly parent-to-child.
	Parent() Shape
	SetParent(p Shape)

	// Includes reports whether the shape is, or contains, other. Used by
	// CSG to attribute intersections to its left or right child.
	Includes(other Shape) bool

	// Bounds returns the local-space bounding box of the shape
	Bounds() Bounds
}

// baseShape holds the transform, cached inverses, material and parent link
// shared by all primitives
type baseShape struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           Shape
}

func newBaseShape() baseShape {
	return baseShape{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.New(),
	}
}

func (b *baseShape) Transform() core.Matrix {
	return b.transform
}

// SetTransform stores the transform and caches its inverse and
// inverse-transpose. A singular matrix panics in core.Matrix.Inverse.
// An enclosing group's cached bounds are refreshed, so a shape may be
// repositioned after it has been added to a group.
func (b *baseShape) SetTransform(m core.Matrix) {
	b.transform = m
	b.inverse = m.Inverse()
	b.inverseTranspose = b.inverse.Transpose()
	if parent, ok := b.parent.(*Group); ok {
		parent.recalculateBounds()
	}
}

func (b *baseShape) InverseTransform() core.Matrix {
	return b.inverse
}

func (b *baseShape) InverseTransposeTransform() core.Matrix {
	return b.inverseTranspose
}

func (b *baseShape) Material() *material.Material {
	return &b.material
}

func (b *baseShape) SetMaterial(m material.Material) {
	b.material = m
}

func (b *baseShape) Parent() Shape {
	return b.parent
}

func (b *baseShape) SetParent(p Shape) {
	b.parent = p
}

// Intersect transforms a world-space ray into the shape's local space and
// delegates to the primitive's local intersection logic
func Intersect(s Shape, ray core.Ray) []Intersection {
	localRay := ray.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt converts a world-space point to local space, takes the local
// normal, and converts it back out through the parent chain
func NormalAt(s Shape, worldPoint core.Tuple, hit *Intersection) core.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's local space,
// composing inverse transforms from the outermost ancestor inward
func WorldToObject(s Shape, point core.Tuple) core.Tuple {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.InverseTransform().MultiplyTuple(point)
}

// NormalToWorld converts a local-space normal into world space, applying
// inverse-transpose transforms from the shape outward. The W component is
// zeroed after each step to keep the result a vector.
func NormalToWorld(s Shape, normal core.Tuple) core.Tuple {
	normal = s.InverseTransposeTransform().MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()

	if parent := s.Parent(); parent != nil {
		normal = NormalToWorld(parent, normal)
	}
	return normal
}
