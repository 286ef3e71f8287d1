package geometry

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Triangle is a flat triangle defined by three points, with precomputed
// edge vectors and face normal
type Triangle struct {
	baseShape
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		baseShape: newBaseShape(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		E1:        e1,
		E2:        e2,
		Normal:    e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect runs the Moller-Trumbore test, rejecting near-parallel
// rays by the determinant
func (t *Triangle) LocalIntersect(ray core.Ray) []Intersection {
	dirCrossE2 := ray.Direction.Cross(t.E2)
	det := t.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(t.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(t.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	tt := f * t.E2.Dot(originCrossE1)
	return []Intersection{NewIntersectionUV(tt, t, u, v)}
}

// LocalNormalAt returns the precomputed face normal
func (t *Triangle) LocalNormalAt(_ core.Tuple, _ *Intersection) core.Tuple {
	return t.Normal
}

// Includes reports whether other is this triangle
func (t *Triangle) Includes(other Shape) bool {
	return other == t
}

// Bounds returns the box containing the three vertices
func (t *Triangle) Bounds() Bounds {
	return EmptyBounds().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}

// SmoothTriangle adds per-vertex normals; the surface normal interpolates
// them by the hit's barycentric coordinates
type SmoothTriangle struct {
	baseShape
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle with per-vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		baseShape: newBaseShape(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		N1:        n1,
		N2:        n2,
		N3:        n3,
		E1:        p2.Subtract(p1),
		E2:        p3.Subtract(p1),
	}
}

// LocalIntersect is the same Moller-Trumbore test, recording u/v on the
// intersection for normal interpolation
func (t *SmoothTriangle) LocalIntersect(ray core.Ray) []Intersection {
	dirCrossE2 := ray.Direction.Cross(t.E2)
	det := t.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(t.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(t.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	tt := f * t.E2.Dot(originCrossE1)
	return []Intersection{NewIntersectionUV(tt, t, u, v)}
}

// LocalNormalAt interpolates the vertex normals by the hit's barycentric
// coordinates
func (t *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit *Intersection) core.Tuple {
	if hit == nil {
		return t.E2.Cross(t.E1).Normalize()
	}
	return t.N2.Multiply(hit.U).
		Add(t.N3.Multiply(hit.V)).
		Add(t.N1.Multiply(1 - hit.U - hit.V))
}

// Includes reports whether other is this triangle
func (t *SmoothTriangle) Includes(other Shape) bool {
	return other == t
}

// Bounds returns the box containing the three vertices
func (t *SmoothTriangle) Bounds() Bounds {
	return EmptyBounds().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}
