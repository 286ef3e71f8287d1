package world

import (
	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/geometry"
	"github.com/glint-render/glint/pkg/lights"
	"github.com/glint-render/glint/pkg/material"
)

// World owns the shapes and lights of a scene. Both collections grow only
// through the add methods and must be fixed before the first ray is cast;
// nothing mutates the world during a render.
type World struct {
	Objects []geometry.Shape
	Lights  []lights.PointLight
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddObject appends a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// AddLight appends a point light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// NewDefaultWorld builds the canonical two-sphere world used across the
// test suite: an outer sphere with a green-tinted material and an inner
// sphere at half scale, lit from the upper left
func NewDefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	s1 := geometry.NewSphere()
	m := material.New()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)
	w.AddObject(s1)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	w.AddObject(s2)

	return w
}

// Intersect gathers every object's world-space intersections for a ray,
// flattened and sorted ascending by distance
func (w *World) Intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, object := range w.Objects {
		xs = append(xs, geometry.Intersect(object, ray)...)
	}
	geometry.SortIntersections(xs)
	return xs
}
