package scene

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/geometry"
	"github.com/glint-render/glint/pkg/lights"
	"github.com/glint-render/glint/pkg/loaders"
	"github.com/glint-render/glint/pkg/material"
	"github.com/glint-render/glint/pkg/renderer"
	"github.com/glint-render/glint/pkg/world"
)

// NewMeshScene loads a glTF/GLB model and places it on a checkered floor,
// scaled and centered so the whole mesh is in view
func NewMeshScene(path string, width, height int) (*Scene, error) {
	mesh, err := loaders.LoadGLTF(path)
	if err != nil {
		return nil, err
	}

	w := world.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = material.NewCheckersPattern(
		core.NewColor(0.8, 0.8, 0.8),
		core.NewColor(0.3, 0.3, 0.3),
	)
	floorMat.Specular = 0.1
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	mesh.SetTransform(fitTransform(mesh.Bounds()))
	meshMat := material.New()
	meshMat.Color = core.NewColor(0.7, 0.6, 0.4)
	meshMat.Specular = 0.4
	applyMaterial(mesh, meshMat)
	w.AddObject(mesh)

	camera, err := renderer.NewCamera(width, height, math.Pi/3)
	if err != nil {
		return nil, err
	}
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -4),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}, nil
}

// applyMaterial assigns a material to every primitive under a shape, since
// triangles don't inherit materials from their group
func applyMaterial(s geometry.Shape, m material.Material) {
	if group, ok := s.(*geometry.Group); ok {
		for _, child := range group.Children() {
			applyMaterial(child, m)
		}
		return
	}
	s.SetMaterial(m)
}

// fitTransform scales a mesh's bounds into a unit-ish box sitting on the
// floor at the origin
func fitTransform(b geometry.Bounds) core.Matrix {
	size := math.Max(b.Max.X-b.Min.X, math.Max(b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z))
	if size == 0 {
		return core.Identity()
	}
	scale := 2.0 / size
	centerX := (b.Min.X + b.Max.X) / 2
	centerZ := (b.Min.Z + b.Max.Z) / 2

	return core.Scaling(scale, scale, scale).
		Multiply(core.Translation(-centerX, -b.Min.Y, -centerZ))
}
