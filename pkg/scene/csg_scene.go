package scene

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/geometry"
	"github.com/glint-render/glint/pkg/lights"
	"github.com/glint-render/glint/pkg/material"
	"github.com/glint-render/glint/pkg/renderer"
	"github.com/glint-render/glint/pkg/world"
)

// NewCSGScene builds a constructive-solid-geometry showcase: a cube with a
// sphere subtracted from one corner, next to the union of a cylinder and a
// cone, on a ring-patterned floor
func NewCSGScene(width, height int) (*Scene, error) {
	w := world.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White))

	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = material.NewRingPattern(
		core.NewColor(0.8, 0.75, 0.7),
		core.NewColor(0.35, 0.3, 0.3),
	)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	cube := geometry.NewCube()
	cubeMat := material.New()
	cubeMat.Color = core.NewColor(0.8, 0.3, 0.3)
	cube.SetMaterial(cubeMat)

	bite := geometry.NewSphere()
	bite.SetTransform(core.Translation(0.8, 0.8, -0.8).Multiply(core.Scaling(0.9, 0.9, 0.9)))
	biteMat := material.New()
	biteMat.Color = core.NewColor(0.3, 0.3, 0.8)
	bite.SetMaterial(biteMat)

	carved := geometry.NewCSG(geometry.OpDifference, cube, bite)
	carved.SetTransform(core.Translation(-1.6, 1, 1).Multiply(core.RotationY(math.Pi / 6)))
	w.AddObject(carved)

	cylinder := geometry.NewCylinder()
	cylinder.Minimum = 0
	cylinder.Maximum = 1.6
	cylinder.Closed = true
	cylMat := material.New()
	cylMat.Color = core.NewColor(0.3, 0.7, 0.4)
	cylinder.SetMaterial(cylMat)

	cone := geometry.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Closed = true
	cone.SetTransform(core.Translation(0, 2.6, 0))
	coneMat := material.New()
	coneMat.Color = core.NewColor(0.9, 0.8, 0.3)
	cone.SetMaterial(coneMat)

	tower := geometry.NewCSG(geometry.OpUnion, cylinder, cone)
	tower.SetTransform(core.Translation(1.8, 0, 1).Multiply(core.Scaling(0.7, 0.7, 0.7)))
	w.AddObject(tower)

	camera, err := renderer.NewCamera(width, height, math.Pi/3)
	if err != nil {
		return nil, err
	}
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}, nil
}
