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

// NewDefaultScene builds a showcase scene: a checkered floor, a striped
// wall, three spheres (matte, reflective metal-ish, glass) and two lights
func NewDefaultScene(width, height int) (*Scene, error) {
	w := world.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	w.AddLight(lights.NewPointLight(core.NewPoint(10, 6, -10), core.NewColor(0.2, 0.2, 0.25)))

	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = material.NewCheckersPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.25, 0.3, 0.35),
	)
	floorMat.Specular = 0.1
	floorMat.Reflective = 0.08
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	wall := geometry.NewPlane()
	wall.SetTransform(core.Translation(0, 0, 8).Multiply(core.RotationX(math.Pi / 2)))
	wallMat := material.New()
	stripes := material.NewStripePattern(
		core.NewColor(0.6, 0.6, 0.65),
		core.NewColor(0.45, 0.45, 0.5),
	)
	stripes.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	wallMat.Pattern = stripes
	wallMat.Specular = 0
	wall.SetMaterial(wallMat)
	w.AddObject(wall)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middleMat := material.New()
	middleMat.Color = core.NewColor(0.1, 0.6, 0.4)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflective = 0.15
	middle.SetMaterial(middleMat)
	w.AddObject(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.New()
	rightMat.Color = core.NewColor(0.2, 0.2, 0.2)
	rightMat.Diffuse = 0.4
	rightMat.Specular = 1
	rightMat.Shininess = 300
	rightMat.Reflective = 0.9
	right.SetMaterial(rightMat)
	w.AddObject(right)

	left := geometry.NewGlassSphere()
	left.SetTransform(core.Translation(-1.7, 0.6, -0.7).Multiply(core.Scaling(0.6, 0.6, 0.6)))
	leftMat := *left.Material()
	leftMat.Color = core.NewColor(0.05, 0.05, 0.08)
	leftMat.Diffuse = 0.05
	leftMat.Ambient = 0.02
	leftMat.Specular = 1
	leftMat.Shininess = 300
	leftMat.Reflective = 0.9
	leftMat.CastsShadow = false
	left.SetMaterial(leftMat)
	w.AddObject(left)

	camera, err := renderer.NewCamera(width, height, math.Pi/3)
	if err != nil {
		return nil, err
	}
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}, nil
}
