package lights

import "github.com/glint-render/glint/pkg/core"

// PointLight is a light source with no size, existing at a single point
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light at a position with an intensity color
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
