package material

import "github.com/glint-render/glint/pkg/core"

// Material holds the Phong surface parameters plus the reflection and
// refraction coefficients used by the recursive shader.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0,1], 0 disables the reflection bounce
	Transparency    float64 // [0,1], 0 disables the refraction bounce
	RefractiveIndex float64
	Pattern         Pattern // optional, overrides Color when set
	CastsShadow     bool    // per-material shadow opt-out; defaults to true
}

// New returns a material with the standard defaults
func New() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
		CastsShadow:     true,
	}
}
