package world

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/geometry"
	"github.com/glint-render/glint/pkg/lights"
	"github.com/glint-render/glint/pkg/material"
)

// Lighting computes the Phong contribution of one light at a surface
// point. The ambient term always contributes; diffuse and specular only
// when the point is lit and facing the light. objectPoint is the hit point
// in the shape's local space, used for pattern evaluation.
func Lighting(m material.Material, objectPoint core.Tuple, light lights.PointLight, point, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = material.ColorAtObject(m.Pattern, objectPoint)
	}

	effectiveColor := color.Multiply(light.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}

// IsShadowed reports whether a point is shadowed from a light by any
// shadow-casting shape between the two
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	direction := v.Normalize()

	ray := core.NewRay(point, direction)
	for _, x := range w.Intersect(ray) {
		if x.T < 0 || x.T >= distance {
			continue
		}
		if x.Object.Material().CastsShadow {
			return true
		}
	}
	return false
}

// ShadeHit computes the color at a prepared hit: the Phong surface term
// summed over all lights, plus reflected and refracted contributions. When
// the material is both reflective and transparent the two are combined by
// the Schlick reflectance.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	m := *comps.Object.Material()
	objectPoint := geometry.WorldToObject(comps.Object, comps.OverPoint)

	surface := core.Black
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(Lighting(m, objectPoint, light, comps.OverPoint, comps.EyeV, comps.NormalV, inShadow))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt resolves the visible hit for a ray and shades it, returning
// black when the ray misses everything. remaining bounds the recursion
// into reflection and refraction rays.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit := geometry.HitIndex(xs)
	if hit < 0 {
		return core.Black
	}

	comps := PrepareComputationsAt(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ReflectedColor traces the reflection bounce, scaled by the material's
// reflective coefficient. At remaining == 0 it returns black: recursion
// exhaustion is the designed termination, not an error.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(reflective)
}

// RefractedColor traces the refraction bounce using Snell's law, scaled by
// the material's transparency. Total internal reflection short-circuits to
// black and lets the reflection term dominate.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)
	return color.Scale(transparency)
}
