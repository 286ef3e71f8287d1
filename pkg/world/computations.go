package world

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/geometry"
)

// Computations bundles everything the shading engine needs about a hit,
// precomputed once per visible intersection.
type Computations struct {
	T      float64
	Object geometry.Shape
	Point  core.Tuple
	EyeV   core.Tuple
	// NormalV is flipped toward the eye when the hit is on the inside of
	// the surface; Inside records whether that flip happened.
	NormalV core.Tuple
	Inside  bool
	// OverPoint is nudged along the normal to keep shadow rays from
	// re-hitting the surface; UnderPoint is nudged the opposite way for
	// refraction ray origins.
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	ReflectV   core.Tuple
	// N1 and N2 are the refractive indices of the media being exited and
	// entered at the boundary.
	N1, N2 float64
}

// PrepareComputations builds the shading bundle for a hit. The full sorted
// intersection list xs is needed to derive N1/N2 by tracking which
// refractive shapes the ray is currently inside; passing only the hit is
// fine for opaque shading. When xs holds several identical intersections
// the first matching copy is used; callers that need to distinguish
// duplicates use PrepareComputationsAt.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs []geometry.Intersection) Computations {
	for i := range xs {
		if xs[i] == hit {
			return PrepareComputationsAt(i, ray, xs)
		}
	}
	return PrepareComputationsAt(0, ray, []geometry.Intersection{hit})
}

// PrepareComputationsAt builds the shading bundle for the intersection at a
// known position in xs. The position, not the value, drives the N1/N2
// containers walk, so duplicate intersections at equal distance stay
// distinguishable.
func PrepareComputationsAt(hitIndex int, ray core.Ray, xs []geometry.Intersection) Computations {
	hit := xs[hitIndex]
	point := ray.Position(hit.T)
	eyeV := ray.Direction.Negate()
	normalV := geometry.NormalAt(hit.Object, point, &hit)

	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	offset := normalV.Multiply(core.Epsilon)
	comps := Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		EyeV:       eyeV,
		NormalV:    normalV,
		Inside:     inside,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		ReflectV:   ray.Direction.Reflect(normalV),
		N1:         1.0,
		N2:         1.0,
	}

	// Walk the intersection list up to the hit, maintaining the stack of
	// shapes the ray is currently inside. The last container before the
	// hit is the exited medium, the last after it the entered one.
	var containers []geometry.Shape
	for i, x := range xs {
		if i == hitIndex {
			if len(containers) > 0 {
				comps.N1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		found := false
		for j, obj := range containers {
			if obj == x.Object {
				containers = append(containers[:j], containers[j+1:]...)
				found = true
				break
			}
		}
		if !found {
			containers = append(containers, x.Object)
		}

		if i == hitIndex {
			if len(containers) > 0 {
				comps.N2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return comps
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light that reflects rather than refracts at the boundary
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			// Total internal reflection
			return 1
		}
		// When exiting the denser medium, use cos(theta_t) instead
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
