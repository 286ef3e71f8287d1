package material

import (
	"math"

	"github.com/glint-render/glint/pkg/core"
)

// Pattern generates a color from a point in pattern space. Each pattern
// carries its own transform, independent of the owning shape's transform.
type Pattern interface {
	ColorAt(point core.Tuple) core.Color
	Transform() core.Matrix
	SetTransform(m core.Matrix)
	InverseTransform() core.Matrix
}

// ColorAtObject evaluates a pattern at an object-space point. The caller is
// responsible for converting world points to object space first, since only
// the shape layer knows about parent chains.
func ColorAtObject(p Pattern, objectPoint core.Tuple) core.Color {
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}

// basePattern holds the transform and its cached inverse
type basePattern struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity(), inverse: core.Identity()}
}

func (b *basePattern) Transform() core.Matrix {
	return b.transform
}

func (b *basePattern) SetTransform(m core.Matrix) {
	b.transform = m
	b.inverse = m.Inverse()
}

func (b *basePattern) InverseTransform() core.Matrix {
	return b.inverse
}

// SolidPattern returns a single color everywhere
type SolidPattern struct {
	basePattern
	Color core.Color
}

// NewSolidPattern creates a solid pattern
func NewSolidPattern(c core.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), Color: c}
}

// ColorAt returns the pattern color regardless of position
func (p *SolidPattern) ColorAt(core.Tuple) core.Color {
	return p.Color
}

// StripePattern alternates two colors along the x axis
type StripePattern struct {
	basePattern
	A, B core.Color
}

// NewStripePattern creates a stripe pattern
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A on even unit intervals of x, B on odd ones
func (p *StripePattern) ColorAt(point core.Tuple) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B over one unit of x
type GradientPattern struct {
	basePattern
	A, B core.Color
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt interpolates between A and B by the fractional x distance
func (p *GradientPattern) ColorAt(point core.Tuple) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Scale(fraction))
}

// RingPattern alternates two colors in concentric rings around the y axis
type RingPattern struct {
	basePattern
	A, B core.Color
}

// NewRingPattern creates a ring pattern
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt keys off the radial distance in the xz plane
func (p *RingPattern) ColorAt(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(math.Floor(distance))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckersPattern alternates two colors in a 3D checkerboard
type CheckersPattern struct {
	basePattern
	A, B core.Color
}

// NewCheckersPattern creates a checkers pattern
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt keys off the parity of the summed floored coordinates
func (p *CheckersPattern) ColorAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}

// BlendPattern averages two sub-patterns, each evaluated through its own
// transform
type BlendPattern struct {
	basePattern
	A, B Pattern
}

// NewBlendPattern creates a blend of two patterns
func NewBlendPattern(a, b Pattern) *BlendPattern {
	return &BlendPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt averages the two sub-pattern colors at the point
func (p *BlendPattern) ColorAt(point core.Tuple) core.Color {
	a := ColorAtObject(p.A, point)
	b := ColorAtObject(p.B, point)
	return a.Add(b).Scale(0.5)
}
