package material

import (
	"testing"

	"github.com/glint-render/glint/pkg/core"
)

func TestStripePattern_ColorAt(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)

	t.Run("constant in y and z", func(t *testing.T) {
		for _, point := range []core.Tuple{
			core.NewPoint(0, 0, 0),
			core.NewPoint(0, 1, 0),
			core.NewPoint(0, 2, 0),
			core.NewPoint(0, 0, 1),
			core.NewPoint(0, 0, 2),
		} {
			if got := p.ColorAt(point); !got.Equals(core.White) {
				t.Errorf("ColorAt(%v) = %v, want white", point, got)
			}
		}
	})

	t.Run("alternates in x", func(t *testing.T) {
		tests := []struct {
			x    float64
			want core.Color
		}{
			{0, core.White},
			{0.9, core.White},
			{1, core.Black},
			{-0.1, core.Black},
			{-1, core.Black},
			{-1.1, core.White},
		}
		for _, tt := range tests {
			if got := p.ColorAt(core.NewPoint(tt.x, 0, 0)); !got.Equals(tt.want) {
				t.Errorf("ColorAt(x=%f) = %v, want %v", tt.x, got, tt.want)
			}
		}
	})
}

func TestGradientPattern_ColorAt(t *testing.T) {
	p := NewGradientPattern(core.White, core.Black)

	tests := []struct {
		x    float64
		want core.Color
	}{
		{0, core.White},
		{0.25, core.NewColor(0.75, 0.75, 0.75)},
		{0.5, core.NewColor(0.5, 0.5, 0.5)},
		{0.75, core.NewColor(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		if got := p.ColorAt(core.NewPoint(tt.x, 0, 0)); !got.Equals(tt.want) {
			t.Errorf("ColorAt(x=%f) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRingPattern_ColorAt(t *testing.T) {
	p := NewRingPattern(core.White, core.Black)

	tests := []struct {
		point core.Tuple
		want  core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(1, 0, 0), core.Black},
		{core.NewPoint(0, 0, 1), core.Black},
		{core.NewPoint(0.708, 0, 0.708), core.Black},
	}

	for _, tt := range tests {
		if got := p.ColorAt(tt.point); !got.Equals(tt.want) {
			t.Errorf("ColorAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestCheckersPattern_ColorAt(t *testing.T) {
	p := NewCheckersPattern(core.White, core.Black)

	tests := []struct {
		point core.Tuple
		want  core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0.99, 0, 0), core.White},
		{core.NewPoint(1.01, 0, 0), core.Black},
		{core.NewPoint(0, 0.99, 0), core.White},
		{core.NewPoint(0, 1.01, 0), core.Black},
		{core.NewPoint(0, 0, 0.99), core.White},
		{core.NewPoint(0, 0, 1.01), core.Black},
		{core.NewPoint(-0.5, 0, 0), core.Black},
		{core.NewPoint(-0.5, 0, -0.5), core.White},
	}

	for _, tt := range tests {
		if got := p.ColorAt(tt.point); !got.Equals(tt.want) {
			t.Errorf("ColorAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestSolidPattern_ColorAt(t *testing.T) {
	c := core.NewColor(0.2, 0.4, 0.6)
	p := NewSolidPattern(c)

	for _, point := range []core.Tuple{
		core.NewPoint(0, 0, 0),
		core.NewPoint(100, -20, 3),
	} {
		if got := p.ColorAt(point); !got.Equals(c) {
			t.Errorf("ColorAt(%v) = %v, want %v", point, got, c)
		}
	}
}

func TestBlendPattern_ColorAt(t *testing.T) {
	p := NewBlendPattern(
		NewSolidPattern(core.NewColor(1, 0, 0)),
		NewSolidPattern(core.NewColor(0, 0, 1)),
	)

	if got := p.ColorAt(core.NewPoint(0, 0, 0)); !got.Equals(core.NewColor(0.5, 0, 0.5)) {
		t.Errorf("ColorAt = %v, want (0.5, 0, 0.5)", got)
	}
}

func TestBlendPattern_SubPatternTransforms(t *testing.T) {
	stripes := NewStripePattern(core.White, core.Black)
	stripes.SetTransform(core.Translation(1, 0, 0))
	p := NewBlendPattern(stripes, NewSolidPattern(core.Black))

	// The shifted stripe puts black at the origin, averaged with black
	if got := p.ColorAt(core.NewPoint(0, 0, 0)); !got.Equals(core.Black) {
		t.Errorf("ColorAt = %v, want black", got)
	}
}

func TestColorAtObject_AppliesPatternTransform(t *testing.T) {
	t.Run("pattern transform", func(t *testing.T) {
		p := NewStripePattern(core.White, core.Black)
		p.SetTransform(core.Scaling(2, 2, 2))

		if got := ColorAtObject(p, core.NewPoint(1.5, 0, 0)); !got.Equals(core.White) {
			t.Errorf("ColorAtObject = %v, want white", got)
		}
	})

	t.Run("translated pattern", func(t *testing.T) {
		p := NewStripePattern(core.White, core.Black)
		p.SetTransform(core.Translation(0.5, 0, 0))

		if got := ColorAtObject(p, core.NewPoint(2.5, 0, 0)); !got.Equals(core.White) {
			t.Errorf("ColorAtObject = %v, want white", got)
		}
	})
}

func TestPattern_DefaultTransformIsIdentity(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)
	if !p.Transform().Equals(core.Identity()) {
		t.Error("new pattern transform is not identity")
	}

	p.SetTransform(core.Translation(1, 2, 3))
	if !p.Transform().Equals(core.Translation(1, 2, 3)) {
		t.Error("SetTransform did not store the transform")
	}
	if !p.InverseTransform().Equals(core.Translation(-1, -2, -3)) {
		t.Error("inverse transform was not cached")
	}
}
