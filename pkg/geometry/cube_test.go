package geometry

import (
	"testing"

	"github.com/glint-render/glint/pkg/core"
)

func TestCube_LocalIntersectHits(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}

	c := NewCube()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != 2 {
				t.Fatalf("got %d intersections, want 2", len(xs))
			}
			if !core.FloatEquals(xs[0].T, tt.t1) || !core.FloatEquals(xs[1].T, tt.t2) {
				t.Errorf("t values = %f, %f, want %f, %f", xs[0].T, xs[1].T, tt.t1, tt.t2)
			}
		})
	}
}

func TestCube_LocalIntersectMisses(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
	}{
		{core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0)},
	}

	c := NewCube()
	for _, tt := range tests {
		if xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction)); len(xs) != 0 {
			t.Errorf("ray from %v got %d intersections, want 0", tt.origin, len(xs))
		}
	}
}

func TestCube_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point core.Tuple
		want  core.Tuple
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	c := NewCube()
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point, nil); !got.Equals(tt.want) {
			t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}
