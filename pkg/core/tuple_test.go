package core

import (
	"math"
	"testing"
)

func TestTuple_PointVectorInvariants(t *testing.T) {
	tests := []struct {
		name     string
		result   Tuple
		isPoint  bool
		isVector bool
	}{
		{
			name:    "point plus vector is a point",
			result:  NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)),
			isPoint: true,
		},
		{
			name:     "vector plus vector is a vector",
			result:   NewVector(3, -2, 5).Add(NewVector(-2, 3, 1)),
			isVector: true,
		},
		{
			name:     "point minus point is a vector",
			result:   NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)),
			isVector: true,
		},
		{
			name:    "point minus vector is a point",
			result:  NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			isPoint: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.IsPoint() != tt.isPoint {
				t.Errorf("IsPoint() = %t, want %t", tt.result.IsPoint(), tt.isPoint)
			}
			if tt.result.IsVector() != tt.isVector {
				t.Errorf("IsVector() = %t, want %t", tt.result.IsVector(), tt.isVector)
			}
		})
	}
}

func TestTuple_SubtractComponents(t *testing.T) {
	got := NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7))
	want := NewVector(-2, -4, -6)
	if !got.Equals(want) {
		t.Errorf("Subtract = %v, want %v", got, want)
	}
}

func TestTuple_NegateAndScale(t *testing.T) {
	a := Tuple{1, -2, 3, -4}

	if got := a.Negate(); got != (Tuple{-1, 2, -3, 4}) {
		t.Errorf("Negate = %v", got)
	}
	if got := a.Multiply(3.5); got != (Tuple{3.5, -7, 10.5, -14}) {
		t.Errorf("Multiply(3.5) = %v", got)
	}
	if got := a.Divide(2); got != (Tuple{0.5, -1, 1.5, -2}) {
		t.Errorf("Divide(2) = %v", got)
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		v    Tuple
		want float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		if got := tt.v.Magnitude(); !FloatEquals(got, tt.want) {
			t.Errorf("Magnitude(%v) = %f, want %f", tt.v, got, tt.want)
		}
	}
}

func TestTuple_Normalize(t *testing.T) {
	v := NewVector(4, 0, 0)
	if got := v.Normalize(); !got.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Normalize = %v", got)
	}

	n := NewVector(1, 2, 3).Normalize()
	if !FloatEquals(n.Magnitude(), 1) {
		t.Errorf("normalized magnitude = %f, want 1", n.Magnitude())
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot = %f, want 20", got)
	}
	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("a x b = %v, want (-1, 2, -1)", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("b x a = %v, want (1, -2, 1)", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name   string
		v      Tuple
		normal Tuple
		want   Tuple
	}{
		{
			name:   "45 degree reflection",
			v:      NewVector(1, -1, 0),
			normal: NewVector(0, 1, 0),
			want:   NewVector(1, 1, 0),
		},
		{
			name:   "slanted surface",
			v:      NewVector(0, -1, 0),
			normal: NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			want:   NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.normal); !got.Equals(tt.want) {
				t.Errorf("Reflect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_Operations(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.Equals(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Add = %v", got)
	}
	if got := c1.Subtract(c2); !got.Equals(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Subtract = %v", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).Scale(2); !got.Equals(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Scale = %v", got)
	}
	if got := NewColor(1, 0.2, 0.4).Multiply(NewColor(0.9, 1, 0.1)); !got.Equals(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Multiply = %v", got)
	}
}
