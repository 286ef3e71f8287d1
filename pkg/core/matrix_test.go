package core

import (
	"math"
	"testing"
)

func TestMatrix_Multiply(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	want := Matrix{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(want) {
		t.Errorf("Multiply = %v, want %v", got, want)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	got := a.MultiplyTuple(Tuple{1, 2, 3, 1})
	want := Tuple{18, 24, 33, 1}
	if !got.Equals(want) {
		t.Errorf("MultiplyTuple = %v, want %v", got, want)
	}
}

func TestMatrix_IdentityAndTranspose(t *testing.T) {
	a := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}

	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Error("multiplying by identity changed the matrix")
	}

	want := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 8, 5},
		{0, 8, 3, 5},
	}
	if got := a.Transpose(); !got.Equals(want) {
		t.Errorf("Transpose = %v, want %v", got, want)
	}

	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Error("transpose of identity is not identity")
	}
}

func TestMatrix_Determinant(t *testing.T) {
	a := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}

	if got := a.Cofactor(0, 0); got != 690 {
		t.Errorf("Cofactor(0,0) = %f, want 690", got)
	}
	if got := a.Cofactor(0, 1); got != 447 {
		t.Errorf("Cofactor(0,1) = %f, want 447", got)
	}
	if got := a.Determinant(); got != -4071 {
		t.Errorf("Determinant = %f, want -4071", got)
	}
}

func TestMatrix_Invertible(t *testing.T) {
	invertible := Matrix{
		{6, 4, 4, 4},
		{5, 5, 7, 6},
		{4, -9, 3, -7},
		{9, 1, 7, -6},
	}
	if !invertible.Invertible() {
		t.Error("expected matrix to be invertible")
	}

	singular := Matrix{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}
	if singular.Invertible() {
		t.Error("expected matrix to be singular")
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	want := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}

	if got := a.Inverse(); !got.Equals(want) {
		t.Errorf("Inverse = %v, want %v", got, want)
	}
}

func TestMatrix_InverseTimesOriginalIsIdentity(t *testing.T) {
	matrices := []Matrix{
		{
			{3, -9, 7, 3},
			{3, -8, 2, -9},
			{-4, 4, 4, 1},
			{-6, 5, -1, 1},
		},
		Translation(5, -3, 2),
		Scaling(2, 3, 4),
		RotationX(math.Pi / 3),
		RotationY(math.Pi / 5).Multiply(Translation(1, 2, 3)).Multiply(Scaling(2, 2, 2)),
	}

	for i, a := range matrices {
		if got := a.Inverse().Multiply(a); !got.Equals(Identity()) {
			t.Errorf("matrix %d: inverse(A) * A = %v, want identity", i, got)
		}
	}
}

func TestMatrix_MultiplyProductByInverse(t *testing.T) {
	a := Matrix{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}

	c := a.Multiply(b)
	if got := c.Multiply(b.Inverse()); !got.Equals(a) {
		t.Errorf("C * inverse(B) = %v, want A", got)
	}
}

func TestMatrix_InverseSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic inverting a singular matrix")
		}
	}()

	var singular Matrix
	singular.Inverse()
}
