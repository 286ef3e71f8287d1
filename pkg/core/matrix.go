package core

// Matrix is a 4x4 matrix of floats
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
// Composition is not commutative: transforms apply right-to-left.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns the matrix applied to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// matrix3 and matrix2 exist only to support cofactor expansion
type matrix3 [3][3]float64
type matrix2 [2][2]float64

func (m matrix2) determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func (m matrix3) submatrix(row, col int) matrix2 {
	var result matrix2
	dr := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		dc := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			result[dr][dc] = m[r][c]
			dc++
		}
		dr++
	}
	return result
}

func (m matrix3) cofactor(row, col int) float64 {
	minor := m.submatrix(row, col).determinant()
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func (m matrix3) determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Submatrix returns the 3x3 matrix left after removing a row and column
func (m Matrix) Submatrix(row, col int) [3][3]float64 {
	var result matrix3
	dr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		dc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[dr][dc] = m[r][c]
			dc++
		}
		dr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return matrix3(m.Submatrix(row, col)).determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has an inverse
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of the matrix. A singular matrix is a
// caller contract violation and panics.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0 {
		panic("core: cannot invert a singular matrix")
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment folds the transpose into the loop
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result
}

// Equals reports whether two matrices are equal within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEquals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
