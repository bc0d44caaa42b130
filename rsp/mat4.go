package rsp

import math "github.com/chewxy/math32"

// Mat4 is a row-major 4x4 matrix of the computed (floating point) view,
// projection and model matrices the RSP derives from the N64's fixed-point
// command stream. Distinct from fixed.Matrix, which stores the wire format
// those matrices are decoded from.
type Mat4 [4][4]float32

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MulMat4 returns a*b.
func MulMat4(a, b Mat4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			m[i][j] = sum
		}
	}
	return m
}

// Vec4 multiplies the matrix by a column vector (x, y, z, w).
func (m Mat4) Vec4(x, y, z, w float32) (rx, ry, rz, rw float32) {
	rx = m[0][0]*x + m[0][1]*y + m[0][2]*z + m[0][3]*w
	ry = m[1][0]*x + m[1][1]*y + m[1][2]*z + m[1][3]*w
	rz = m[2][0]*x + m[2][1]*y + m[2][2]*z + m[2][3]*w
	rw = m[3][0]*x + m[3][1]*y + m[3][2]*z + m[3][3]*w
	return
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

func det3(a, b, c, d, e, f, g, h, i float32) float32 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Determinant returns the 4x4 determinant via cofactor expansion along the
// first row.
func (m Mat4) Determinant() float32 {
	c0 := det3(m[1][1], m[1][2], m[1][3], m[2][1], m[2][2], m[2][3], m[3][1], m[3][2], m[3][3])
	c1 := det3(m[1][0], m[1][2], m[1][3], m[2][0], m[2][2], m[2][3], m[3][0], m[3][2], m[3][3])
	c2 := det3(m[1][0], m[1][1], m[1][3], m[2][0], m[2][1], m[2][3], m[3][0], m[3][1], m[3][3])
	c3 := det3(m[1][0], m[1][1], m[1][2], m[2][0], m[2][1], m[2][2], m[3][0], m[3][1], m[3][2])
	return m[0][0]*c0 - m[0][1]*c1 + m[0][2]*c2 - m[0][3]*c3
}

// Inverse returns the inverse of m via the adjugate/determinant method. If m
// is singular (determinant within epsilon of zero) the identity is
// returned — the RSP's inverse-view-projection is only ever used for
// texgen lookups, where a degenerate projection has already failed in more
// visible ways upstream.
func (m Mat4) Inverse() Mat4 {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return IdentityMat4()
	}
	inv := adjugate(m)
	d := 1 / det
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv[i][j] *= d
		}
	}
	return inv
}

func minor(m Mat4, skipRow, skipCol int) float32 {
	var vals [9]float32
	idx := 0
	for i := 0; i < 4; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == skipCol {
				continue
			}
			vals[idx] = m[i][j]
			idx++
		}
	}
	return det3(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], vals[8])
}

func adjugate(m Mat4) Mat4 {
	var adj Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			cof := minor(m, i, j)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			// Adjugate is the transpose of the cofactor matrix.
			adj[j][i] = cof
		}
	}
	return adj
}

// FromFixed converts a fixed-point 16.16 wire-format matrix to a floating
// point Mat4, matching the N64's column-swap (j XOR 1) storage convention
// already unpacked by fixed.Matrix.ToFloat4x4.
func FromFixed(f [4][4]float32) Mat4 {
	return Mat4(f)
}
