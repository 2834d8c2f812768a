// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "github.com/chewxy/math32"

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	*m = M4{}
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
}

// Transpose sets m to contain the transpose of n.
func (m *M4) Transpose(n *M4) {
	var t M4
	for i := range t {
		for j := range t {
			t[i][j] = n[j][i]
		}
	}
	*m = t
}

// Invert sets m to contain the inverse of n using Gauss-Jordan
// elimination with partial pivoting. If n is singular (no pivot
// candidate above a small epsilon is found for some column), m is
// set to the identity matrix and ok is false.
func (m *M4) Invert(n *M4) (ok bool) {
	// Build the augmented [a | I] matrix in row-major scratch form,
	// since partial pivoting swaps rows rather than columns.
	var a [4][8]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			a[row][col] = n[col][row]
		}
	}
	for row := 0; row < 4; row++ {
		a[row][4+row] = 1
	}

	const eps = 1e-12
	for p := 0; p < 4; p++ {
		piv := p
		best := math32.Abs(a[p][p])
		for r := p + 1; r < 4; r++ {
			if v := math32.Abs(a[r][p]); v > best {
				best, piv = v, r
			}
		}
		if best < eps {
			m.I()
			return false
		}
		if piv != p {
			a[p], a[piv] = a[piv], a[p]
		}
		inv := 1 / a[p][p]
		for c := 0; c < 8; c++ {
			a[p][c] *= inv
		}
		for r := 0; r < 4; r++ {
			if r == p {
				continue
			}
			f := a[r][p]
			if f == 0 {
				continue
			}
			for c := 0; c < 8; c++ {
				a[r][c] -= f * a[p][c]
			}
		}
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col][row] = a[row][4+col]
		}
	}
	return true
}

// InvertTranspose sets m's upper-left 3x3 to the inverse-transpose
// of n's upper-left 3x3, leaving the remaining elements as the
// identity's. This is the matrix used to transform object-space
// normals into eye space: it undoes the distortion a non-uniform
// scale or shear would otherwise introduce. If the 3x3 block is
// singular, m's 3x3 block is set to n's 3x3 block unchanged.
func (m *M4) InvertTranspose(n *M4) {
	var full M4
	ok := full.Invert(n)
	var t M4
	t.Transpose(&full)
	if !ok {
		t = *n
	}
	m.I()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = t[i][j]
		}
	}
}

// Translation sets m to a translation matrix by v.
func (m *M4) Translation(v *V3) {
	m.I()
	m[3][0], m[3][1], m[3][2] = v[0], v[1], v[2]
}

// Scaling sets m to a scaling matrix by v.
func (m *M4) Scaling(v *V3) {
	*m = M4{}
	m[0][0], m[1][1], m[2][2], m[3][3] = v[0], v[1], v[2], 1
}

// Rotation sets m to a rotation matrix of angle radians around the
// axis (not required to be normalized), using Rodrigues' formula.
// If axis is the zero vector, m is set to the identity.
func (m *M4) Rotation(angle float32, axis *V3) {
	var a V3
	a.Norm(axis)
	if a == (V3{}) {
		m.I()
		return
	}
	s, c := math32.Sincos(angle)
	ic := 1 - c
	x, y, z := a[0], a[1], a[2]
	*m = M4{
		{x*x*ic + c, x*y*ic + z*s, x*z*ic - y*s, 0},
		{x*y*ic - z*s, y*y*ic + c, y*z*ic + x*s, 0},
		{x*z*ic + y*s, y*z*ic - x*s, z*z*ic + c, 0},
		{0, 0, 0, 1},
	}
}

// Frustum sets m to a perspective projection matrix for the given
// view frustum, matching glFrustum's conventions (eye space looking
// down -Z, [l, r] x [b, t] on the near plane, n and f both positive
// distances).
func (m *M4) Frustum(l, r, b, t, n, f float32) {
	*m = M4{}
	m[0][0] = 2 * n / (r - l)
	m[1][1] = 2 * n / (t - b)
	m[2][0] = (r + l) / (r - l)
	m[2][1] = (t + b) / (t - b)
	m[2][2] = -(f + n) / (f - n)
	m[2][3] = -1
	m[3][2] = -2 * f * n / (f - n)
}

// Perspective sets m to a perspective projection matrix from a
// vertical field of view (radians), aspect ratio, and near/far
// distances.
func (m *M4) Perspective(fovy, aspect, n, f float32) {
	t := n * math32.Tan(fovy/2)
	r := t * aspect
	m.Frustum(-r, r, -t, t, n, f)
}

// Ortho sets m to an orthographic projection matrix, matching
// glOrtho's conventions.
func (m *M4) Ortho(l, r, b, t, n, f float32) {
	m.I()
	m[0][0] = 2 / (r - l)
	m[1][1] = 2 / (t - b)
	m[2][2] = -2 / (f - n)
	m[3][0] = -(r + l) / (r - l)
	m[3][1] = -(t + b) / (t - b)
	m[3][2] = -(f + n) / (f - n)
}
