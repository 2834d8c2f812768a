// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements the math primitives used by the pipeline:
// 2/3/4-component vectors, a column-major 4x4 matrix and a float RGBA
// color.
package linear

import (
	"github.com/chewxy/math32"
)

// V2 is a 2-component vector of float32.
type V2 [2]float32

// Add sets v to contain l + r.
func (v *V2) Add(l, r *V2) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V2) Sub(l, r *V2) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V2) Scale(s float32, w *V2) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Lerp sets v to contain l + t⋅(r-l).
func (v *V2) Lerp(l, r *V2, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// V3 is a 3-component vector of float32.
type V3 [3]float32

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float32, w *V3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
// If w is the zero vector, v is set to the zero vector rather
// than producing NaNs.
func (v *V3) Norm(w *V3) {
	l := w.Len()
	if l == 0 {
		*v = V3{}
		return
	}
	v.Scale(1/l, w)
}

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	*v = V3{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// MulM3 sets v to contain m ⋅ w, where m is the upper-left 3x3 of a
// column-major 4x4 matrix. Used to transform normals by an
// inverse-transposed matrix and directions by a rotation matrix.
func (v *V3) MulM3(m *M4, w *V3) {
	*v = V3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i] += m[j][i] * w[j]
		}
	}
}

// Lerp sets v to contain l + t⋅(r-l).
func (v *V3) Lerp(l, r *V3, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Bary sets v to the barycentric combination b0⋅a + b1⋅b + b2⋅c.
func (v *V3) Bary(a, b, c *V3, b0, b1, b2 float32) {
	for i := range v {
		v[i] = b0*a[i] + b1*b[i] + b2*c[i]
	}
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Add sets v to contain l + r.
func (v *V4) Add(l, r *V4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4) Sub(l, r *V4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4) Scale(s float32, w *V4) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Mul sets v to contain m ⋅ w.
func (v *V4) Mul(m *M4, w *V4) {
	*v = V4{}
	for i := range v {
		for j := range v {
			v[i] += m[j][i] * w[j]
		}
	}
}

// Lerp sets v to contain l + t⋅(r-l).
func (v *V4) Lerp(l, r *V4, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Bary sets v to the barycentric combination b0⋅a + b1⋅b + b2⋅c.
func (v *V4) Bary(a, b, c *V4, b0, b1, b2 float32) {
	for i := range v {
		v[i] = b0*a[i] + b1*b[i] + b2*c[i]
	}
}

// XYZ returns the first three components of v.
func (v *V4) XYZ() V3 { return V3{v[0], v[1], v[2]} }
