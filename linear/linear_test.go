// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestV3(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	var u V3
	u.Add(&v, &w)
	assert.Equal(t, V3{1, 1, 6}, u)

	u.Sub(&v, &w)
	assert.Equal(t, V3{1, 3, 2}, u)

	u.Scale(-1, &v)
	assert.Equal(t, V3{-1, -2, -4}, u)

	assert.Equal(t, float32(6), v.Dot(&w))
	assert.Equal(t, math32.Sqrt(21), v.Len())

	z := V3{0, 0, -2}
	y := V3{0, 4, 0}
	var nz, ny V3
	nz.Norm(&z)
	ny.Norm(&y)
	assert.Equal(t, V3{0, 0, -1}, nz)
	assert.Equal(t, V3{0, 1, 0}, ny)

	u.Cross(&nz, &ny)
	assert.Equal(t, V3{1, 0, 0}, u)
}

func TestV3NormZero(t *testing.T) {
	var v, zero V3
	v.Norm(&zero)
	assert.Equal(t, V3{}, v)
}

func TestM4Identity(t *testing.T) {
	var m M4
	m.I()
	var v V4
	in := V4{1, 2, 3, 4}
	v.Mul(&m, &in)
	assert.Equal(t, in, v)
}

func TestM4TransposeTwice(t *testing.T) {
	var t1, t2, r M4
	t1.Translation(&V3{1, 2, 3})
	t2.Transpose(&t1)
	r.Transpose(&t2)
	assert.Equal(t, t1, r)
}

func TestM4InvertIdentity(t *testing.T) {
	var m, inv M4
	m.I()
	ok := inv.Invert(&m)
	assert.True(t, ok)
	assert.Equal(t, m, inv)
}

func TestM4InvertTranslation(t *testing.T) {
	var m, inv, prod M4
	m.Translation(&V3{3, -2, 7})
	ok := inv.Invert(&m)
	assert.True(t, ok)
	prod.Mul(&m, &inv)
	var id M4
	id.I()
	for i := range prod {
		for j := range prod[i] {
			assert.InDelta(t, id[i][j], prod[i][j], 1e-5)
		}
	}
}

func TestM4InvertSingular(t *testing.T) {
	var m, inv M4 // zero matrix: singular
	ok := inv.Invert(&m)
	assert.False(t, ok)
	var id M4
	id.I()
	assert.Equal(t, id, inv)
}

func TestPackUnpackPixel(t *testing.T) {
	c := Color{1, 0, 0, 1}
	p := PackPixel(c)
	r, g, b, a := p.RGBA8()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
	assert.Equal(t, uint8(255), a)

	u := p.Unpack()
	assert.InDelta(t, 1.0, u.R, 1e-6)
	assert.InDelta(t, 0.0, u.G, 1e-6)
	assert.InDelta(t, 0.0, u.B, 1e-6)
	assert.InDelta(t, 1.0, u.A, 1e-6)
}
