// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func checker2x2() []byte {
	// red, white, white, red (row-major)
	return []byte{
		255, 0, 0, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 0, 0, 255,
	}
}

func TestGenDeleteLookup(t *testing.T) {
	var s Store
	names := s.Gen(2)
	assert.Len(t, names, 2)
	for _, n := range names {
		_, ok := s.Lookup(n)
		assert.True(t, ok)
	}
	s.Delete(names[0])
	_, ok := s.Lookup(names[0])
	assert.False(t, ok)
}

func TestNearestSampleChecker(t *testing.T) {
	var o Object
	o.MinFilter, o.MagFilter = Nearest, MagNearest
	o.WrapS, o.WrapT = Repeat, Repeat
	err := o.SetImage(2, 2, checker2x2())
	assert.NoError(t, err)

	red := o.Sample(0.25, 0.25, 0)
	assert.InDelta(t, 1.0, red.R, 1e-6)
	assert.InDelta(t, 0.0, red.G, 1e-6)

	white := o.Sample(0.75, 0.25, 0)
	assert.InDelta(t, 1.0, white.G, 1e-6)
}

func TestWrapRepeatIsPeriodic(t *testing.T) {
	var o Object
	o.MinFilter, o.MagFilter = Nearest, MagNearest
	o.WrapS, o.WrapT = Repeat, Repeat
	err := o.SetImage(2, 2, checker2x2())
	assert.NoError(t, err)

	base := o.Sample(0.3, 0.7, 0)
	for k := -2; k <= 2; k++ {
		for m := -2; m <= 2; m++ {
			c := o.Sample(0.3+float32(k), 0.7+float32(m), 0)
			assert.InDelta(t, base.R, c.R, 1e-6)
			assert.InDelta(t, base.G, c.G, 1e-6)
			assert.InDelta(t, base.B, c.B, 1e-6)
		}
	}
}

func TestSetImageInvalidatesMip(t *testing.T) {
	var o Object
	_ = o.SetImage(4, 4, make([]byte, 4*4*4))
	o.ensureMip()
	assert.True(t, o.mipValid)
	_ = o.SetImage(4, 4, make([]byte, 4*4*4))
	assert.False(t, o.mipValid)
}

func TestMipGeneration(t *testing.T) {
	var o Object
	_ = o.SetImage(4, 4, make([]byte, 4*4*4))
	o.ensureMip()
	assert.Equal(t, 2, o.mipW)
	assert.Equal(t, 2, o.mipH)
}

func TestRejectsOversizedDimensions(t *testing.T) {
	var o Object
	err := o.SetImage(MaxDim+1, 1, make([]byte, (MaxDim+1)*4))
	assert.Error(t, err)
}
