// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGetFree(t *testing.T) {
	var a Arena[int]
	h1, p1 := a.New()
	*p1 = 42
	assert.NotEqual(t, Handle(0), h1)

	got, ok := a.Get(h1)
	assert.True(t, ok)
	assert.Equal(t, 42, *got)

	a.Free(h1)
	_, ok = a.Get(h1)
	assert.False(t, ok)
}

func TestZeroHandleNeverAllocated(t *testing.T) {
	var a Arena[int]
	assert.False(t, a.IsAllocated(0))
	_, ok := a.Get(0)
	assert.False(t, ok)
}

func TestGrowsPastInitialCapacity(t *testing.T) {
	var a Arena[int]
	var handles []Handle
	for i := 0; i < 200; i++ {
		h, p := a.New()
		*p = i
		handles = append(handles, h)
	}
	for i, h := range handles {
		p, ok := a.Get(h)
		assert.True(t, ok)
		assert.Equal(t, i, *p)
	}
}

func TestNewRangeContiguous(t *testing.T) {
	var a Arena[int]
	first, ok := a.NewRange(8)
	assert.True(t, ok)
	for i := 0; i < 8; i++ {
		h := first + Handle(i)
		_, allocated := a.Get(h)
		assert.True(t, allocated)
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	var a Arena[int]
	h, _ := a.New()
	a.Free(h)
	a.Free(h) // must not panic
	assert.False(t, a.IsAllocated(h))
}
