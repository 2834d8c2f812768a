// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenSetSubData(t *testing.T) {
	var s Store
	names := s.Gen(1)
	obj, ok := s.Lookup(names[0])
	assert.True(t, ok)

	obj.SetData([]byte{1, 2, 3, 4}, StaticDraw)
	assert.Equal(t, []byte{1, 2, 3, 4}, obj.Data)

	err := obj.SubData(1, []byte{9, 9})
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 9, 9, 4}, obj.Data)
}

func TestSubDataOutOfBounds(t *testing.T) {
	var o Object
	o.SetData([]byte{1, 2}, StaticDraw)
	err := o.SubData(1, []byte{9, 9, 9})
	assert.Error(t, err)
	assert.Equal(t, []byte{1, 2}, o.Data) // unmodified
}

func TestUnboundNameIsZero(t *testing.T) {
	var s Store
	_, ok := s.Lookup(0)
	assert.False(t, ok)
}
