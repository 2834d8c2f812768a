// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package dlist

import (
	"testing"

	"github.com/gviegas/tinygl/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	vertices []linear.V3
	calls    int
}

func (f *fakeSink) Begin(int)                                 { f.calls++ }
func (f *fakeSink) End()                                       { f.calls++ }
func (f *fakeSink) Vertex(x, y, z, w float32)                  { f.vertices = append(f.vertices, linear.V3{x, y, z}); f.calls++ }
func (f *fakeSink) Color(linear.Color)                         { f.calls++ }
func (f *fakeSink) TexCoord(float32, float32)                  { f.calls++ }
func (f *fakeSink) Normal(float32, float32, float32)           { f.calls++ }
func (f *fakeSink) Translate(linear.V3)                        { f.calls++ }
func (f *fakeSink) Rotate(float32, linear.V3)                  { f.calls++ }
func (f *fakeSink) Scale(linear.V3)                             { f.calls++ }
func (f *fakeSink) PushMatrix()                                { f.calls++ }
func (f *fakeSink) PopMatrix()                                 { f.calls++ }
func (f *fakeSink) LoadIdentity()                              { f.calls++ }
func (f *fakeSink) MultMatrix(linear.M4)                       { f.calls++ }
func (f *fakeSink) LoadMatrix(linear.M4)                       { f.calls++ }
func (f *fakeSink) MatrixMode(int)                             { f.calls++ }
func (f *fakeSink) Ortho(a, b, c, d, e, g float32)             { f.calls++ }
func (f *fakeSink) Frustum(a, b, c, d, e, g float32)           { f.calls++ }
func (f *fakeSink) Enable(int)                                 { f.calls++ }
func (f *fakeSink) Disable(int)                                { f.calls++ }
func (f *fakeSink) BindTexture(uint32)                         { f.calls++ }
func (f *fakeSink) BlendFunc(int, int)                         { f.calls++ }
func (f *fakeSink) DepthFunc(int)                              { f.calls++ }
func (f *fakeSink) DepthMask(bool)                             { f.calls++ }
func (f *fakeSink) CullFace(int)                               { f.calls++ }
func (f *fakeSink) FrontFace(bool)                             { f.calls++ }
func (f *fakeSink) ShadeModel(int)                             { f.calls++ }
func (f *fakeSink) Lightfv(int, int, linear.Color)             { f.calls++ }
func (f *fakeSink) Materialfv(int, int, linear.Color)          { f.calls++ }

func TestGenRecordExecute(t *testing.T) {
	var store Store
	name, ok := store.GenRange(1)
	require.True(t, ok)

	rec, ok := store.Recorder(name)
	require.True(t, ok)
	rec.Begin(4)
	rec.Vertex(1, 2, 3, 1)
	rec.Vertex(4, 5, 6, 1)
	rec.End()
	rec.Finish()

	sink := &fakeSink{}
	err := store.Execute(name, sink, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, sink.calls)
	assert.Equal(t, []linear.V3{{1, 2, 3}, {4, 5, 6}}, sink.vertices)
}

func TestExecuteUnfinishedListIsNoOp(t *testing.T) {
	var store Store
	name, _ := store.GenRange(1)
	rec, _ := store.Recorder(name)
	rec.Vertex(1, 1, 1, 1)
	// no Finish(): Valid stays false

	sink := &fakeSink{}
	err := store.Execute(name, sink, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sink.calls)
}

func TestCallListRecursionOverflow(t *testing.T) {
	var store Store
	name, _ := store.GenRange(1)
	rec, _ := store.Recorder(name)
	rec.CallList(uint32(name)) // calls itself
	rec.Finish()

	err := store.Execute(name, &fakeSink{}, 0)
	assert.ErrorIs(t, err, ErrRecursionOverflow)
}

func TestDeleteInvalidatesLookup(t *testing.T) {
	var store Store
	name, _ := store.GenRange(1)
	store.Delete(name)
	_, ok := store.Lookup(name)
	assert.False(t, ok)
}
