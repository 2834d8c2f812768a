// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/tinygl/linear"
)

func packFloats(v ...float32) []byte {
	out := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

func orthoSetup(c *Context) {
	c.MatrixMode(glProjection)
	c.LoadIdentity()
	var ortho linear.M4
	ortho.Ortho(-1, 1, -1, 1, -1, 1)
	c.MultMatrix(ortho)
	c.MatrixMode(glModelview)
	c.LoadIdentity()
}

// A client-array DrawArrays call must rasterize identically to the
// same quad submitted through direct Vertex3 calls.
func TestDrawArraysMatchesDirectVertexSubmission(t *testing.T) {
	direct := newTestContext(8, 8)
	orthoSetup(direct)
	direct.Color(linear.Color{R: 1, A: 1})
	direct.Begin(glTriangleFan)
	direct.Vertex3(-1, -1, 0)
	direct.Vertex3(1, -1, 0)
	direct.Vertex3(1, 1, 0)
	direct.Vertex3(-1, 1, 0)
	direct.End()
	require.Equal(t, ErrNone, direct.GetError())

	viaArray := newTestContext(8, 8)
	orthoSetup(viaArray)
	viaArray.Color(linear.Color{R: 1, A: 1})
	verts := packFloats(
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	)
	viaArray.EnableClientState(glVertexArray)
	viaArray.VertexPointer(3, glFloat, 0, 0, verts)
	viaArray.DrawArrays(glTriangleFan, 0, 4)
	require.Equal(t, ErrNone, viaArray.GetError())

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, direct.fb.Color(x, y), viaArray.fb.Color(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// DrawElements sourced from buffers bound to GL_ARRAY_BUFFER and
// GL_ELEMENT_ARRAY_BUFFER must match the same quad submitted directly.
func TestDrawElementsFromBoundBuffers(t *testing.T) {
	direct := newTestContext(8, 8)
	orthoSetup(direct)
	direct.Color(linear.Color{G: 1, A: 1})
	direct.Begin(glTriangleFan)
	direct.Vertex3(-1, -1, 0)
	direct.Vertex3(1, -1, 0)
	direct.Vertex3(1, 1, 0)
	direct.Vertex3(-1, 1, 0)
	direct.End()
	require.Equal(t, ErrNone, direct.GetError())

	viaBuf := newTestContext(8, 8)
	orthoSetup(viaBuf)
	viaBuf.Color(linear.Color{G: 1, A: 1})

	vbuf := viaBuf.GenBuffers(1)[0]
	viaBuf.BindBuffer(glArrayBuffer, vbuf)
	viaBuf.BufferData(glArrayBuffer, packFloats(
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	), glStaticDraw)

	ebuf := viaBuf.GenBuffers(1)[0]
	viaBuf.BindBuffer(glElementArrayBuffer, ebuf)
	viaBuf.BufferData(glElementArrayBuffer, []byte{0, 1, 2, 3}, glStaticDraw)

	viaBuf.EnableClientState(glVertexArray)
	viaBuf.VertexPointer(3, glFloat, 0, 0, nil)
	viaBuf.DrawElements(glTriangleFan, 4, glUnsignedByte, 0, nil)
	require.Equal(t, ErrNone, viaBuf.GetError())

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, direct.fb.Color(x, y), viaBuf.fb.Color(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// DrawArrays is a no-op while GL_VERTEX_ARRAY is disabled.
func TestDrawArraysNoopWhenVertexArrayDisabled(t *testing.T) {
	c := newTestContext(4, 4)
	c.fb.ClearColor(linear.Color{A: 1})
	c.VertexPointer(3, glFloat, 0, 0, packFloats(-1, -1, 0, 1, -1, 0, 1, 1, 0))
	c.DrawArrays(glTriangles, 0, 3)
	require.Equal(t, ErrNone, c.GetError())

	cleared := linear.PackPixel(linear.Color{A: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, cleared, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestClientStateEnableDisableInvalidEnumLatches(t *testing.T) {
	c := newTestContext(4, 4)
	c.EnableClientState(0xDEAD)
	assert.Equal(t, ErrInvalidEnum, c.GetError())
	c.DisableClientState(0xDEAD)
	assert.Equal(t, ErrInvalidEnum, c.GetError())

	c.EnableClientState(glColorArray)
	assert.True(t, c.colorArrayEnabled)
	c.DisableClientState(glColorArray)
	assert.False(t, c.colorArrayEnabled)
}

func TestVertexPointerRejectsInvalidSizeAndType(t *testing.T) {
	c := newTestContext(4, 4)
	c.VertexPointer(1, glFloat, 0, 0, nil)
	assert.Equal(t, ErrInvalidValue, c.GetError())
	c.VertexPointer(3, 0xBEEF, 0, 0, nil)
	assert.Equal(t, ErrInvalidEnum, c.GetError())
}
