// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/tinygl/linear"
)

func newTestContext(w, h int) *Context {
	return NewContext(Config{Width: w, Height: h})
}

// Scenario 1: clear to solid color.
func TestClearToSolidColor(t *testing.T) {
	c := newTestContext(4, 4)
	c.ClearColor(linear.Color{R: 1, G: 0, B: 0, A: 1})
	c.Clear(ColorBufferBit)

	want := linear.PackPixel(linear.Color{R: 1, G: 0, B: 0, A: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, want, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
		}
	}
	assert.Equal(t, ErrNone, c.GetError())
}

// Scenario 3: scissor clamps clear.
func TestScissorClampsClear(t *testing.T) {
	c := newTestContext(10, 10)
	c.fb.ClearColor(linear.Color{R: 0, G: 0, B: 1, A: 1})
	c.Enable(glScissorTest)
	c.Scissor(2, 3, 5, 4)
	c.ClearColor(linear.Color{R: 1, G: 1, B: 1, A: 1})
	c.Clear(ColorBufferBit)

	inside := func(x, y int) bool { return x >= 2 && x < 7 && y >= 3 && y < 7 }
	white := linear.PackPixel(linear.Color{R: 1, G: 1, B: 1, A: 1})
	blue := linear.PackPixel(linear.Color{R: 0, G: 0, B: 1, A: 1})
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if inside(x, y) {
				assert.Equal(t, white, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
			} else {
				assert.Equal(t, blue, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
			}
		}
	}
}

// Scenario 4: src-alpha / one-minus-src-alpha blend, driven through a
// full-screen quad rather than DrawPixels, exercising the rasterizer
// and the Enable/BlendFunc front end together.
func TestBlendSrcAlphaOneMinusSrcAlpha(t *testing.T) {
	c := newTestContext(2, 2)
	c.ClearColor(linear.Color{A: 1})
	c.Clear(ColorBufferBit)
	c.Enable(glBlend)
	c.BlendFunc(glSrcAlpha, glOneMinusSrcAlpha)

	c.MatrixMode(glProjection)
	c.LoadIdentity()
	var ortho linear.M4
	ortho.Ortho(-1, 1, -1, 1, -1, 1)
	c.MultMatrix(ortho)
	c.MatrixMode(glModelview)
	c.LoadIdentity()

	c.Color(linear.Color{R: 1, G: 0, B: 0, A: 0.5})
	c.Begin(glTriangleFan)
	c.Vertex3(-1, -1, 0)
	c.Vertex3(1, -1, 0)
	c.Vertex3(1, 1, 0)
	c.Vertex3(-1, 1, 0)
	c.End()
	require.Equal(t, ErrNone, c.GetError())

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := c.fb.Color(x, y).Unpack()
			assert.InDelta(t, 0.5, got.R, 1.0/255, "pixel (%d,%d) R", x, y)
			assert.InDelta(t, 0, got.G, 1.0/255)
			assert.InDelta(t, 0, got.B, 1.0/255)
			assert.InDelta(t, 0.75, got.A, 1.0/255)
		}
	}
}

// Scenario 5: stencil write-then-test.
func TestStencilWriteThenTest(t *testing.T) {
	c := newTestContext(4, 4)
	c.Enable(glStencilTest)
	c.StencilFunc(glAlways, 1, 0xFF)
	c.StencilOp(glKeep, glKeep, glReplace)

	c.MatrixMode(glProjection)
	c.LoadIdentity()
	var ortho linear.M4
	ortho.Ortho(-1, 1, -1, 1, -1, 1)
	c.MultMatrix(ortho)
	c.MatrixMode(glModelview)
	c.LoadIdentity()

	c.Color(linear.Color{A: 1})
	c.Begin(glTriangleFan)
	c.Vertex3(-1, -1, 0)
	c.Vertex3(0, -1, 0)
	c.Vertex3(0, 1, 0)
	c.Vertex3(-1, 1, 0)
	c.End()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if x < 2 {
				want = 1
			}
			assert.Equal(t, want, c.fb.Stencil(x, y), "pixel (%d,%d)", x, y)
		}
	}

	c.StencilFunc(glEqual, 1, 0xFF)
	c.StencilOp(glKeep, glKeep, glKeep)
	c.Color(linear.Color{G: 1, A: 1})
	c.Begin(glTriangleFan)
	c.Vertex3(-1, -1, 0)
	c.Vertex3(1, -1, 0)
	c.Vertex3(1, 1, 0)
	c.Vertex3(-1, 1, 0)
	c.End()

	green := linear.PackPixel(linear.Color{G: 1, A: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				assert.Equal(t, green, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
			} else {
				assert.NotEqual(t, green, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestEnableIsEnabledAgree(t *testing.T) {
	c := newTestContext(4, 4)
	caps := []int{glCullFace, glDepthTest, glBlend, glTexture2D, glLighting,
		glFogCap, glNormalize, glColorMaterial, glAlphaTest, glScissorTest, glStencilTest}
	for _, cap := range caps {
		assert.False(t, c.IsEnabled(cap), "cap %#x starts disabled", cap)
		c.Enable(cap)
		assert.True(t, c.IsEnabled(cap), "cap %#x after Enable", cap)
		c.Disable(cap)
		assert.False(t, c.IsEnabled(cap), "cap %#x after Disable", cap)
	}
	assert.Equal(t, ErrNone, c.GetError())
}

func TestMatrixPushPopIsInverse(t *testing.T) {
	c := newTestContext(4, 4)
	before := *c.top()

	c.PushMatrix()
	c.Translate(linear.V3{1, 2, 3})
	c.Scale(linear.V3{2, 2, 2})
	c.Rotate(90, linear.V3{0, 0, 1})
	c.PopMatrix()

	after := *c.top()
	assert.Equal(t, before, after)
	assert.Equal(t, ErrNone, c.GetError())
}

func TestMatrixStackUnderflowOverflow(t *testing.T) {
	c := newTestContext(4, 4)
	c.PopMatrix()
	assert.Equal(t, ErrStackUnderflow, c.GetError())

	for i := 0; i < c.cfg.MatrixStackDepth-1; i++ {
		c.PushMatrix()
	}
	assert.Equal(t, ErrNone, c.GetError())
	c.PushMatrix()
	assert.Equal(t, ErrStackOverflow, c.GetError())
}

// Display-list recording must reproduce the same framebuffer as
// direct execution.
func TestDisplayListPlaybackMatchesDirectExecution(t *testing.T) {
	draw := func(c *Context) {
		c.MatrixMode(glProjection)
		c.LoadIdentity()
		var ortho linear.M4
		ortho.Ortho(-1, 1, -1, 1, -1, 1)
		c.MultMatrix(ortho)
		c.MatrixMode(glModelview)
		c.LoadIdentity()
		c.Color(linear.Color{R: 1, A: 1})
		c.Begin(glTriangleFan)
		c.Vertex3(-1, -1, 0)
		c.Vertex3(1, -1, 0)
		c.Vertex3(1, 1, 0)
		c.Vertex3(-1, 1, 0)
		c.End()
	}

	direct := newTestContext(8, 8)
	draw(direct)

	viaList := newTestContext(8, 8)
	name, ok := viaList.GenLists(1)
	require.True(t, ok)
	viaList.NewList(name, glCompile)
	draw(viaList)
	viaList.EndList()
	require.Equal(t, ErrNone, viaList.GetError())
	viaList.CallList(uint32(name))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, direct.fb.Color(x, y), viaList.fb.Color(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestZeroAreaTriangleWritesNoPixels(t *testing.T) {
	c := newTestContext(4, 4)
	c.fb.ClearColor(linear.Color{A: 1})
	c.MatrixMode(glProjection)
	c.LoadIdentity()
	var ortho linear.M4
	ortho.Ortho(-1, 1, -1, 1, -1, 1)
	c.MultMatrix(ortho)
	c.MatrixMode(glModelview)
	c.LoadIdentity()

	c.Color(linear.Color{R: 1, A: 1})
	c.Begin(glTriangles)
	c.Vertex3(0, 0, 0)
	c.Vertex3(0, 0, 0)
	c.Vertex3(0, 0, 0)
	c.End()

	cleared := linear.PackPixel(linear.Color{A: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, cleared, c.fb.Color(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestBeginEndMisuseLatchesInvalidOperation(t *testing.T) {
	c := newTestContext(4, 4)
	c.Begin(glTriangles)
	c.Begin(glTriangles)
	assert.Equal(t, ErrInvalidOperation, c.GetError())
	c.End()
	c.End()
	assert.Equal(t, ErrInvalidOperation, c.GetError())

	c.DepthFunc(glLess)
	c.Begin(glTriangles)
	c.DepthFunc(glLess)
	assert.Equal(t, ErrInvalidOperation, c.GetError())
	c.End()
}

func TestFrontFaceConformsToSink(t *testing.T) {
	c := newTestContext(4, 4)
	c.FrontFace(false)
	assert.False(t, c.frontFaceCCW)
	c.FrontFacei(glCCW)
	assert.True(t, c.frontFaceCCW)
	c.FrontFacei(0xDEAD)
	assert.Equal(t, ErrInvalidEnum, c.GetError())
}
