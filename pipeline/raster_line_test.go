// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"testing"

	"github.com/gviegas/tinygl/framebuffer"
	"github.com/gviegas/tinygl/linear"
	"github.com/stretchr/testify/assert"
)

func TestDrawLineHorizontalTouchesBothEndpoints(t *testing.T) {
	fb := framebuffer.New(8, 8)
	st := baseState()
	st.Viewport = Viewport{W: 8, H: 8}

	a := whiteVertex(-1, 0)
	b := whiteVertex(1, 0)
	DrawLine(fb, a, b, st, 1)

	assert.InDelta(t, 1, fb.Color(0, 4).Unpack().A, 1e-2)
	assert.InDelta(t, 1, fb.Color(7, 4).Unpack().A, 1e-2)
}

func TestDrawLineWidthReplicatesPerpendicular(t *testing.T) {
	fb := framebuffer.New(8, 8)
	st := baseState()
	st.Viewport = Viewport{W: 8, H: 8}

	a := whiteVertex(-1, 0)
	b := whiteVertex(1, 0)
	DrawLine(fb, a, b, st, 3)

	// A horizontally-dominant line of width 3 replicates vertically.
	assert.InDelta(t, 1, fb.Color(4, 3).Unpack().A, 1e-2)
	assert.InDelta(t, 1, fb.Color(4, 4).Unpack().A, 1e-2)
	assert.InDelta(t, 1, fb.Color(4, 5).Unpack().A, 1e-2)
}

func TestDrawPointWritesSinglePixel(t *testing.T) {
	fb := framebuffer.New(8, 8)
	st := baseState()
	st.Viewport = Viewport{W: 8, H: 8}

	v := whiteVertex(0, 0)
	DrawPoint(fb, &v, st, 1)

	assert.InDelta(t, 1, fb.Color(4, 4).Unpack().A, 1e-2)
	assert.Equal(t, linear.Pixel(0), fb.Color(0, 0))
}
