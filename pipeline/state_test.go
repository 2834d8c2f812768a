// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"testing"

	"github.com/gviegas/tinygl/linear"
	"github.com/stretchr/testify/assert"
)

func TestCompareFuncEval(t *testing.T) {
	assert.True(t, Less.eval(1, 2))
	assert.False(t, Less.eval(2, 1))
	assert.True(t, Always.eval(0, 0))
	assert.False(t, Never.eval(0, 0))
	assert.True(t, GEqual.eval(3, 3))
}

func TestStencilOpApply(t *testing.T) {
	assert.Equal(t, uint8(5), OpKeep.apply(5, 9))
	assert.Equal(t, uint8(0), OpZero.apply(5, 9))
	assert.Equal(t, uint8(9), OpReplace.apply(5, 9))
	assert.Equal(t, uint8(255), OpIncr.apply(255, 0))
	assert.Equal(t, uint8(0), OpIncrWrap.apply(255, 0))
	assert.Equal(t, uint8(0), OpDecr.apply(0, 0))
	assert.Equal(t, uint8(255), OpDecrWrap.apply(0, 0))
	assert.Equal(t, ^uint8(7), OpInvert.apply(7, 0))
}

func TestBlendSrcAlphaOverOneMinusSrcAlpha(t *testing.T) {
	src := linear.Color{R: 1, A: 0.5}
	dst := linear.Color{B: 1, A: 1}
	got := blend(src, dst, FactorSrcAlpha, FactorOneMinusSrcAlpha, linear.Color{})
	assert.InDelta(t, 0.5, got.R, 1e-6)
	assert.InDelta(t, 0.5, got.B, 1e-6)
}

func TestCombineModulate(t *testing.T) {
	frag := linear.Color{R: 1, G: 0.5, B: 0.2, A: 1}
	texel := linear.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	got := combine(EnvModulate, frag, texel, linear.Color{})
	assert.InDelta(t, 0.5, got.R, 1e-6)
	assert.InDelta(t, 0.5, got.A, 1e-6)
}

func TestCombineReplace(t *testing.T) {
	frag := linear.Color{R: 1, A: 1}
	texel := linear.Color{R: 0.3, G: 0.4, B: 0.5, A: 0.8}
	got := combine(EnvReplace, frag, texel, linear.Color{})
	assert.Equal(t, float32(0.3), got.R)
	assert.InDelta(t, 0.8, got.A, 1e-6)
}

func TestFogFactorLinearEndpoints(t *testing.T) {
	f := fogFactor(FogLinear, 1, 11, 0, 1)
	assert.InDelta(t, 1, f, 1e-6)
	f = fogFactor(FogLinear, 1, 11, 0, 11)
	assert.InDelta(t, 0, f, 1e-6)
}

func TestFogFactorExpDecaysWithDistance(t *testing.T) {
	near := fogFactor(FogExp, 0, 0, 0.1, 1)
	far := fogFactor(FogExp, 0, 0, 0.1, 10)
	assert.Greater(t, near, far)
}

func TestColorMaskAllAndNone(t *testing.T) {
	assert.True(t, ColorMask{true, true, true, true}.allChannels())
	assert.True(t, ColorMask{}.noChannels())
	assert.False(t, ColorMask{R: true}.allChannels())
	assert.False(t, ColorMask{R: true}.noChannels())
}
