// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/light"
	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/material"
	"github.com/gviegas/tinygl/texture"
)

// CompareFunc is shared by the depth, alpha and stencil tests.
type CompareFunc int

const (
	Never CompareFunc = iota
	Less
	Equal
	LEqual
	Greater
	NotEqual
	GEqual
	Always
)

func (f CompareFunc) eval(incoming, stored float32) bool {
	switch f {
	case Never:
		return false
	case Less:
		return incoming < stored
	case Equal:
		return incoming == stored
	case LEqual:
		return incoming <= stored
	case Greater:
		return incoming > stored
	case NotEqual:
		return incoming != stored
	case GEqual:
		return incoming >= stored
	default: // Always
		return true
	}
}

// StencilOp is one of the eight stencil-buffer update operations.
type StencilOp int

const (
	OpKeep StencilOp = iota
	OpZero
	OpReplace
	OpIncr
	OpDecr
	OpIncrWrap
	OpDecrWrap
	OpInvert
)

func (op StencilOp) apply(stored uint8, ref int32) uint8 {
	switch op {
	case OpKeep:
		return stored
	case OpZero:
		return 0
	case OpReplace:
		return uint8(ref & 0xFF)
	case OpIncr:
		if stored < 255 {
			return stored + 1
		}
		return 255
	case OpIncrWrap:
		return stored + 1
	case OpDecr:
		if stored > 0 {
			return stored - 1
		}
		return 0
	case OpDecrWrap:
		return stored - 1
	case OpInvert:
		return ^stored
	default:
		return stored
	}
}

// BlendFactor is one of the fourteen source/destination blend
// weights of spec.md §6.
type BlendFactor int

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
	FactorConstantColor
	FactorOneMinusConstantColor
	FactorConstantAlpha
	FactorOneMinusConstantAlpha
	FactorSrcAlphaSaturate
)

func (f BlendFactor) weight(src, dst, constant linear.Color) linear.Color {
	switch f {
	case FactorZero:
		return linear.Color{}
	case FactorOne:
		return linear.Color{R: 1, G: 1, B: 1, A: 1}
	case FactorSrcColor:
		return src
	case FactorOneMinusSrcColor:
		return linear.Color{R: 1 - src.R, G: 1 - src.G, B: 1 - src.B, A: 1 - src.A}
	case FactorDstColor:
		return dst
	case FactorOneMinusDstColor:
		return linear.Color{R: 1 - dst.R, G: 1 - dst.G, B: 1 - dst.B, A: 1 - dst.A}
	case FactorSrcAlpha:
		return linear.Color{R: src.A, G: src.A, B: src.A, A: src.A}
	case FactorOneMinusSrcAlpha:
		return linear.Color{R: 1 - src.A, G: 1 - src.A, B: 1 - src.A, A: 1 - src.A}
	case FactorDstAlpha:
		return linear.Color{R: dst.A, G: dst.A, B: dst.A, A: dst.A}
	case FactorOneMinusDstAlpha:
		return linear.Color{R: 1 - dst.A, G: 1 - dst.A, B: 1 - dst.A, A: 1 - dst.A}
	case FactorConstantColor:
		return constant
	case FactorOneMinusConstantColor:
		return linear.Color{R: 1 - constant.R, G: 1 - constant.G, B: 1 - constant.B, A: 1 - constant.A}
	case FactorConstantAlpha:
		return linear.Color{R: constant.A, G: constant.A, B: constant.A, A: constant.A}
	case FactorOneMinusConstantAlpha:
		return linear.Color{R: 1 - constant.A, G: 1 - constant.A, B: 1 - constant.A, A: 1 - constant.A}
	default: // FactorSrcAlphaSaturate, source-only per spec.md §4.10
		f := src.A
		if d := 1 - dst.A; d < f {
			f = d
		}
		return linear.Color{R: f, G: f, B: f, A: 1}
	}
}

// blend evaluates result = clamp(src*sf + dst*df).
func blend(src, dst linear.Color, sf, df BlendFactor, constant linear.Color) linear.Color {
	s := src.Mul(sf.weight(src, dst, constant))
	d := dst.Mul(df.weight(src, dst, constant))
	return s.Add(d).Clamp()
}

// TexEnv is one of the five texture-environment combine modes.
type TexEnv int

const (
	EnvModulate TexEnv = iota
	EnvDecal
	EnvReplace
	EnvBlend
	EnvAdd
)

// combine folds a sampled texel into the fragment color per mode;
// alpha is always multiplied independently of the RGB rule, per
// spec.md §4.10 step 6.
func combine(mode TexEnv, frag, texel, envColor linear.Color) linear.Color {
	switch mode {
	case EnvReplace:
		return linear.Color{R: texel.R, G: texel.G, B: texel.B, A: frag.A * texel.A}
	case EnvDecal:
		return linear.Color{
			R: frag.R + (texel.R-frag.R)*texel.A,
			G: frag.G + (texel.G-frag.G)*texel.A,
			B: frag.B + (texel.B-frag.B)*texel.A,
			A: frag.A * texel.A,
		}
	case EnvBlend:
		return linear.Color{
			R: frag.R*(1-texel.R) + envColor.R*texel.R,
			G: frag.G*(1-texel.G) + envColor.G*texel.G,
			B: frag.B*(1-texel.B) + envColor.B*texel.B,
			A: frag.A * texel.A,
		}
	case EnvAdd:
		return linear.Color{R: frag.R + texel.R, G: frag.G + texel.G, B: frag.B + texel.B, A: frag.A * texel.A}
	default: // EnvModulate
		return frag.Mul(texel)
	}
}

// FogMode is one of the three fog falloff functions.
type FogMode int

const (
	FogLinear FogMode = iota
	FogExp
	FogExp2
)

// fogFactor computes the interpolation weight for fogColor vs. the
// fragment color at eye-space depth z (f=1 means no fog), per
// spec.md §4.10 step 7.
func fogFactor(mode FogMode, start, end, density, z float32) float32 {
	var f float32
	switch mode {
	case FogLinear:
		if end != start {
			f = (end - z) / (end - start)
		} else {
			f = 1
		}
	case FogExp:
		f = math32.Exp(-density * z)
	default: // FogExp2
		d := density * z
		f = math32.Exp(-d * d)
	}
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// applyFog lerps the fragment's RGB toward fogColor by (1-f),
// leaving alpha untouched.
func applyFog(fogColor, c linear.Color, f float32) linear.Color {
	return linear.Color{
		R: fogColor.R + (c.R-fogColor.R)*f,
		G: fogColor.G + (c.G-fogColor.G)*f,
		B: fogColor.B + (c.B-fogColor.B)*f,
		A: c.A,
	}
}

// ShadeModel selects how a triangle's color varies across its
// surface.
type ShadeModel int

const (
	Flat ShadeModel = iota
	Smooth
	Phong
)

// ColorMask selects which framebuffer channels a fragment may
// write.
type ColorMask struct{ R, G, B, A bool }

// allChannels reports whether every channel is writable.
func (m ColorMask) allChannels() bool { return m.R && m.G && m.B && m.A }

// noChannels reports whether every channel is masked off.
func (m ColorMask) noChannels() bool { return !m.R && !m.G && !m.B && !m.A }

// Lighting carries everything the per-fragment (Phong) or per-face
// (Gouraud two-sided) lighting recompute needs.
type Lighting struct {
	Enabled         bool
	Lights          []light.Light
	ModelAmbient    linear.Color
	Materials       material.Pair
	TwoSided        bool
	LocalViewer     bool
}

// State is the fragment-merge configuration shared by the triangle,
// line and point rasterizers. It holds no framebuffer reference;
// callers pass the framebuffer explicitly. The bound texture object
// is referenced through Texture.
type State struct {
	Viewport           Viewport
	DepthNear          float32
	DepthFar           float32
	PerspectiveCorrect bool

	ScissorEnabled bool
	Scissor        Rect

	DepthTestEnabled bool
	DepthFunc        CompareFunc
	DepthWriteMask   bool

	StencilEnabled   bool
	StencilFunc      CompareFunc
	StencilRef       int32
	StencilValueMask uint8
	StencilWriteMask uint8
	StencilFail      StencilOp
	StencilZFail     StencilOp
	StencilZPass     StencilOp

	AlphaTestEnabled bool
	AlphaFunc        CompareFunc
	AlphaRef         float32

	TextureEnabled bool
	Texture        *texture.Object
	TexEnvMode     TexEnv
	TexEnvColor    linear.Color

	FogEnabled bool
	FogMode    FogMode
	FogStart   float32
	FogEnd     float32
	FogDensity float32
	FogColor   linear.Color

	BlendEnabled bool
	BlendSrc     BlendFactor
	BlendDst     BlendFactor
	BlendColor   linear.Color

	ColorMask ColorMask

	ShadeModel ShadeModel
	Lighting   Lighting
}

// Viewport is the screen-space rectangle NDC coordinates map into.
type Viewport struct{ X, Y, W, H int }

// Rect is an axis-aligned integer pixel rectangle, used for the
// scissor box.
type Rect struct{ X, Y, W, H int }
