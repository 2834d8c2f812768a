// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"math"

	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/pipeline"
)

func compareFunc(e int) (pipeline.CompareFunc, bool) {
	switch e {
	case glNever:
		return pipeline.Never, true
	case glLess:
		return pipeline.Less, true
	case glEqual:
		return pipeline.Equal, true
	case glLEqual:
		return pipeline.LEqual, true
	case glGreater:
		return pipeline.Greater, true
	case glNotEqual:
		return pipeline.NotEqual, true
	case glGEqual:
		return pipeline.GEqual, true
	case glAlways:
		return pipeline.Always, true
	default:
		return 0, false
	}
}

func blendFactor(e int) (pipeline.BlendFactor, bool) {
	switch e {
	case glZero:
		return pipeline.FactorZero, true
	case glOne:
		return pipeline.FactorOne, true
	case glSrcColor:
		return pipeline.FactorSrcColor, true
	case glOneMinusSrcColor:
		return pipeline.FactorOneMinusSrcColor, true
	case glDstColor:
		return pipeline.FactorDstColor, true
	case glOneMinusDstColor:
		return pipeline.FactorOneMinusDstColor, true
	case glSrcAlpha:
		return pipeline.FactorSrcAlpha, true
	case glOneMinusSrcAlpha:
		return pipeline.FactorOneMinusSrcAlpha, true
	case glDstAlpha:
		return pipeline.FactorDstAlpha, true
	case glOneMinusDstAlpha:
		return pipeline.FactorOneMinusDstAlpha, true
	case glConstantColor:
		return pipeline.FactorConstantColor, true
	case glOneMinusConstantColor:
		return pipeline.FactorOneMinusConstantColor, true
	case glConstantAlpha:
		return pipeline.FactorConstantAlpha, true
	case glOneMinusConstantAlpha:
		return pipeline.FactorOneMinusConstantAlpha, true
	case glSrcAlphaSaturate:
		return pipeline.FactorSrcAlphaSaturate, true
	default:
		return 0, false
	}
}

func stencilOp(e int) (pipeline.StencilOp, bool) {
	switch e {
	case glKeep:
		return pipeline.OpKeep, true
	case glZero:
		return pipeline.OpZero, true
	case glReplace:
		return pipeline.OpReplace, true
	case glIncr:
		return pipeline.OpIncr, true
	case glDecr:
		return pipeline.OpDecr, true
	case glIncrWrap:
		return pipeline.OpIncrWrap, true
	case glDecrWrap:
		return pipeline.OpDecrWrap, true
	case glInvert:
		return pipeline.OpInvert, true
	default:
		return 0, false
	}
}

func texEnvMode(e int) (pipeline.TexEnv, bool) {
	switch e {
	case glModulate:
		return pipeline.EnvModulate, true
	case glDecal:
		return pipeline.EnvDecal, true
	case glReplace:
		return pipeline.EnvReplace, true
	case glBlend:
		return pipeline.EnvBlend, true
	case glTexEnvAdd:
		return pipeline.EnvAdd, true
	default:
		return 0, false
	}
}

func fogMode(e int) (pipeline.FogMode, bool) {
	switch e {
	case glLinearFog:
		return pipeline.FogLinear, true
	case glExp:
		return pipeline.FogExp, true
	case glExp2:
		return pipeline.FogExp2, true
	default:
		return 0, false
	}
}

// Enable turns on a capability named by one of the canonical enable
// caps (spec.md §6); unrecognized caps latch invalid-enum.
func (c *Context) Enable(cap int) {
	c.stateCmd(func(r *recorderT) { r.Enable(cap) }, func() { c.setCap(cap, true) })
}

// Disable turns off a capability.
func (c *Context) Disable(cap int) {
	c.stateCmd(func(r *recorderT) { r.Disable(cap) }, func() { c.setCap(cap, false) })
}

// IsEnabled reports a capability's current state.
func (c *Context) IsEnabled(cap int) bool {
	switch {
	case cap == glCullFace:
		return c.cullEnabled
	case cap == glDepthTest:
		return c.st.DepthTestEnabled
	case cap == glBlend:
		return c.st.BlendEnabled
	case cap == glTexture2D:
		return c.st.TextureEnabled
	case cap == glLighting:
		return c.st.Lighting.Enabled
	case cap == glFogCap:
		return c.st.FogEnabled
	case cap == glNormalize:
		return c.normalizeEnabled
	case cap == glColorMaterial:
		return c.colorMaterialEnabled
	case cap == glAlphaTest:
		return c.st.AlphaTestEnabled
	case cap == glScissorTest:
		return c.st.ScissorEnabled
	case cap == glStencilTest:
		return c.st.StencilEnabled
	case cap >= glLight0 && cap < glLight0+MaxLights:
		return c.st.Lighting.Lights[cap-glLight0].Enabled
	default:
		c.latch(ErrInvalidEnum)
		return false
	}
}

func (c *Context) setCap(cap int, v bool) {
	switch {
	case cap == glCullFace:
		c.cullEnabled = v
	case cap == glDepthTest:
		c.st.DepthTestEnabled = v
	case cap == glBlend:
		c.st.BlendEnabled = v
	case cap == glTexture2D:
		c.st.TextureEnabled = v
	case cap == glLighting:
		c.st.Lighting.Enabled = v
	case cap == glFogCap:
		c.st.FogEnabled = v
	case cap == glNormalize:
		c.normalizeEnabled = v
	case cap == glColorMaterial:
		c.colorMaterialEnabled = v
	case cap == glAlphaTest:
		c.st.AlphaTestEnabled = v
	case cap == glScissorTest:
		c.st.ScissorEnabled = v
	case cap == glStencilTest:
		c.st.StencilEnabled = v
	case cap >= glLight0 && cap < glLight0+MaxLights:
		c.st.Lighting.Lights[cap-glLight0].Enabled = v
	default:
		c.latch(ErrInvalidEnum)
	}
}

// DepthFunc sets the depth comparison function.
func (c *Context) DepthFunc(fn int) {
	c.stateCmd(func(r *recorderT) { r.DepthFunc(fn) }, func() {
		f, ok := compareFunc(fn)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.DepthFunc = f
	})
}

// DepthMask sets whether the depth-write step is active.
func (c *Context) DepthMask(flag bool) {
	c.stateCmd(func(r *recorderT) { r.DepthMask(flag) }, func() { c.st.DepthWriteMask = flag })
}

// AlphaFunc sets the alpha test function and reference value.
func (c *Context) AlphaFunc(fn int, ref float32) {
	c.execCmd(func() {
		f, ok := compareFunc(fn)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.AlphaFunc = f
		c.st.AlphaRef = clamp01(ref)
	})
}

// StencilFunc sets the stencil test function, reference value and
// value mask.
func (c *Context) StencilFunc(fn int, ref int32, mask uint8) {
	c.execCmd(func() {
		f, ok := compareFunc(fn)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.StencilFunc = f
		c.st.StencilRef = ref
		c.st.StencilValueMask = mask
	})
}

// StencilOp sets the three stencil update operations (fail,
// depth-fail, pass).
func (c *Context) StencilOp(fail, zfail, zpass int) {
	c.execCmd(func() {
		f, ok1 := stencilOp(fail)
		zf, ok2 := stencilOp(zfail)
		zp, ok3 := stencilOp(zpass)
		if !ok1 || !ok2 || !ok3 {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.StencilFail, c.st.StencilZFail, c.st.StencilZPass = f, zf, zp
	})
}

// StencilMask sets the stencil write mask.
func (c *Context) StencilMask(mask uint8) {
	c.execCmd(func() { c.st.StencilWriteMask = mask })
}

// BlendFunc sets the source and destination blend factors.
func (c *Context) BlendFunc(src, dst int) {
	c.stateCmd(func(r *recorderT) { r.BlendFunc(src, dst) }, func() {
		sf, ok1 := blendFactor(src)
		df, ok2 := blendFactor(dst)
		if !ok1 || !ok2 || df == pipeline.FactorSrcAlphaSaturate {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.BlendSrc, c.st.BlendDst = sf, df
	})
}

// BlendColor sets the constant blend color.
func (c *Context) BlendColor(col linear.Color) {
	c.execCmd(func() { c.st.BlendColor = sanitizeColor(col) })
}

// ColorMask selects which framebuffer channels subsequent writes
// affect.
func (c *Context) ColorMask(r, g, b, a bool) {
	c.execCmd(func() { c.st.ColorMask = pipeline.ColorMask{R: r, G: g, B: b, A: a} })
}

// CullFace sets which winding(s) culling discards when GL_CULL_FACE
// is enabled.
func (c *Context) CullFace(mode int) {
	c.stateCmd(func(r *recorderT) { r.CullFace(mode) }, func() {
		switch mode {
		case glFront:
			c.cullMode = pipeline.CullFront
		case glBack:
			c.cullMode = pipeline.CullBack
		case glFrontAndBack:
			c.cullMode = pipeline.CullFrontAndBack
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

// FrontFace selects the winding order considered front-facing: ccw
// true means counter-clockwise (the default), matching
// dlist.Sink's bool-typed parameter rather than a GL_CW/GL_CCW enum.
func (c *Context) FrontFace(ccw bool) {
	c.stateCmd(func(r *recorderT) { r.FrontFace(ccw) }, func() {
		c.frontFaceCCW = ccw
	})
}

// FrontFacei is the enum-accepting convenience form of FrontFace, for
// callers migrating GL_CW/GL_CCW constants.
func (c *Context) FrontFacei(mode int) {
	switch mode {
	case glCCW:
		c.FrontFace(true)
	case glCW:
		c.FrontFace(false)
	default:
		c.latch(ErrInvalidEnum)
	}
}

// PolygonMode sets the rasterization mode (fill/line/point) for the
// named face(s).
func (c *Context) PolygonMode(face, mode int) {
	c.execCmd(func() {
		var pm pipeline.PolygonMode
		switch mode {
		case glPoint:
			pm = pipeline.ModePoint
		case glLine:
			pm = pipeline.ModeLine
		case glFill:
			pm = pipeline.ModeFill
		default:
			c.latch(ErrInvalidEnum)
			return
		}
		switch face {
		case glFront:
			c.polyFront = pm
		case glBack:
			c.polyBack = pm
		case glFrontAndBack:
			c.polyFront, c.polyBack = pm, pm
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

// ShadeModel selects flat, smooth (Gouraud) or Phong shading.
func (c *Context) ShadeModel(model int) {
	c.stateCmd(func(r *recorderT) { r.ShadeModel(model) }, func() {
		switch model {
		case glFlat:
			c.st.ShadeModel = pipeline.Flat
		case glSmoothShade:
			c.st.ShadeModel = pipeline.Smooth
		case glPhong:
			c.st.ShadeModel = pipeline.Phong
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

// TexEnvi sets GL_TEXTURE_ENV_MODE on the (sole) GL_TEXTURE_ENV
// target; GL_TEXTURE_ENV_COLOR is set through TexEnvfv.
func (c *Context) TexEnvi(target, pname, param int) {
	c.execCmd(func() {
		if target != glTextureEnv || pname != glTextureEnvMode {
			c.latch(ErrInvalidEnum)
			return
		}
		mode, ok := texEnvMode(param)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.TexEnvMode = mode
	})
}

func (c *Context) TexEnvfv(target, pname int, value linear.Color) {
	c.execCmd(func() {
		if target != glTextureEnv || pname != glTextureEnvColor {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.TexEnvColor = sanitizeColor(value)
	})
}

// Fogi sets the fog mode.
func (c *Context) Fogi(pname, param int) {
	c.execCmd(func() {
		if pname != glFogMode {
			c.latch(ErrInvalidEnum)
			return
		}
		m, ok := fogMode(param)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.FogMode = m
	})
}

// Fogf sets a scalar fog parameter (density, start, end).
func (c *Context) Fogf(pname int, param float32) {
	c.execCmd(func() {
		switch pname {
		case glFogDensity:
			c.st.FogDensity = param
		case glFogStart:
			c.st.FogStart = param
		case glFogEnd:
			c.st.FogEnd = param
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

// Fogfv sets the fog color.
func (c *Context) Fogfv(pname int, value linear.Color) {
	c.execCmd(func() {
		if pname != glFogColor {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.FogColor = sanitizeColor(value)
	})
}

// Viewport sets the viewport rectangle draws map into.
func (c *Context) Viewport(x, y, w, h int) {
	c.execCmd(func() {
		if w < 0 || h < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		c.st.Viewport = pipeline.Viewport{X: x, Y: y, W: w, H: h}
	})
}

// Scissor sets the scissor rectangle.
func (c *Context) Scissor(x, y, w, h int) {
	c.execCmd(func() {
		if w < 0 || h < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		c.st.Scissor = pipeline.Rect{X: x, Y: y, W: w, H: h}
	})
}

// DepthRange sets the near/far mapping for window-space depth.
func (c *Context) DepthRange(near, far float32) {
	c.execCmd(func() { c.st.DepthNear, c.st.DepthFar = near, far })
}

// LineWidth sets the rasterized line width, rounded to the nearest
// integer by the line rasterizer. Non-positive or non-finite widths
// latch invalid-value (spec.md §7).
func (c *Context) LineWidth(w float32) {
	c.execCmd(func() {
		if !(w > 0 && w <= math.MaxFloat32) {
			c.latch(ErrInvalidValue)
			return
		}
		c.lineWidth = w
	})
}

// PointSize sets the rasterized point size.
func (c *Context) PointSize(s float32) {
	c.execCmd(func() {
		if !(s > 0) {
			c.latch(ErrInvalidValue)
			return
		}
		c.pointSize = s
	})
}

// ClearColor sets the color used by Clear's color-buffer pass.
func (c *Context) ClearColor(col linear.Color) {
	c.execCmd(func() { c.clearColor = sanitizeColor(col) })
}

// ClearDepth sets the depth used by Clear's depth-buffer pass.
func (c *Context) ClearDepth(d float32) { c.execCmd(func() { c.clearDepth = d }) }

// ClearStencil sets the stencil value used by Clear's stencil-buffer
// pass.
func (c *Context) ClearStencil(s uint8) { c.execCmd(func() { c.clearStencil = s }) }

// Clear mask bits.
const (
	ColorBufferBit = 1 << iota
	DepthBufferBit
	StencilBufferBit
)

// Clear clears the buffers named by mask to their configured clear
// values, honoring the color mask, depth mask and scissor rectangle.
func (c *Context) Clear(mask int) {
	c.execCmd(func() {
		x0, y0, x1, y1 := 0, 0, c.fb.Width()-1, c.fb.Height()-1
		if c.st.ScissorEnabled {
			r := c.st.Scissor
			x0, y0 = maxI(x0, r.X), maxI(y0, r.Y)
			x1, y1 = minI(x1, r.X+r.W-1), minI(y1, r.Y+r.H-1)
		}
		m := c.st.ColorMask
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if mask&ColorBufferBit != 0 {
					switch {
					case m.R && m.G && m.B && m.A:
						c.fb.SetColor(x, y, linear.PackPixel(c.clearColor))
					case !m.R && !m.G && !m.B && !m.A:
						// no-op
					default:
						old := c.fb.Color(x, y).Unpack()
						cc := c.clearColor
						if !m.R {
							cc.R = old.R
						}
						if !m.G {
							cc.G = old.G
						}
						if !m.B {
							cc.B = old.B
						}
						if !m.A {
							cc.A = old.A
						}
						c.fb.SetColor(x, y, linear.PackPixel(cc))
					}
				}
				if mask&DepthBufferBit != 0 && c.st.DepthWriteMask {
					c.fb.SetDepth(x, y, c.clearDepth)
				}
				if mask&StencilBufferBit != 0 {
					c.fb.SetStencil(x, y, c.clearStencil)
				}
			}
		}
	})
}

// Hint is accepted for API completeness; every hint target other than
// perspective-correction is a definitional no-op (spec.md §9 leaves
// "don't care" to implementation choice, resolved as "nicest" here).
func (c *Context) Hint(target, mode int) {
	c.execCmd(func() {
		if target == glPerspectiveCorrectionHint {
			c.st.PerspectiveCorrect = mode != glFastest
		}
	})
}

func clamp01(x float32) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// sanitizeColor coerces non-finite components to the permissive
// defaults of spec.md §7: 0 for color channels, 1 for a non-finite
// alpha.
func sanitizeColor(c linear.Color) linear.Color {
	fix := func(x, dflt float32) float32 {
		if x != x || x > 3.4e38 || x < -3.4e38 { // NaN or overflow
			return dflt
		}
		return x
	}
	return linear.Color{R: fix(c.R, 0), G: fix(c.G, 0), B: fix(c.B, 0), A: fix(c.A, 1)}
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}
