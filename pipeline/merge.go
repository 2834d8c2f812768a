// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/framebuffer"
	"github.com/gviegas/tinygl/linear"
)

// Fragment is one candidate pixel produced by a rasterizer, carrying
// everything MergeFragment needs to run the ordered test/write
// sequence of spec.md §4.10.
type Fragment struct {
	X, Y     int
	Depth    float32 // already mapped to [near,far] via the viewport transform
	Color    linear.Color
	TexCoord linear.V2
	EyeZ     float32
	HasTex   bool // false for points/lines/triangles with texturing disabled
	LOD      float32
}

// MergeFragment runs the ordered scissor/stencil/depth/texture/
// texenv/fog/depth-write/blend/color-mask sequence against fb,
// mutating its planes as each step dictates. Steps run in the exact
// order of spec.md §4.10; a rejection at any step both stops further
// processing and performs that step's side-effecting stencil write,
// if any.
func MergeFragment(fb *framebuffer.Buffer, frag Fragment, st *State) {
	x, y := frag.X, frag.Y

	// 1. Scissor.
	if st.ScissorEnabled {
		r := st.Scissor
		if x < r.X || y < r.Y || x >= r.X+r.W || y >= r.Y+r.H {
			return
		}
	}

	// 2. Stencil read.
	var stencilVal uint8
	if st.StencilEnabled {
		stencilVal = fb.Stencil(x, y)
		ref := int32(st.StencilRef) & int32(st.StencilValueMask)
		val := int32(stencilVal) & int32(st.StencilValueMask)
		if !st.StencilFunc.eval(float32(ref), float32(val)) {
			st.writeStencil(fb, x, y, st.StencilFail.apply(stencilVal, st.StencilRef))
			return
		}
	}

	// 3. Depth.
	depthPass := true
	if st.DepthTestEnabled {
		stored := fb.Depth(x, y)
		depthPass = st.DepthFunc.eval(frag.Depth, stored)
		if !depthPass {
			if st.StencilEnabled {
				st.writeStencil(fb, x, y, st.StencilZFail.apply(stencilVal, st.StencilRef))
			}
			return
		}
	}

	// 4. Stencil pass op.
	if st.StencilEnabled {
		st.writeStencil(fb, x, y, st.StencilZPass.apply(stencilVal, st.StencilRef))
	}

	c := frag.Color

	// 5. Texture sample + alpha test against the sampled texel's
	// alpha. Untextured fragments fall back to testing the
	// fragment's own alpha.
	if st.TextureEnabled && frag.HasTex && st.Texture != nil {
		texel := st.Texture.Sample(frag.TexCoord[0], frag.TexCoord[1], frag.LOD)
		if st.AlphaTestEnabled && !st.AlphaFunc.eval(texel.A, st.AlphaRef) {
			return
		}
		// 6. Texture environment.
		c = combine(st.TexEnvMode, c, texel, st.TexEnvColor)
	} else if st.AlphaTestEnabled && !st.AlphaFunc.eval(c.A, st.AlphaRef) {
		return
	}

	// 7. Fog.
	if st.FogEnabled {
		f := fogFactor(st.FogMode, st.FogStart, st.FogEnd, st.FogDensity, math32.Abs(frag.EyeZ))
		c = applyFog(st.FogColor, c, f)
	}

	// 8. Depth write.
	if st.DepthTestEnabled && depthPass && st.DepthWriteMask {
		fb.SetDepth(x, y, frag.Depth)
	}

	// 9. Blend.
	if st.BlendEnabled {
		dst := fb.Color(x, y).Unpack()
		c = blend(c, dst, st.BlendSrc, st.BlendDst, st.BlendColor)
	}
	c = c.Clamp()

	// 10. Color-mask write.
	st.writeColor(fb, x, y, c)
}

func (st *State) writeStencil(fb *framebuffer.Buffer, x, y int, newVal uint8) {
	mask := st.StencilWriteMask
	old := fb.Stencil(x, y)
	fb.SetStencil(x, y, (old&^mask)|(newVal&mask))
}

func (st *State) writeColor(fb *framebuffer.Buffer, x, y int, c linear.Color) {
	m := st.ColorMask
	switch {
	case m.allChannels():
		fb.SetColor(x, y, linear.PackPixel(c))
	case m.noChannels():
		// no-op
	default:
		old := fb.Color(x, y).Unpack()
		if !m.R {
			c.R = old.R
		}
		if !m.G {
			c.G = old.G
		}
		if !m.B {
			c.B = old.B
		}
		if !m.A {
			c.A = old.A
		}
		fb.SetColor(x, y, linear.PackPixel(c))
	}
}
