// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/framebuffer"
	"github.com/gviegas/tinygl/light"
	"github.com/gviegas/tinygl/linear"
)

// CullMode selects which winding(s) a draw call discards.
type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// PolygonMode selects how a triangle's interior (or, for the
// degenerate cases, its edges/vertices) is rasterized.
type PolygonMode int

const (
	ModeFill PolygonMode = iota
	ModeLine
	ModePoint
)

// FaceMode bundles the facing-dependent draw parameters a triangle
// needs before rasterization: winding convention, culling, and
// independent front/back polygon modes (spec.md §4.7).
type FaceMode struct {
	FrontCCW bool
	Cull     CullMode
	Front    PolygonMode
	Back     PolygonMode
}

func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// DrawTriangle maps v0, v1, v2 to window space, determines facing
// and applies culling, then dispatches to the fill, line, or point
// path selected by the facing's polygon mode.
func DrawTriangle(fb *framebuffer.Buffer, v0, v1, v2 *Vertex, st *State, face FaceMode, lineWidth int) {
	x0, y0, z0, iw0 := mapVertex(v0, st)
	x1, y1, z1, iw1 := mapVertex(v1, st)
	x2, y2, z2, iw2 := mapVertex(v2, st)

	area := edgeFunction(x0, y0, x1, y1, x2, y2)
	var frontFacing bool
	if face.FrontCCW {
		frontFacing = area < 0
	} else {
		frontFacing = area > 0
	}

	switch face.Cull {
	case CullFront:
		if frontFacing {
			return
		}
	case CullBack:
		if !frontFacing {
			return
		}
	case CullFrontAndBack:
		return
	}

	mode := face.Front
	if !frontFacing {
		mode = face.Back
	}

	switch mode {
	case ModePoint:
		DrawPoint(fb, v0, st, 1)
		DrawPoint(fb, v1, st, 1)
		DrawPoint(fb, v2, st, 1)
	case ModeLine:
		DrawLine(fb, *v0, *v1, st, lineWidth)
		DrawLine(fb, *v1, *v2, st, lineWidth)
		DrawLine(fb, *v2, *v0, st, lineWidth)
	default:
		drawFilledTriangle(fb, v0, v1, v2, x0, y0, z0, iw0, x1, y1, z1, iw1, x2, y2, z2, iw2, area, st, !frontFacing)
	}
}

func drawFilledTriangle(
	fb *framebuffer.Buffer,
	v0, v1, v2 *Vertex,
	x0, y0, z0, iw0 float32,
	x1, y1, z1, iw1 float32,
	x2, y2, z2, iw2 float32,
	area float32,
	st *State,
	backFacing bool,
) {
	minX := math32.Min(x0, math32.Min(x1, x2))
	minY := math32.Min(y0, math32.Min(y1, y2))
	maxX := math32.Max(x0, math32.Max(x1, x2))
	maxY := math32.Max(y0, math32.Max(y1, y2))

	vp := st.Viewport
	ix0, iy0 := maxInt(int(minX), vp.X), maxInt(int(minY), vp.Y)
	ix1, iy1 := minInt(int(maxX), vp.X+vp.W-1), minInt(int(maxY), vp.Y+vp.H-1)
	if st.ScissorEnabled {
		r := st.Scissor
		ix0, iy0 = maxInt(ix0, r.X), maxInt(iy0, r.Y)
		ix1, iy1 = minInt(ix1, r.X+r.W-1), minInt(iy1, r.Y+r.H-1)
	}
	if ix0 > ix1 || iy0 > iy1 {
		return
	}

	if math32.Abs(area) < 0.5 {
		return // degenerate: sub-half-pixel coverage
	}
	invArea := 1 / area

	lod := estimateLOD(v0, v1, v2, area, st)

	for y := iy0; y <= iy1; y++ {
		for x := ix0; x <= ix1; x++ {
			fx, fy := float32(x), float32(y)
			e0 := edgeFunction(x1, y1, x2, y2, fx, fy)
			e1 := edgeFunction(x2, y2, x0, y0, fx, fy)
			e2 := edgeFunction(x0, y0, x1, y1, fx, fy)

			inside := (area > 0 && e0 >= 0 && e1 >= 0 && e2 >= 0) ||
				(area < 0 && e0 <= 0 && e1 <= 0 && e2 <= 0)
			if !inside {
				continue
			}

			b0, b1, b2 := e0*invArea, e1*invArea, e2*invArea
			depth := clampf(b0*z0+b1*z1+b2*z2, 0, 1)

			var frag Vertex
			frag.Bary(v0, v1, v2, b0, b1, b2)

			c := frag.Color
			if st.ShadeModel == Flat {
				c = v2.Color
			}

			if st.Lighting.Enabled {
				mat := &st.Lighting.Materials.Front
				normal := frag.EyeNormal
				if backFacing && st.Lighting.TwoSided {
					normal = normal.Scale(-1)
					mat = &st.Lighting.Materials.Back
				}
				if st.ShadeModel == Phong || (backFacing && st.Lighting.TwoSided) {
					c = light.Evaluate(st.Lighting.Lights, st.Lighting.ModelAmbient, mat, frag.EyePos, normal, st.Lighting.LocalViewer)
				}
			}

			u, v := frag.TexCoord[0], frag.TexCoord[1]
			if st.PerspectiveCorrect {
				uOverW := b0*v0.TexCoord[0]*iw0 + b1*v1.TexCoord[0]*iw1 + b2*v2.TexCoord[0]*iw2
				vOverW := b0*v0.TexCoord[1]*iw0 + b1*v1.TexCoord[1]*iw1 + b2*v2.TexCoord[1]*iw2
				oneOverW := b0*iw0 + b1*iw1 + b2*iw2
				w := 1 / oneOverW
				u, v = uOverW*w, vOverW*w
			}

			MergeFragment(fb, Fragment{
				X: x, Y: y,
				Depth:    depth,
				Color:    c,
				TexCoord: linear.V2{u, v},
				EyeZ:     frag.EyeZ,
				HasTex:   true,
				LOD:      lod,
			}, st)
		}
	}
}

// estimateLOD computes the triangle-wide LOD once, per spec.md §4.8:
// half the log2 of the ratio between texel-space area and
// screen-space area, clamped at zero from below for magnification.
func estimateLOD(v0, v1, v2 *Vertex, area float32, st *State) float32 {
	if !st.TextureEnabled || st.Texture == nil {
		return 0
	}
	tw, th := st.Texture.Dim()
	if tw == 0 {
		return 0
	}
	du1 := (v1.TexCoord[0] - v0.TexCoord[0]) * float32(tw)
	dv1 := (v1.TexCoord[1] - v0.TexCoord[1]) * float32(th)
	du2 := (v2.TexCoord[0] - v0.TexCoord[0]) * float32(tw)
	dv2 := (v2.TexCoord[1] - v0.TexCoord[1]) * float32(th)
	texelArea := math32.Abs(du1*dv2-du2*dv1) * 0.5
	screenArea := math32.Abs(area) * 0.5
	if screenArea <= 0 || texelArea <= 0 {
		return 0
	}
	lod := math32.Log2(texelArea/screenArea) * 0.5
	if lod < 0 {
		lod = 0
	}
	return lod
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
