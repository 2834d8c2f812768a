// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package pipeline implements the geometry side of the rendering
// pipeline: primitive assembly, clip-space clipping, and the
// triangle/line rasterizers with their fragment-merge pipeline.
// Everything here operates on already-transformed vertices; the
// front-end (package gl) owns the matrix stacks and per-vertex
// transform/lighting step.
package pipeline

import "github.com/gviegas/tinygl/linear"

// Vertex is the set of attributes carried through clipping and
// rasterization. Clip is always populated; EyePos/EyeNormal are
// only meaningful when Phong shading or two-sided per-fragment
// lighting needs them.
type Vertex struct {
	Clip      linear.V4 // clip-space position
	Color     linear.Color
	TexCoord  linear.V2
	EyeZ      float32 // eye-space z, for fog
	EyePos    linear.V3
	EyeNormal linear.V3
}

// Lerp sets v to the linear interpolation of every attribute of a
// and b at parameter t, used both at clip-plane intersections and
// (conceptually) at rasterizer edge walks.
func (v *Vertex) Lerp(a, b *Vertex, t float32) {
	v.Clip.Lerp(&a.Clip, &b.Clip, t)
	v.Color = a.Color.Lerp(b.Color, t)
	v.TexCoord.Lerp(&a.TexCoord, &b.TexCoord, t)
	v.EyeZ = a.EyeZ + t*(b.EyeZ-a.EyeZ)
	v.EyePos.Lerp(&a.EyePos, &b.EyePos, t)
	v.EyeNormal.Lerp(&a.EyeNormal, &b.EyeNormal, t)
}

// Bary sets v to the barycentric combination of a, b, c with
// weights w0, w1, w2 (which must sum to 1), used by the triangle
// rasterizer's affine-interpolated attributes.
func (v *Vertex) Bary(a, b, c *Vertex, w0, w1, w2 float32) {
	v.Clip.Bary(&a.Clip, &b.Clip, &c.Clip, w0, w1, w2)
	v.Color = linear.BaryColor(a.Color, b.Color, c.Color, w0, w1, w2)
	v.TexCoord[0] = w0*a.TexCoord[0] + w1*b.TexCoord[0] + w2*c.TexCoord[0]
	v.TexCoord[1] = w0*a.TexCoord[1] + w1*b.TexCoord[1] + w2*c.TexCoord[1]
	v.EyeZ = w0*a.EyeZ + w1*b.EyeZ + w2*c.EyeZ
	v.EyePos.Bary(&a.EyePos, &b.EyePos, &c.EyePos, w0, w1, w2)
	v.EyeNormal.Bary(&a.EyeNormal, &b.EyeNormal, &c.EyeNormal, w0, w1, w2)
}
