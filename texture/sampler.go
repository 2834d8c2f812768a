// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/linear"
)

// wrapCoord reduces a texture coordinate to [0,1] according to w.
// Repeat takes the mathematical (always non-negative) fractional
// part, so negative coordinates wrap correctly. Clamp and
// ClampToEdge are treated identically per spec.md §4.12: they only
// differ at bilinear texel-center boundaries, which this sampler
// elides.
func wrapCoord(w Wrap, u float32) float32 {
	if w == Repeat {
		f := u - math32.Floor(u)
		if f < 0 {
			f += 1
		}
		return f
	}
	switch {
	case u < 0:
		return 0
	case u > 1:
		return 1
	default:
		return u
	}
}

// texelNearest returns the texel whose center is closest to the
// wrapped coordinate (u, v) within a level of dimensions (w, h).
func texelNearest(level []linear.Pixel, w, h int, u, v float32) linear.Pixel {
	x := int(math32.Floor(u * float32(w)))
	y := int(math32.Floor(v * float32(h)))
	x = clampInt(x, 0, w-1)
	y = clampInt(y, 0, h-1)
	return level[y*w+x]
}

// texelBilinear returns the bilinear blend of the four texels
// nearest to (u, v) within a level of dimensions (w, h), wrapping
// each tap independently so filtering across a Repeat seam is
// correct.
func texelBilinear(level []linear.Pixel, w, h int, wrapS, wrapT Wrap, u, v float32) linear.Color {
	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	at := func(x, y int) linear.Color {
		x = wrapIndex(wrapS, x, w)
		y = wrapIndex(wrapT, y, h)
		return level[y*w+x].Unpack()
	}
	c00 := at(x0, y0)
	c10 := at(x0+1, y0)
	c01 := at(x0, y0+1)
	c11 := at(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

func wrapIndex(w Wrap, i, n int) int {
	if w == Repeat {
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
	return clampInt(i, 0, n-1)
}

func clampInt(x, lo, hi int) int {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// level returns the level-0 or level-1 storage and dimensions,
// generating level 1 lazily on first use. Beyond level 1, the
// result is pinned to level 1.
func (o *Object) level(n int) (pix []linear.Pixel, w, h int) {
	if n <= 0 || o.baseW == 0 {
		return o.base, o.baseW, o.baseH
	}
	o.ensureMip()
	return o.mip, o.mipW, o.mipH
}

// Sample evaluates the texture at (u, v) with triangle-wide LOD lod
// (estimated once by the rasterizer, not per-pixel), selecting the
// minification filter when lod > 0 and the magnification filter
// otherwise, per spec.md §4.12.
func (o *Object) Sample(u, v, lod float32) linear.Color {
	if o.baseW == 0 {
		return linear.Color{}
	}
	u = wrapCoord(o.WrapS, u)
	v = wrapCoord(o.WrapT, v)

	if lod <= 0 {
		return o.sampleLevel(0, o.magIsLinear(), u, v)
	}
	switch o.MinFilter {
	case Nearest, Linear:
		return o.sampleLevel(0, o.MinFilter == Linear, u, v)
	case NearestMipmapNearest, LinearMipmapNearest:
		lvl := roundLOD(lod)
		return o.sampleLevel(lvl, o.MinFilter == LinearMipmapNearest, u, v)
	default: // NearestMipmapLinear, LinearMipmapLinear: blend level 0/1.
		bilinear := o.MinFilter == LinearMipmapLinear
		c0 := o.sampleLevel(0, bilinear, u, v)
		c1 := o.sampleLevel(1, bilinear, u, v)
		f := lod
		if f > 1 {
			f = 1
		}
		return c0.Lerp(c1, f)
	}
}

func (o *Object) magIsLinear() bool { return o.MagFilter == MagLinear }

// roundLOD rounds a non-negative LOD to the nearest of the two
// existing discrete levels (0 or 1), pinning anything beyond to 1.
func roundLOD(lod float32) int {
	if lod < 0.5 {
		return 0
	}
	return 1
}

func (o *Object) sampleLevel(n int, bilinear bool, u, v float32) linear.Color {
	pix, w, h := o.level(n)
	if w == 0 {
		return linear.Color{}
	}
	if bilinear {
		return texelBilinear(pix, w, h, o.WrapS, o.WrapT, u, v)
	}
	return texelNearest(pix, w, h, u, v).Unpack()
}
