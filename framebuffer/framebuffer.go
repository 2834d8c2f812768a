// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package framebuffer implements the pipeline's color/depth/stencil
// planes: three same-size row-major buffers with bounds-checked
// access and full clears.
package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gviegas/tinygl/linear"
)

// Buffer owns the three planes backing a single context: 32-bit
// packed color, 32-bit float depth, and 8-bit stencil. Width and
// height are fixed for the lifetime of the Buffer.
type Buffer struct {
	width, height int
	colorPlane    []linear.Pixel
	depthPlane    []float32
	stencilPlane  []uint8
}

// New creates a Buffer of the given dimensions. Every plane starts
// zeroed (color transparent black, depth 0, stencil 0); callers
// typically call Clear immediately after creation.
func New(width, height int) *Buffer {
	n := width * height
	return &Buffer{
		width:        width,
		height:       height,
		colorPlane:   make([]linear.Pixel, n),
		depthPlane:   make([]float32, n),
		stencilPlane: make([]uint8, n),
	}
}

// Width returns the buffer's width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer's height in pixels.
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Buffer) index(x, y int) int { return y*b.width + x }

// Color returns the color at (x, y). Out-of-bounds coordinates
// return the zero Pixel.
func (b *Buffer) Color(x, y int) linear.Pixel {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.colorPlane[b.index(x, y)]
}

// SetColor writes the color at (x, y). Out-of-bounds coordinates
// are silently ignored.
func (b *Buffer) SetColor(x, y int, p linear.Pixel) {
	if !b.inBounds(x, y) {
		return
	}
	b.colorPlane[b.index(x, y)] = p
}

// Depth returns the depth at (x, y). Out-of-bounds coordinates
// return 0.
func (b *Buffer) Depth(x, y int) float32 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.depthPlane[b.index(x, y)]
}

// SetDepth writes the depth at (x, y). Out-of-bounds coordinates
// are silently ignored.
func (b *Buffer) SetDepth(x, y int, d float32) {
	if !b.inBounds(x, y) {
		return
	}
	b.depthPlane[b.index(x, y)] = d
}

// Stencil returns the stencil value at (x, y). Out-of-bounds
// coordinates return 0.
func (b *Buffer) Stencil(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.stencilPlane[b.index(x, y)]
}

// SetStencil writes the stencil value at (x, y). Out-of-bounds
// coordinates are silently ignored.
func (b *Buffer) SetStencil(x, y int, s uint8) {
	if !b.inBounds(x, y) {
		return
	}
	b.stencilPlane[b.index(x, y)] = s
}

// ClearColor sets every pixel of the color plane to c.
func (b *Buffer) ClearColor(c linear.Color) {
	p := linear.PackPixel(c)
	for i := range b.colorPlane {
		b.colorPlane[i] = p
	}
}

// ClearDepth sets every pixel of the depth plane to d.
func (b *Buffer) ClearDepth(d float32) {
	for i := range b.depthPlane {
		b.depthPlane[i] = d
	}
}

// ClearStencil sets every pixel of the stencil plane to s.
func (b *Buffer) ClearStencil(s uint8) {
	for i := range b.stencilPlane {
		b.stencilPlane[i] = s
	}
}

// Stride returns the color plane's row stride in bytes, always
// width*4 per the fixed pixel layout.
func (b *Buffer) Stride() int { return b.width * 4 }

// RGBABytes returns the color plane as a packed R,G,B,A byte slice
// in row-major order, one allocation per call. This is the byte
// layout collaborators presenting to a display surface must match.
func (b *Buffer) RGBABytes() []byte {
	out := make([]byte, len(b.colorPlane)*4)
	for i, p := range b.colorPlane {
		r, g, bl, a := p.RGBA8()
		out[i*4+0] = r
		out[i*4+1] = g
		out[i*4+2] = bl
		out[i*4+3] = a
	}
	return out
}

// compile-time interface checks: the color plane is usable directly
// with the standard image ecosystem (encoders, font rasterizers,
// golang.org/x/image consumers) without an intermediate copy.
var (
	_ image.Image = (*ColorImage)(nil)
	_ draw.Image  = (*ColorImage)(nil)
)

// ColorImage adapts a Buffer's color plane to image.Image and
// draw.Image, mirroring how a software 2D rasterizer exposes its
// pixmap to the rest of the Go image ecosystem.
type ColorImage struct{ B *Buffer }

// Image returns an image.Image/draw.Image view of b's color plane.
// Mutations through the returned value are visible in b and vice
// versa; no copy is made.
func (b *Buffer) Image() *ColorImage { return &ColorImage{B: b} }

func (ci *ColorImage) ColorModel() color.Model { return color.RGBAModel }

func (ci *ColorImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, ci.B.width, ci.B.height)
}

func (ci *ColorImage) At(x, y int) color.Color {
	r, g, b, a := ci.B.Color(x, y).RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func (ci *ColorImage) Set(x, y int, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	ci.B.SetColor(x, y, linear.PackRGBA8(rgba.R, rgba.G, rgba.B, rgba.A))
}
