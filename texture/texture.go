// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package texture implements the name-keyed texture store: RGBA32
// texture objects with a lazily generated half-resolution level,
// filter/wrap parameters, and the sampler used by the rasterizer.
package texture

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/gviegas/tinygl/internal/arena"
	"github.com/gviegas/tinygl/linear"
)

// Name identifies a texture object. The zero Name means "no
// texture" per spec.
type Name = arena.Handle

// MinFilter selects the minification filter.
type MinFilter int

const (
	Nearest MinFilter = iota
	Linear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

// MagFilter selects the magnification filter.
type MagFilter int

const (
	MagNearest MagFilter = iota
	MagLinear
)

// Wrap selects the wrap mode for a texture coordinate axis.
type Wrap int

const (
	Repeat Wrap = iota
	Clamp
	ClampToEdge
)

// MaxDim is the maximum size, in texels, of either texture
// dimension (spec.md §6 implementation limits).
const MaxDim = 2048

// Object is a single texture: a base level plus an optional
// lazily-generated half-resolution level, and its sampling
// parameters.
type Object struct {
	baseW, baseH int
	base         []linear.Pixel

	mipW, mipH int
	mip        []linear.Pixel
	mipValid   bool

	MinFilter MinFilter
	MagFilter MagFilter
	WrapS     Wrap
	WrapT     Wrap
}

// Store is the name-keyed collection of texture objects bound to a
// context.
type Store struct {
	arena arena.Arena[Object]
}

// Gen allocates n fresh texture names with default parameters.
func (s *Store) Gen(n int) []Name {
	out := make([]Name, n)
	for i := range out {
		h, obj := s.arena.New()
		*obj = Object{MinFilter: NearestMipmapLinear, MagFilter: MagLinear, WrapS: Repeat, WrapT: Repeat}
		out[i] = h
	}
	return out
}

// Delete frees name, invalidating any subsequent lookups. Deleting
// name 0 or an unallocated name is a no-op.
func (s *Store) Delete(name Name) { s.arena.Free(name) }

// Lookup returns the texture object for name and whether it exists.
func (s *Store) Lookup(name Name) (*Object, bool) { return s.arena.Get(name) }

// SetImage uploads the base level of obj from an RGBA8 pixel buffer
// (4 bytes per texel, row-major, tightly packed). It invalidates
// the half-resolution level. Dimensions above MaxDim are rejected.
func (o *Object) SetImage(width, height int, rgba []byte) error {
	if width <= 0 || height <= 0 || width > MaxDim || height > MaxDim {
		return errors.Errorf("texture: invalid dimensions %dx%d", width, height)
	}
	if len(rgba) < width*height*4 {
		return errors.New("texture: pixel buffer too small for given dimensions")
	}
	o.baseW, o.baseH = width, height
	o.base = make([]linear.Pixel, width*height)
	for i := range o.base {
		o.base[i] = linear.PackRGBA8(rgba[i*4], rgba[i*4+1], rgba[i*4+2], rgba[i*4+3])
	}
	o.mipValid = false
	o.mip = nil
	return nil
}

// Dim returns the base level's dimensions.
func (o *Object) Dim() (w, h int) { return o.baseW, o.baseH }

// ensureMip lazily builds the half-resolution level via a 2x2 box
// filter (implemented through golang.org/x/image/draw's approximate
// bilinear scaler, which at a clean 2:1 downsample samples the middle
// of each 2x2 source block and so yields its exact average).
func (o *Object) ensureMip() {
	if o.mipValid || o.baseW == 0 || o.baseH == 0 {
		return
	}
	o.mipW, o.mipH = o.baseW/2, o.baseH/2
	if o.mipW < 1 {
		o.mipW = 1
	}
	if o.mipH < 1 {
		o.mipH = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, o.baseW, o.baseH))
	for i, p := range o.base {
		r, g, b, a := p.RGBA8()
		off := i * 4
		src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3] = r, g, b, a
	}
	dst := image.NewRGBA(image.Rect(0, 0, o.mipW, o.mipH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	o.mip = make([]linear.Pixel, o.mipW*o.mipH)
	for i := range o.mip {
		off := i * 4
		o.mip[i] = linear.PackRGBA8(dst.Pix[off], dst.Pix[off+1], dst.Pix[off+2], dst.Pix[off+3])
	}
	o.mipValid = true
}
