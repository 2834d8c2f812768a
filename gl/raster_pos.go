// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/pipeline"
)

// RasterPos transforms an object-space point through the current
// modelview-projection and stores the resulting window coordinates
// for use by DrawPixels. A clip w <= 1e-6 marks the position
// invalid, and subsequent DrawPixels calls become no-ops until the
// next valid RasterPos.
func (c *Context) RasterPos(x, y, z, w float32) {
	c.execCmd(func() {
		obj := linear.V4{x, y, z, w}
		var eye, clip linear.V4
		eye.Mul(c.mvTop(), &obj)
		clip.Mul(c.projTop(), &eye)
		if clip[3] <= 1e-6 {
			c.rasterValid = false
			return
		}
		invW := 1 / clip[3]
		ndcX, ndcY := clip[0]*invW, clip[1]*invW
		vp := c.st.Viewport
		winX := (ndcX*0.5 + 0.5) * float32(vp.W) + float32(vp.X)
		winY := (ndcY*0.5 + 0.5) * float32(vp.H) + float32(vp.Y)
		c.rasterX = int(math32.Floor(winX + 0.5))
		c.rasterY = c.fb.Height() - 1 - int(math32.Floor(winY+0.5))
		c.rasterValid = true
	})
}

// pixelFormatChannels reports how many source bytes make up one
// texel for the given format, and whether it carries alpha.
func pixelFormatChannels(format int) (n int, hasAlpha bool, ok bool) {
	switch format {
	case glRGBA:
		return 4, true, true
	case glRGB:
		return 3, false, true
	case glLuminance:
		return 1, false, true
	case glLuminanceAlpha:
		return 2, true, true
	default:
		return 0, false, false
	}
}

func unpackTexel(format int, p []byte) linear.Color {
	const inv255 = 1.0 / 255.0
	switch format {
	case glRGBA:
		return linear.Color{R: float32(p[0]) * inv255, G: float32(p[1]) * inv255, B: float32(p[2]) * inv255, A: float32(p[3]) * inv255}
	case glRGB:
		return linear.Color{R: float32(p[0]) * inv255, G: float32(p[1]) * inv255, B: float32(p[2]) * inv255, A: 1}
	case glLuminance:
		l := float32(p[0]) * inv255
		return linear.Color{R: l, G: l, B: l, A: 1}
	case glLuminanceAlpha:
		l := float32(p[0]) * inv255
		return linear.Color{R: l, G: l, B: l, A: float32(p[1]) * inv255}
	default:
		return linear.Color{}
	}
}

// DrawPixels writes a width x height rectangle of pixels anchored at
// the current raster position's lower-left window coordinate,
// running each texel through alpha test, a depth test against a
// fixed depth of 0, and blend, exactly as a fragment from the
// rasterizer would. A no-op when the raster position is invalid.
func (c *Context) DrawPixels(width, height, format int, data []byte) {
	c.execCmd(func() {
		if !c.rasterValid {
			return
		}
		n, _, ok := pixelFormatChannels(format)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		if len(data) < width*height*n {
			c.latch(ErrInvalidValue)
			return
		}
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				off := (row*width + col) * n
				texel := unpackTexel(format, data[off:off+n])
				x := c.rasterX + col
				y := c.rasterY - row
				pipeline.MergeFragment(c.fb, pipeline.Fragment{
					X:     x,
					Y:     y,
					Depth: 0,
					Color: texel,
				}, &c.st)
			}
		}
	})
}

// ReadPixels copies the color plane of the rectangle at (x, y) of
// the given width and height into dst, flipping rows to OpenGL's
// bottom-up window convention and packing either rgba or rgb bytes
// per the requested format.
func (c *Context) ReadPixels(x, y, width, height, format int, dst []byte) {
	c.execCmd(func() {
		n, _, ok := pixelFormatChannels(format)
		if !ok || format == glLuminance || format == glLuminanceAlpha {
			c.latch(ErrInvalidEnum)
			return
		}
		if len(dst) < width*height*n {
			c.latch(ErrInvalidValue)
			return
		}
		h := c.fb.Height()
		for row := 0; row < height; row++ {
			srcY := h - 1 - (y + row)
			for col := 0; col < width; col++ {
				col8 := c.fb.Color(x+col, srcY).Unpack()
				off := (row*width + col) * n
				dst[off+0] = byte(clamp01(col8.R) * 255)
				dst[off+1] = byte(clamp01(col8.G) * 255)
				dst[off+2] = byte(clamp01(col8.B) * 255)
				if format == glRGBA {
					dst[off+3] = byte(clamp01(col8.A) * 255)
				}
			}
		}
	})
}
