// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import "github.com/gviegas/tinygl/texture"

// GenTextures allocates n fresh texture names. Calling it inside a
// begin/end bracket latches invalid-operation and returns nil.
func (c *Context) GenTextures(n int) []texture.Name {
	if c.insideBeginEnd {
		c.latch(ErrInvalidOperation)
		return nil
	}
	return c.textures.Gen(n)
}

// DeleteTextures frees the named textures, unbinding any that are
// currently bound.
func (c *Context) DeleteTextures(names []texture.Name) {
	c.execCmd(func() {
		for _, n := range names {
			if n == c.boundTexture {
				c.boundTexture = 0
				c.st.Texture = nil
			}
			c.textures.Delete(n)
		}
	})
}

// BindTexture makes name the current GL_TEXTURE_2D target. name must
// already have been returned by GenTextures; binding an unrecognized
// name still latches the boundTexture so subsequent TexImage2D/
// TexParameteri calls surface invalid-operation rather than silently
// targeting the wrong texture.
func (c *Context) BindTexture(name uint32) {
	c.stateCmd(func(r *recorderT) { r.BindTexture(name) }, func() {
		n := texture.Name(name)
		c.boundTexture = n
		c.st.Texture, _ = c.textures.Lookup(n)
	})
}

// TexImage2D uploads the base level of the bound texture from a
// tightly-packed RGBA8 buffer. Only GL_RGBA/GL_UNSIGNED_BYTE is
// accepted; spec.md §6 scopes format conversion out.
func (c *Context) TexImage2D(target, format int, width, height int, pixels []byte) {
	c.execCmd(func() {
		if target != glTexture2D || format != glRGBA {
			c.latch(ErrInvalidEnum)
			return
		}
		obj, ok := c.textures.Lookup(c.boundTexture)
		if !ok {
			c.latch(ErrInvalidOperation)
			return
		}
		if err := obj.SetImage(width, height, pixels); err != nil {
			c.latch(ErrInvalidValue)
			return
		}
		c.st.Texture = obj
	})
}

// TexParameteri sets a filter or wrap parameter on the bound texture.
func (c *Context) TexParameteri(target, pname, param int) {
	c.execCmd(func() {
		if target != glTexture2D {
			c.latch(ErrInvalidEnum)
			return
		}
		obj, ok := c.textures.Lookup(c.boundTexture)
		if !ok {
			c.latch(ErrInvalidOperation)
			return
		}
		switch pname {
		case glTextureMinFilter:
			f, ok := minFilter(param)
			if !ok {
				c.latch(ErrInvalidEnum)
				return
			}
			obj.MinFilter = f
		case glTextureMagFilter:
			switch param {
			case glNearest:
				obj.MagFilter = texture.MagNearest
			case glLinearFilter:
				obj.MagFilter = texture.MagLinear
			default:
				c.latch(ErrInvalidEnum)
			}
		case glTextureWrapS:
			w, ok := wrapMode(param)
			if !ok {
				c.latch(ErrInvalidEnum)
				return
			}
			obj.WrapS = w
		case glTextureWrapT:
			w, ok := wrapMode(param)
			if !ok {
				c.latch(ErrInvalidEnum)
				return
			}
			obj.WrapT = w
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

func minFilter(e int) (texture.MinFilter, bool) {
	switch e {
	case glNearest:
		return texture.Nearest, true
	case glLinearFilter:
		return texture.Linear, true
	case glNearestMipmapNearest:
		return texture.NearestMipmapNearest, true
	case glLinearMipmapNearest:
		return texture.LinearMipmapNearest, true
	case glNearestMipmapLinear:
		return texture.NearestMipmapLinear, true
	case glLinearMipmapLinear:
		return texture.LinearMipmapLinear, true
	default:
		return 0, false
	}
}

func wrapMode(e int) (texture.Wrap, bool) {
	switch e {
	case glRepeat:
		return texture.Repeat, true
	case glClamp:
		return texture.Clamp, true
	case glClampToEdge:
		return texture.ClampToEdge, true
	default:
		return 0, false
	}
}
