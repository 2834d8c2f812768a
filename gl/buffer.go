// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import "github.com/gviegas/tinygl/buffer"

func bufferUsage(e int) (buffer.Usage, bool) {
	switch e {
	case glStaticDraw:
		return buffer.StaticDraw, true
	case glDynamicDraw:
		return buffer.DynamicDraw, true
	case glStreamDraw:
		return buffer.StreamDraw, true
	default:
		return 0, false
	}
}

func (c *Context) bufferTarget(target int) *buffer.Name {
	switch target {
	case glArrayBuffer:
		return &c.boundArray
	case glElementArrayBuffer:
		return &c.boundElement
	default:
		return nil
	}
}

// GenBuffers allocates n fresh, empty buffer names.
func (c *Context) GenBuffers(n int) []buffer.Name {
	if c.insideBeginEnd {
		c.latch(ErrInvalidOperation)
		return nil
	}
	return c.buffers.Gen(n)
}

// DeleteBuffers frees the named buffers, unbinding any that are
// currently bound to either target.
func (c *Context) DeleteBuffers(names []buffer.Name) {
	c.execCmd(func() {
		for _, n := range names {
			if n == c.boundArray {
				c.boundArray = 0
			}
			if n == c.boundElement {
				c.boundElement = 0
			}
			c.buffers.Delete(n)
		}
	})
}

// BindBuffer makes name current on target (GL_ARRAY_BUFFER or
// GL_ELEMENT_ARRAY_BUFFER).
func (c *Context) BindBuffer(target int, name buffer.Name) {
	c.execCmd(func() {
		slot := c.bufferTarget(target)
		if slot == nil {
			c.latch(ErrInvalidEnum)
			return
		}
		*slot = name
	})
}

// BufferData replaces the entire contents of the buffer bound to
// target.
func (c *Context) BufferData(target int, data []byte, usage int) {
	c.execCmd(func() {
		slot := c.bufferTarget(target)
		if slot == nil {
			c.latch(ErrInvalidEnum)
			return
		}
		u, ok := bufferUsage(usage)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		obj, ok := c.buffers.Lookup(*slot)
		if !ok {
			c.latch(ErrInvalidOperation)
			return
		}
		obj.SetData(data, u)
	})
}

// BufferSubData overwrites part of the buffer bound to target.
// Writing past the buffer's end latches invalid-value.
func (c *Context) BufferSubData(target int, offset int, data []byte) {
	c.execCmd(func() {
		slot := c.bufferTarget(target)
		if slot == nil {
			c.latch(ErrInvalidEnum)
			return
		}
		obj, ok := c.buffers.Lookup(*slot)
		if !ok {
			c.latch(ErrInvalidOperation)
			return
		}
		if err := obj.SubData(offset, data); err != nil {
			c.latch(ErrInvalidValue)
		}
	})
}
