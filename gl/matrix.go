// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/linear"
)

func (c *Context) stack() *[]linear.M4 {
	switch c.matrixMode {
	case glProjection:
		return &c.projStack
	case glTextureMat:
		return &c.texStack
	default:
		return &c.mvStack
	}
}

func (c *Context) top() *linear.M4 {
	s := *c.stack()
	return &s[len(s)-1]
}

// MatrixMode selects which stack (modelview, projection, texture)
// subsequent matrix operators act on.
func (c *Context) MatrixMode(mode int) {
	c.stateCmd(func(r *recorderT) { r.MatrixMode(mode) }, func() {
		switch mode {
		case glModelview, glProjection, glTextureMat:
			c.matrixMode = mode
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

// PushMatrix duplicates the current stack's top element. Overflowing
// MatrixStackDepth latches stack-overflow and leaves the stack
// unchanged.
func (c *Context) PushMatrix() {
	c.stateCmd(func(r *recorderT) { r.PushMatrix() }, func() {
		s := c.stack()
		if len(*s) >= c.cfg.MatrixStackDepth {
			c.latch(ErrStackOverflow)
			return
		}
		*s = append(*s, (*s)[len(*s)-1])
	})
}

// PopMatrix discards the current stack's top element. Popping the
// last remaining element (depth 1) latches stack-underflow and leaves
// the stack unchanged.
func (c *Context) PopMatrix() {
	c.stateCmd(func(r *recorderT) { r.PopMatrix() }, func() {
		s := c.stack()
		if len(*s) <= 1 {
			c.latch(ErrStackUnderflow)
			return
		}
		*s = (*s)[:len(*s)-1]
	})
}

// LoadIdentity replaces the current stack's top with the identity
// matrix.
func (c *Context) LoadIdentity() {
	c.stateCmd(func(r *recorderT) { r.LoadIdentity() }, func() {
		c.top().I()
	})
}

// LoadMatrix replaces the current stack's top with m.
func (c *Context) LoadMatrix(m linear.M4) {
	c.stateCmd(func(r *recorderT) { r.LoadMatrix(m) }, func() {
		*c.top() = m
	})
}

// MultMatrix composes the current stack's top with m on the right:
// top := top · m.
func (c *Context) MultMatrix(m linear.M4) {
	c.stateCmd(func(r *recorderT) { r.MultMatrix(m) }, func() {
		t := c.top()
		var result linear.M4
		result.Mul(t, &m)
		*t = result
	})
}

// Translate composes the current top with a translation matrix.
func (c *Context) Translate(v linear.V3) {
	c.stateCmd(func(r *recorderT) { r.Translate(v) }, func() {
		var m linear.M4
		m.Translation(&v)
		c.multTop(&m)
	})
}

// Rotate composes the current top with a rotation matrix of angle
// degrees around axis.
func (c *Context) Rotate(angleDegrees float32, axis linear.V3) {
	c.stateCmd(func(r *recorderT) { r.Rotate(angleDegrees, axis) }, func() {
		var m linear.M4
		m.Rotation(angleDegrees*degToRad, &axis)
		c.multTop(&m)
	})
}

// Scale composes the current top with a scaling matrix.
func (c *Context) Scale(v linear.V3) {
	c.stateCmd(func(r *recorderT) { r.Scale(v) }, func() {
		var m linear.M4
		m.Scaling(&v)
		c.multTop(&m)
	})
}

// Ortho composes the current top with an orthographic projection
// matrix (glOrtho conventions).
func (c *Context) Ortho(left, right, bottom, top, near, far float32) {
	c.stateCmd(func(r *recorderT) { r.Ortho(left, right, bottom, top, near, far) }, func() {
		var m linear.M4
		m.Ortho(left, right, bottom, top, near, far)
		c.multTop(&m)
	})
}

// Frustum composes the current top with a perspective projection
// matrix (glFrustum conventions).
func (c *Context) Frustum(left, right, bottom, top, near, far float32) {
	c.stateCmd(func(r *recorderT) { r.Frustum(left, right, bottom, top, near, far) }, func() {
		var m linear.M4
		m.Frustum(left, right, bottom, top, near, far)
		c.multTop(&m)
	})
}

func (c *Context) multTop(m *linear.M4) {
	t := c.top()
	var result linear.M4
	result.Mul(t, m)
	*t = result
}

var degToRad = math32.Pi / 180
