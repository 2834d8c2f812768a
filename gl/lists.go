// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import "github.com/gviegas/tinygl/dlist"

// Context implements dlist.Sink directly: its front-end methods are
// the same ones list playback invokes, so recording, immediate
// execution and playback all run the same state validation.
var _ dlist.Sink = (*Context)(nil)

// GenLists allocates n contiguous fresh display-list names.
func (c *Context) GenLists(n int) (dlist.Name, bool) {
	if c.insideBeginEnd {
		c.latch(ErrInvalidOperation)
		return 0, false
	}
	return c.lists.GenRange(n)
}

// NewList opens name for command recording in the given mode
// (GL_COMPILE or GL_COMPILE_AND_EXECUTE). Nesting it inside an
// already-open recording, or inside a begin/end bracket, latches
// invalid-operation.
func (c *Context) NewList(name dlist.Name, mode int) {
	if c.insideBeginEnd || c.recording() {
		c.latch(ErrInvalidOperation)
		return
	}
	var m listMode
	switch mode {
	case glCompile:
		m = modeCompile
	case glCompileAndExecute:
		m = modeCompileAndExecute
	default:
		c.latch(ErrInvalidEnum)
		return
	}
	rec, ok := c.lists.Recorder(name)
	if !ok {
		c.latch(ErrInvalidValue)
		return
	}
	c.rec = rec
	c.recMode = m
}

// EndList closes the recording opened by NewList. Calling it with no
// recording open latches invalid-operation.
func (c *Context) EndList() {
	if c.rec == nil {
		c.latch(ErrInvalidOperation)
		return
	}
	c.rec.Finish()
	c.rec = nil
}

// CallList plays name's recorded commands back against this context.
// While compiling another list, the call is itself recorded (and,
// for GL_COMPILE_AND_EXECUTE, also run immediately) rather than
// inlined, matching glCallList's nesting semantics. Exceeding the
// call recursion limit latches stack-overflow, is logged, and ends
// the whole playback at the offending call.
func (c *Context) CallList(name uint32) {
	c.attrCmd(func(r *recorderT) { r.CallList(name) }, func() {
		if err := c.lists.Execute(dlist.Name(name), c, 0); err != nil {
			c.latch(ErrStackOverflow)
			c.log.Warn().Err(err).Uint32("list", name).Msg("display list call recursion limit exceeded")
		}
	})
}

// CallLists plays back each name in names in order.
func (c *Context) CallLists(names []uint32) {
	for _, n := range names {
		c.CallList(n)
	}
}

// DeleteLists frees the contiguous range of n names starting at
// first.
func (c *Context) DeleteLists(first dlist.Name, n int) {
	c.execCmd(func() {
		for i := 0; i < n; i++ {
			c.lists.Delete(first + dlist.Name(i))
		}
	})
}

// IsList reports whether name is an allocated, finished display
// list.
func (c *Context) IsList(name dlist.Name) bool {
	l, ok := c.lists.Lookup(name)
	return ok && l.Valid
}
