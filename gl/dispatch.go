// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import "github.com/gviegas/tinygl/dlist"

// recorderT is a local alias kept short so the many record/exec
// closures in state.go, matrix.go, vertex.go and lists.go stay on one
// line.
type recorderT = dlist.Recorder

// stateCmd routes a state-mutating call through the recorder (if a
// display list is being compiled) and/or the immediate execution
// path, per spec.md §4.1/§4.2. Calling a state-mutating command while
// inside a begin/end bracket latches invalid-operation and the call
// is otherwise ignored — vertex-attribute setters use attrCmd
// instead, which has no such restriction.
func (c *Context) stateCmd(rec func(*dlist.Recorder), exec func()) {
	if c.insideBeginEnd {
		c.latch(ErrInvalidOperation)
		return
	}
	c.attrCmd(rec, exec)
}

// attrCmd records/executes a command with no inside-begin-end
// restriction: the vertex-attribute setters (Color, TexCoord, Normal,
// Vertex, Begin, End) and any command explicitly exempted by spec.md
// §4.1 use this directly.
func (c *Context) attrCmd(rec func(*dlist.Recorder), exec func()) {
	if c.recording() {
		rec(c.rec)
		if c.recMode != modeCompileAndExecute {
			return
		}
	}
	exec()
}

// execCmd runs a state-mutating command that has no display-list
// recorder representation: unlike the Sink-backed commands, it always
// executes immediately, even mid-compile, since there is nothing for
// it to append to the open list. Still honors the inside-begin-end
// restriction every state setter is subject to.
func (c *Context) execCmd(exec func()) {
	if c.insideBeginEnd {
		c.latch(ErrInvalidOperation)
		return
	}
	exec()
}
