// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package dlist

import (
	"github.com/pkg/errors"

	"github.com/gviegas/tinygl/internal/arena"
	"github.com/gviegas/tinygl/linear"
)

// Name identifies a display list. Names are 1-based; 0 never
// denotes an allocated list.
type Name = arena.Handle

// MaxRecursionDepth bounds nested glCallList playback (spec.md §7
// implementation limits).
const MaxRecursionDepth = 64

// ErrRecursionOverflow is returned by Execute when a list's call
// chain nests deeper than MaxRecursionDepth.
var ErrRecursionOverflow = errors.New("dlist: call recursion depth exceeded")

// List is one recorded command sequence. Valid is set by the store
// only once recording finishes successfully (EndList).
type List struct {
	commands []Command
	Valid    bool
}

// Store is the name-keyed collection of display lists bound to a
// context.
type Store struct {
	arena arena.Arena[List]
}

// GenRange allocates n contiguous fresh list names (glGenLists).
func (s *Store) GenRange(n int) (Name, bool) { return s.arena.NewRange(n) }

// Delete frees name; deleting name 0 or an unallocated name is a
// no-op.
func (s *Store) Delete(name Name) { s.arena.Free(name) }

// Lookup returns the list for name and whether it is allocated.
func (s *Store) Lookup(name Name) (*List, bool) { return s.arena.Get(name) }

// Reserve marks name allocated and returns its list when name lies
// within the store's already-grown range and is currently free. It
// returns (nil, false) for name 0, for a name that is already
// allocated, and for a name beyond that range.
func (s *Store) Reserve(name Name) (*List, bool) { return s.arena.Reserve(name) }

// Recorder appends commands to a single list in place of executing
// them; a gl.Context in compile or compile-and-execute mode routes
// eligible calls through one of these methods.
type Recorder struct{ list *List }

// Recorder returns a Recorder over name's list, clearing any
// previously recorded commands (glNewList always starts empty).
func (s *Store) Recorder(name Name) (*Recorder, bool) {
	l, ok := s.arena.Get(name)
	if !ok {
		return nil, false
	}
	l.commands = l.commands[:0]
	l.Valid = false
	return &Recorder{list: l}, true
}

// Finish marks the recorder's list valid (glEndList).
func (r *Recorder) Finish() { r.list.Valid = true }

func (r *Recorder) append(c Command) { r.list.commands = append(r.list.commands, c) }

func (r *Recorder) Begin(mode int)                 { r.append(cmdBegin{mode}) }
func (r *Recorder) End()                           { r.append(cmdEnd{}) }
func (r *Recorder) Vertex(x, y, z, w float32)      { r.append(cmdVertex{x, y, z, w}) }
func (r *Recorder) Color(c linear.Color)           { r.append(cmdColor{c}) }
func (r *Recorder) TexCoord(s, t float32)          { r.append(cmdTexCoord{s, t}) }
func (r *Recorder) Normal(x, y, z float32)         { r.append(cmdNormal{x, y, z}) }
func (r *Recorder) Translate(v linear.V3)          { r.append(cmdTranslate{v}) }
func (r *Recorder) Rotate(a float32, v linear.V3)  { r.append(cmdRotate{a, v}) }
func (r *Recorder) Scale(v linear.V3)              { r.append(cmdScale{v}) }
func (r *Recorder) PushMatrix()                    { r.append(cmdPushMatrix{}) }
func (r *Recorder) PopMatrix()                     { r.append(cmdPopMatrix{}) }
func (r *Recorder) LoadIdentity()                  { r.append(cmdLoadIdentity{}) }
func (r *Recorder) MultMatrix(m linear.M4)         { r.append(cmdMultMatrix{m}) }
func (r *Recorder) LoadMatrix(m linear.M4)         { r.append(cmdLoadMatrix{m}) }
func (r *Recorder) MatrixMode(mode int)            { r.append(cmdMatrixMode{mode}) }
func (r *Recorder) Enable(cap int)                 { r.append(cmdEnable{cap}) }
func (r *Recorder) Disable(cap int)                { r.append(cmdDisable{cap}) }
func (r *Recorder) BindTexture(texture uint32)     { r.append(cmdBindTexture{texture}) }
func (r *Recorder) BlendFunc(src, dst int)         { r.append(cmdBlendFunc{src, dst}) }
func (r *Recorder) DepthFunc(fn int)               { r.append(cmdDepthFunc{fn}) }
func (r *Recorder) DepthMask(flag bool)            { r.append(cmdDepthMask{flag}) }
func (r *Recorder) CullFace(mode int)              { r.append(cmdCullFace{mode}) }
func (r *Recorder) FrontFace(ccw bool)             { r.append(cmdFrontFace{ccw}) }
func (r *Recorder) ShadeModel(model int)           { r.append(cmdShadeModel{model}) }
func (r *Recorder) CallList(list uint32)           { r.append(cmdCallList{list}) }

func (r *Recorder) Ortho(l, ri, b, t, n, f float32) {
	r.append(cmdOrtho{l, ri, b, t, n, f})
}

func (r *Recorder) Frustum(l, ri, b, t, n, f float32) {
	r.append(cmdFrustum{l, ri, b, t, n, f})
}

func (r *Recorder) Lightfv(light, pname int, value linear.Color) {
	r.append(cmdLightfv{light, pname, value})
}

func (r *Recorder) Materialfv(face, pname int, value linear.Color) {
	r.append(cmdMaterialfv{face, pname, value})
}

// Execute plays name's recorded commands back against sink,
// dispatching each command to its matching Sink method. Nested
// cmdCallList commands recurse through the store with depth
// incremented. Once MaxRecursionDepth is exceeded, Execute returns
// ErrRecursionOverflow instead of recursing further, and every
// enclosing playback stops at that call and returns the same error.
func (s *Store) Execute(name Name, sink Sink, depth int) error {
	if depth > MaxRecursionDepth {
		return ErrRecursionOverflow
	}
	list, ok := s.arena.Get(name)
	if !ok || !list.Valid {
		return nil
	}
	for _, c := range list.commands {
		switch cmd := c.(type) {
		case cmdBegin:
			sink.Begin(cmd.Mode)
		case cmdEnd:
			sink.End()
		case cmdVertex:
			sink.Vertex(cmd.X, cmd.Y, cmd.Z, cmd.W)
		case cmdColor:
			sink.Color(cmd.C)
		case cmdTexCoord:
			sink.TexCoord(cmd.S, cmd.T)
		case cmdNormal:
			sink.Normal(cmd.X, cmd.Y, cmd.Z)
		case cmdTranslate:
			sink.Translate(cmd.V)
		case cmdRotate:
			sink.Rotate(cmd.Angle, cmd.Axis)
		case cmdScale:
			sink.Scale(cmd.V)
		case cmdPushMatrix:
			sink.PushMatrix()
		case cmdPopMatrix:
			sink.PopMatrix()
		case cmdLoadIdentity:
			sink.LoadIdentity()
		case cmdMultMatrix:
			sink.MultMatrix(cmd.M)
		case cmdLoadMatrix:
			sink.LoadMatrix(cmd.M)
		case cmdMatrixMode:
			sink.MatrixMode(cmd.Mode)
		case cmdOrtho:
			sink.Ortho(cmd.Left, cmd.Right, cmd.Bottom, cmd.Top, cmd.Near, cmd.Far)
		case cmdFrustum:
			sink.Frustum(cmd.Left, cmd.Right, cmd.Bottom, cmd.Top, cmd.Near, cmd.Far)
		case cmdEnable:
			sink.Enable(cmd.Cap)
		case cmdDisable:
			sink.Disable(cmd.Cap)
		case cmdBindTexture:
			sink.BindTexture(cmd.Texture)
		case cmdBlendFunc:
			sink.BlendFunc(cmd.Src, cmd.Dst)
		case cmdDepthFunc:
			sink.DepthFunc(cmd.Func)
		case cmdDepthMask:
			sink.DepthMask(cmd.Flag)
		case cmdCullFace:
			sink.CullFace(cmd.Mode)
		case cmdFrontFace:
			sink.FrontFace(cmd.CCW)
		case cmdShadeModel:
			sink.ShadeModel(cmd.Model)
		case cmdLightfv:
			sink.Lightfv(cmd.Light, cmd.Pname, cmd.Value)
		case cmdMaterialfv:
			sink.Materialfv(cmd.Face, cmd.Pname, cmd.Value)
		case cmdCallList:
			if err := s.Execute(Name(cmd.List), sink, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
