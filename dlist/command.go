// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package dlist implements the display-list store: a recorded
// sequence of commands per list name, played back against a Sink
// that re-invokes the same front-end entry points the commands were
// captured from.
package dlist

import "github.com/gviegas/tinygl/linear"

// Command is the sum type of every recordable front-end call.
// Concrete command types are unexported; callers never construct
// them directly, only through a Recorder's methods, and
// playback only ever sees them through a type switch in Execute.
type Command interface{ isCommand() }

type cmdBegin struct{ Mode int }
type cmdEnd struct{}
type cmdVertex struct{ X, Y, Z, W float32 }
type cmdColor struct{ C linear.Color }
type cmdTexCoord struct{ S, T float32 }
type cmdNormal struct{ X, Y, Z float32 }
type cmdTranslate struct{ V linear.V3 }
type cmdRotate struct {
	Angle float32
	Axis  linear.V3
}
type cmdScale struct{ V linear.V3 }
type cmdPushMatrix struct{}
type cmdPopMatrix struct{}
type cmdLoadIdentity struct{}
type cmdMultMatrix struct{ M linear.M4 }
type cmdLoadMatrix struct{ M linear.M4 }
type cmdMatrixMode struct{ Mode int }
type cmdOrtho struct{ Left, Right, Bottom, Top, Near, Far float32 }
type cmdFrustum struct{ Left, Right, Bottom, Top, Near, Far float32 }
type cmdEnable struct{ Cap int }
type cmdDisable struct{ Cap int }
type cmdBindTexture struct{ Texture uint32 }
type cmdBlendFunc struct{ Src, Dst int }
type cmdDepthFunc struct{ Func int }
type cmdDepthMask struct{ Flag bool }
type cmdCullFace struct{ Mode int }
type cmdFrontFace struct{ CCW bool }
type cmdShadeModel struct{ Model int }
type cmdLightfv struct {
	Light int
	Pname int
	Value linear.Color
}
type cmdMaterialfv struct {
	Face  int
	Pname int
	Value linear.Color
}
type cmdCallList struct{ List uint32 }

func (cmdBegin) isCommand()        {}
func (cmdEnd) isCommand()          {}
func (cmdVertex) isCommand()       {}
func (cmdColor) isCommand()        {}
func (cmdTexCoord) isCommand()     {}
func (cmdNormal) isCommand()       {}
func (cmdTranslate) isCommand()    {}
func (cmdRotate) isCommand()       {}
func (cmdScale) isCommand()        {}
func (cmdPushMatrix) isCommand()   {}
func (cmdPopMatrix) isCommand()    {}
func (cmdLoadIdentity) isCommand() {}
func (cmdMultMatrix) isCommand()   {}
func (cmdLoadMatrix) isCommand()   {}
func (cmdMatrixMode) isCommand()   {}
func (cmdOrtho) isCommand()        {}
func (cmdFrustum) isCommand()      {}
func (cmdEnable) isCommand()       {}
func (cmdDisable) isCommand()      {}
func (cmdBindTexture) isCommand()  {}
func (cmdBlendFunc) isCommand()    {}
func (cmdDepthFunc) isCommand()    {}
func (cmdDepthMask) isCommand()    {}
func (cmdCullFace) isCommand()     {}
func (cmdFrontFace) isCommand()    {}
func (cmdShadeModel) isCommand()   {}
func (cmdLightfv) isCommand()      {}
func (cmdMaterialfv) isCommand()   {}
func (cmdCallList) isCommand()     {}

// Sink receives a command during either immediate execution or list
// playback. A gl.Context implements Sink with the same methods its
// front-end entry points use internally, so recording and playback
// flow through identical state validation.
type Sink interface {
	Begin(mode int)
	End()
	Vertex(x, y, z, w float32)
	Color(c linear.Color)
	TexCoord(s, t float32)
	Normal(x, y, z float32)
	Translate(v linear.V3)
	Rotate(angle float32, axis linear.V3)
	Scale(v linear.V3)
	PushMatrix()
	PopMatrix()
	LoadIdentity()
	MultMatrix(m linear.M4)
	LoadMatrix(m linear.M4)
	MatrixMode(mode int)
	Ortho(left, right, bottom, top, near, far float32)
	Frustum(left, right, bottom, top, near, far float32)
	Enable(cap int)
	Disable(cap int)
	BindTexture(texture uint32)
	BlendFunc(src, dst int)
	DepthFunc(fn int)
	DepthMask(flag bool)
	CullFace(mode int)
	FrontFace(ccw bool)
	ShadeModel(model int)
	Lightfv(light, pname int, value linear.Color)
	Materialfv(face, pname int, value linear.Color)
}
