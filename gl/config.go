// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package gl implements the context (state machine) and command
// front-end of the fixed-function pipeline: matrix stacks,
// begin/end-bracketed vertex submission, state setters, display-list
// recording/playback, and the query entry points. It is the package
// an external collaborator imports; everything else in this module is
// a leaf package gl wires together.
//
// Unlike the classic OpenGL binding this pipeline is modeled on, there
// is no process-wide current-context. Every entry point is a method on
// an explicit *Context returned by NewContext; callers that need a
// task-local "current context" convention implement it themselves atop
// this handle.
package gl

import (
	"github.com/rs/zerolog"

	"github.com/gviegas/tinygl/buffer"
	"github.com/gviegas/tinygl/dlist"
	"github.com/gviegas/tinygl/framebuffer"
	"github.com/gviegas/tinygl/light"
	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/material"
	"github.com/gviegas/tinygl/pipeline"
	"github.com/gviegas/tinygl/texture"
)

// Config configures a Context at creation time.
type Config struct {
	// Width and Height are the framebuffer's fixed dimensions.
	// Default is 256x256.
	Width, Height int

	// MatrixStackDepth is the per-mode matrix stack capacity.
	//
	// Default is MaxMatrixStackDepth.
	MatrixStackDepth int

	// Logger receives display-list recursion-limit diagnostics.
	// Nothing is logged on the per-pixel path.
	//
	// Default is a disabled (no-op) logger.
	Logger zerolog.Logger
}

// Implementation limits exposed via query entry points (spec.md §6).
const (
	MaxMatrixStackDepth = 24
	MaxLights           = light.MaxLights
	MaxTextureSize      = texture.MaxDim
	MaxFramebufferDim = 16384
	DepthBits         = 32
	StencilBits       = 8
	MaxListCeiling    = 1024
	MaxListRecursion  = dlist.MaxRecursionDepth
	MaxTextureNames   = 256
	MaxBufferNames    = 256
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:            256,
		Height:           256,
		MatrixStackDepth: MaxMatrixStackDepth,
		Logger:           zerolog.Nop(),
	}
}

// Error is the GL error taxonomy of spec.md §7.
type Error int

const (
	ErrNone Error = iota
	ErrInvalidEnum
	ErrInvalidValue
	ErrInvalidOperation
	ErrStackOverflow
	ErrStackUnderflow
	ErrOutOfMemory
)

// listMode selects how eligible commands are routed while a display
// list is open for recording (spec.md §4.2).
type listMode int

const (
	modeCompile listMode = iota
	modeCompileAndExecute
)

// Context is the sole aggregate owner of the framebuffer, texture
// store, buffer store, display-list store, and in-flight vertex
// buffer, plus every piece of current pipeline state (spec.md §3).
type Context struct {
	cfg Config
	log zerolog.Logger

	fb       *framebuffer.Buffer
	textures texture.Store
	buffers  buffer.Store
	lists    dlist.Store

	err Error

	// Matrix stacks, one per mode, top of stack is the last element.
	matrixMode int
	mvStack    []linear.M4
	projStack  []linear.M4
	texStack   []linear.M4

	// Current vertex attributes, latched by Color/TexCoord/Normal and
	// consumed by every subsequent Vertex call.
	curColor    linear.Color
	curTexCoord linear.V2
	curNormal   linear.V3

	insideBeginEnd bool
	primTopology   pipeline.Topology
	vbuf           []pipeline.Vertex

	lineWidth float32
	pointSize float32

	frontFaceCCW bool
	cullEnabled  bool
	cullMode     pipeline.CullMode
	polyFront    pipeline.PolygonMode
	polyBack     pipeline.PolygonMode

	normalizeEnabled     bool
	colorMaterialEnabled bool
	colorMaterialFace    material.Face
	colorMaterialChannel material.Channel

	st pipeline.State // fragment-merge / rasterizer state shared with pipeline

	boundTexture texture.Name
	boundArray   buffer.Name
	boundElement buffer.Name

	// Vertex-array client state consumed by DrawArrays/DrawElements:
	// one enable bit and one descriptor per attribute.
	vertexArrayEnabled   bool
	normalArrayEnabled   bool
	colorArrayEnabled    bool
	texCoordArrayEnabled bool
	vertexArray          arrayPointer
	normalArray          arrayPointer
	colorArray           arrayPointer
	texCoordArray        arrayPointer

	clearColor   linear.Color
	clearDepth   float32
	clearStencil uint8

	// Display-list recording cursor: nil when not recording.
	rec     *dlist.Recorder
	recMode listMode

	rasterX, rasterY int
	rasterValid      bool
}

// NewContext creates a Context with a framebuffer of the configured
// dimensions and OpenGL's documented fixed-function defaults.
func NewContext(cfg Config) *Context {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultConfig().Height
	}
	if cfg.MatrixStackDepth <= 0 {
		cfg.MatrixStackDepth = MaxMatrixStackDepth
	}

	c := &Context{
		cfg: cfg,
		log: cfg.Logger,
		fb:  framebuffer.New(cfg.Width, cfg.Height),

		curColor:  linear.Color{R: 1, G: 1, B: 1, A: 1},
		lineWidth: 1,
		pointSize: 1,

		frontFaceCCW: true,
		polyFront:    pipeline.ModeFill,
		polyBack:     pipeline.ModeFill,

		clearDepth: 1,
	}

	var id linear.M4
	id.I()
	c.mvStack = []linear.M4{id}
	c.projStack = []linear.M4{id}
	c.texStack = []linear.M4{id}
	c.matrixMode = glModelview

	c.st.Viewport = pipeline.Viewport{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}
	c.st.DepthFar = 1
	c.st.PerspectiveCorrect = true
	c.st.DepthFunc = pipeline.Less
	c.st.DepthWriteMask = true
	c.st.StencilFunc = pipeline.Always
	c.st.StencilValueMask = 0xFF
	c.st.StencilWriteMask = 0xFF
	c.st.StencilFail = pipeline.OpKeep
	c.st.StencilZFail = pipeline.OpKeep
	c.st.StencilZPass = pipeline.OpKeep
	c.st.AlphaFunc = pipeline.Always
	c.st.BlendSrc = pipeline.FactorOne
	c.st.BlendDst = pipeline.FactorZero
	c.st.ColorMask = pipeline.ColorMask{R: true, G: true, B: true, A: true}
	c.st.TexEnvMode = pipeline.EnvModulate
	c.st.FogMode = pipeline.FogExp
	c.st.FogDensity = 1
	c.st.FogEnd = 1
	c.colorMaterialFace = material.FrontAndBack
	c.colorMaterialChannel = material.ChanAmbientAndDiffuse
	c.st.Lighting.ModelAmbient = linear.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	c.st.Lighting.Materials = material.NewPair()
	c.st.Lighting.Lights = make([]light.Light, MaxLights)
	c.st.Lighting.Lights[0] = light.Default()
	for i := 1; i < MaxLights; i++ {
		l := light.Default()
		l.Ambient, l.Diffuse, l.Specular = linear.Color{}, linear.Color{}, linear.Color{}
		c.st.Lighting.Lights[i] = l
	}

	return c
}

// Framebuffer returns the context's framebuffer for a collaborator to
// present, read back, or inspect in tests. Outside the scope of the
// front-end's own entry points (spec.md §1).
func (c *Context) Framebuffer() *framebuffer.Buffer { return c.fb }

// GetError returns and clears the latched error, or ErrNone if none is
// latched (spec.md §7). Unlike every other entry point, GetError
// always executes, regardless of whether a context would otherwise be
// considered unbound.
func (c *Context) GetError() Error {
	e := c.err
	c.err = ErrNone
	return e
}

// latch records e if no error is currently latched; subsequent errors
// are dropped until the latch is read.
func (c *Context) latch(e Error) {
	if c.err == ErrNone {
		c.err = e
	}
}

func (c *Context) recording() bool { return c.rec != nil }
