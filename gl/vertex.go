// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/gviegas/tinygl/light"
	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/pipeline"
)

func topologyFromEnum(mode int) (pipeline.Topology, bool) {
	switch mode {
	case glPoints:
		return pipeline.Points, true
	case glLines:
		return pipeline.Lines, true
	case glLineLoop:
		return pipeline.LineLoop, true
	case glLineStrip:
		return pipeline.LineStrip, true
	case glTriangles:
		return pipeline.Triangles, true
	case glTriangleStrip:
		return pipeline.TriangleStrip, true
	case glTriangleFan:
		return pipeline.TriangleFan, true
	case glQuads:
		return pipeline.Quads, true
	case glQuadStrip:
		return pipeline.QuadStrip, true
	case glPolygon:
		return pipeline.Polygon, true
	default:
		return 0, false
	}
}

// Begin opens a vertex-submission bracket for the named topology.
// Nesting Begin inside an already-open bracket latches
// invalid-operation.
func (c *Context) Begin(mode int) {
	c.attrCmd(func(r *recorderT) { r.Begin(mode) }, func() {
		if c.insideBeginEnd {
			c.latch(ErrInvalidOperation)
			return
		}
		t, ok := topologyFromEnum(mode)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		c.primTopology = t
		c.insideBeginEnd = true
		c.vbuf = c.vbuf[:0]
	})
}

// End closes the vertex-submission bracket opened by Begin, running
// assembly, clipping and rasterization over the buffered vertices.
// Calling End outside a bracket latches invalid-operation.
func (c *Context) End() {
	c.attrCmd(func(r *recorderT) { r.End() }, func() {
		if !c.insideBeginEnd {
			c.latch(ErrInvalidOperation)
			return
		}
		c.insideBeginEnd = false
		c.flushPrimitive()
	})
}

// Vertex submits one vertex using the current color, texture
// coordinate and normal, transforming it by the modelview and
// projection matrices. Calling it outside a begin/end bracket
// latches invalid-operation.
func (c *Context) Vertex(x, y, z, w float32) {
	c.attrCmd(func(r *recorderT) { r.Vertex(x, y, z, w) }, func() {
		if !c.insideBeginEnd {
			c.latch(ErrInvalidOperation)
			return
		}
		c.emitVertex(x, y, z, w)
	})
}

// Vertex3 is Vertex with w implicitly 1.
func (c *Context) Vertex3(x, y, z float32) { c.Vertex(x, y, z, 1) }

// Vertex2 is Vertex with z implicitly 0 and w implicitly 1.
func (c *Context) Vertex2(x, y float32) { c.Vertex(x, y, 0, 1) }

// Color latches the current color, applied to every Vertex call
// until the next Color. When color-material tracking is enabled, it
// also overwrites the bound material channel(s) (spec.md §4.11).
func (c *Context) Color(col linear.Color) {
	c.attrCmd(func(r *recorderT) { r.Color(col) }, func() {
		c.curColor = sanitizeColor(col)
		if c.colorMaterialEnabled {
			c.st.Lighting.Materials.Apply(c.colorMaterialFace, c.colorMaterialChannel, c.curColor.Clamp())
		}
	})
}

// TexCoord latches the current texture coordinate.
func (c *Context) TexCoord(s, t float32) {
	c.attrCmd(func(r *recorderT) { r.TexCoord(s, t) }, func() {
		c.curTexCoord = linear.V2{s, t}
	})
}

// Normal latches the current normal, consumed in eye space by the
// Gouraud lighting evaluation at Vertex time and by the per-fragment
// evaluation during rasterization.
func (c *Context) Normal(x, y, z float32) {
	c.attrCmd(func(r *recorderT) { r.Normal(x, y, z) }, func() {
		c.curNormal = linear.V3{x, y, z}
	})
}

func (c *Context) mvTop() *linear.M4   { return &c.mvStack[len(c.mvStack)-1] }
func (c *Context) projTop() *linear.M4 { return &c.projStack[len(c.projStack)-1] }
func (c *Context) texTop() *linear.M4  { return &c.texStack[len(c.texStack)-1] }

// emitVertex runs the per-vertex transform: object space through the
// modelview matrix into eye space (and, for the normal, through the
// inverse-transpose), then through the projection matrix into clip
// space; the current texture coordinate is transformed by the
// texture matrix. Gouraud (flat/smooth) lighting is evaluated here,
// using the front material — a back-facing, two-sided triangle's
// color is instead recomputed per-fragment by the rasterizer, which
// alone knows the triangle's facing.
func (c *Context) emitVertex(x, y, z, w float32) {
	obj := linear.V4{x, y, z, w}

	mv := c.mvTop()
	var eye linear.V4
	eye.Mul(mv, &obj)

	var invT linear.M4
	invT.InvertTranspose(mv)
	var eyeNormal linear.V3
	eyeNormal.MulM3(&invT, &c.curNormal)
	if c.normalizeEnabled {
		var n linear.V3
		n.Norm(&eyeNormal)
		eyeNormal = n
	}

	var clip linear.V4
	clip.Mul(c.projTop(), &eye)

	color := c.curColor
	if c.st.Lighting.Enabled && c.st.ShadeModel != pipeline.Phong {
		color = light.Evaluate(
			c.st.Lighting.Lights,
			c.st.Lighting.ModelAmbient,
			&c.st.Lighting.Materials.Front,
			eye.XYZ(),
			eyeNormal,
			c.st.Lighting.LocalViewer,
		)
	}

	v := pipeline.Vertex{
		Clip:      clip,
		Color:     color,
		TexCoord:  c.transformTexCoord(),
		EyeZ:      eye[2],
		EyePos:    eye.XYZ(),
		EyeNormal: eyeNormal,
	}
	c.vbuf = append(c.vbuf, v)
}

func (c *Context) transformTexCoord() linear.V2 {
	in := linear.V4{c.curTexCoord[0], c.curTexCoord[1], 0, 1}
	var out linear.V4
	out.Mul(c.texTop(), &in)
	if out[3] == 0 {
		return linear.V2{out[0], out[1]}
	}
	inv := 1 / out[3]
	return linear.V2{out[0] * inv, out[1] * inv}
}

// flushPrimitive assembles the buffered vertices into triangles,
// segments or points per the current topology, clips each, divides
// by w, and rasterizes. Point primitives skip six-plane clipping;
// DrawPoint has no bounds check of its own, so only the framebuffer's
// accessors drop out-of-range pixels and the viewport rectangle is
// not enforced for points — a deliberate simplification, since a clipped point is either fully
// visible or fully discarded and the near/far planes rarely matter
// for point sprites.
func (c *Context) flushPrimitive() {
	tris, segs, points := pipeline.Assemble(c.primTopology, len(c.vbuf))

	face := pipeline.FaceMode{FrontCCW: c.frontFaceCCW, Front: c.polyFront, Back: c.polyBack}
	if c.cullEnabled {
		face.Cull = c.cullMode
	} else {
		face.Cull = pipeline.CullNone
	}
	lw := roundPositive(c.lineWidth)
	ps := roundPositive(c.pointSize)

	for _, t := range tris {
		poly := []pipeline.Vertex{c.vbuf[t[0]], c.vbuf[t[1]], c.vbuf[t[2]]}
		poly = pipeline.ClipPolygon(poly)
		for i := 1; i+1 < len(poly); i++ {
			v0, v1, v2 := poly[0], poly[i], poly[i+1]
			pipeline.PerspectiveDivide(&v0)
			pipeline.PerspectiveDivide(&v1)
			pipeline.PerspectiveDivide(&v2)
			pipeline.DrawTriangle(c.fb, &v0, &v1, &v2, &c.st, face, lw)
		}
	}

	for _, s := range segs {
		a, b, ok := pipeline.ClipLine(c.vbuf[s[0]], c.vbuf[s[1]])
		if !ok {
			continue
		}
		pipeline.PerspectiveDivide(&a)
		pipeline.PerspectiveDivide(&b)
		pipeline.DrawLine(c.fb, a, b, &c.st, lw)
	}

	for _, idx := range points {
		v := c.vbuf[idx]
		pipeline.PerspectiveDivide(&v)
		pipeline.DrawPoint(c.fb, &v, &c.st, ps)
	}
}

func roundPositive(x float32) int {
	n := int(x + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
