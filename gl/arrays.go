// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"encoding/binary"
	"math"

	"github.com/gviegas/tinygl/linear"
)

// arrayPointer describes one vertex-array attribute: its component
// count and element type, the stride between consecutive elements,
// and where its data comes from. The data source is resolved at draw
// time rather than latched when the pointer is set: if a buffer is
// currently bound to GL_ARRAY_BUFFER, offset is a byte offset into
// that buffer's store; otherwise data is used directly, starting at
// offset. Rebinding GL_ARRAY_BUFFER between a *Pointer call and a
// draw therefore changes which source a descriptor reads from — the
// same draw-time resolution src/vbo.c's get_array_pointer performs.
type arrayPointer struct {
	size   int
	typ    int
	stride int
	offset int
	data   []byte
}

func arrayElementSize(typ int) (int, bool) {
	switch typ {
	case glFloat:
		return 4, true
	case glUnsignedByte:
		return 1, true
	default:
		return 0, false
	}
}

func elementIndexSize(typ int) (int, bool) {
	switch typ {
	case glUnsignedByte:
		return 1, true
	case glUnsignedShort:
		return 2, true
	case glUnsignedInt:
		return 4, true
	default:
		return 0, false
	}
}

// arrayBase resolves ap's backing bytes against whatever is bound to
// GL_ARRAY_BUFFER right now, returning nil if the offset falls
// outside the source.
func (c *Context) arrayBase(ap *arrayPointer) []byte {
	if c.boundArray != 0 {
		obj, ok := c.buffers.Lookup(c.boundArray)
		if !ok || ap.offset < 0 || ap.offset > len(obj.Data) {
			return nil
		}
		return obj.Data[ap.offset:]
	}
	if ap.offset < 0 || ap.offset > len(ap.data) {
		return nil
	}
	return ap.data[ap.offset:]
}

func fillArrayDefault(out []float32) {
	for i := range out {
		if i == 3 {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

// readArrayElement decodes the idx'th element of ap out of base into
// out, padding any components beyond ap.size with the same defaults
// Vertex/Color/TexCoord/Normal use for unspecified channels.
func readArrayElement(ap arrayPointer, base []byte, idx int, out []float32) {
	if base == nil || idx < 0 {
		fillArrayDefault(out)
		return
	}
	compSize, ok := arrayElementSize(ap.typ)
	if !ok {
		fillArrayDefault(out)
		return
	}
	stride := ap.stride
	if stride == 0 {
		stride = ap.size * compSize
	}
	if stride <= 0 {
		fillArrayDefault(out)
		return
	}
	off := idx * stride
	if off < 0 || off+ap.size*compSize > len(base) {
		fillArrayDefault(out)
		return
	}
	n := ap.size
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		switch ap.typ {
		case glFloat:
			bits := binary.LittleEndian.Uint32(base[off+i*4:])
			out[i] = math.Float32frombits(bits)
		case glUnsignedByte:
			out[i] = float32(base[off+i]) / 255
		}
	}
	for i := ap.size; i < len(out); i++ {
		if i == 3 {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

func readIndex(b []byte, typ int) uint32 {
	switch typ {
	case glUnsignedByte:
		return uint32(b[0])
	case glUnsignedShort:
		return uint32(binary.LittleEndian.Uint16(b))
	case glUnsignedInt:
		return binary.LittleEndian.Uint32(b)
	default:
		return 0
	}
}

func (c *Context) clientStateFlag(array int) *bool {
	switch array {
	case glVertexArray:
		return &c.vertexArrayEnabled
	case glNormalArray:
		return &c.normalArrayEnabled
	case glColorArray:
		return &c.colorArrayEnabled
	case glTextureCoordArray:
		return &c.texCoordArrayEnabled
	default:
		return nil
	}
}

// EnableClientState turns on one of the vertex-array client-state
// caps (GL_VERTEX_ARRAY and family). Client state is never compiled
// into a display list, so unlike Enable/Disable this always executes
// immediately regardless of whether a list is being compiled.
func (c *Context) EnableClientState(array int) {
	c.execCmd(func() {
		flag := c.clientStateFlag(array)
		if flag == nil {
			c.latch(ErrInvalidEnum)
			return
		}
		*flag = true
	})
}

// DisableClientState turns off one of the vertex-array client-state
// caps.
func (c *Context) DisableClientState(array int) {
	c.execCmd(func() {
		flag := c.clientStateFlag(array)
		if flag == nil {
			c.latch(ErrInvalidEnum)
			return
		}
		*flag = false
	})
}

// VertexPointer sets the descriptor DrawArrays/DrawElements read
// vertex positions from. size must be 2-4 and typ one of GL_FLOAT or
// GL_UNSIGNED_BYTE; stride of 0 means tightly packed.
func (c *Context) VertexPointer(size, typ, stride, offset int, data []byte) {
	c.execCmd(func() {
		if size < 2 || size > 4 {
			c.latch(ErrInvalidValue)
			return
		}
		if _, ok := arrayElementSize(typ); !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		if stride < 0 || offset < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		c.vertexArray = arrayPointer{size: size, typ: typ, stride: stride, offset: offset, data: data}
	})
}

// ColorPointer sets the descriptor for per-vertex color, overriding
// the current color latched by Color for the duration of the draw.
func (c *Context) ColorPointer(size, typ, stride, offset int, data []byte) {
	c.execCmd(func() {
		if size < 3 || size > 4 {
			c.latch(ErrInvalidValue)
			return
		}
		if _, ok := arrayElementSize(typ); !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		if stride < 0 || offset < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		c.colorArray = arrayPointer{size: size, typ: typ, stride: stride, offset: offset, data: data}
	})
}

// TexCoordPointer sets the descriptor for per-vertex texture
// coordinates.
func (c *Context) TexCoordPointer(size, typ, stride, offset int, data []byte) {
	c.execCmd(func() {
		if size < 1 || size > 4 {
			c.latch(ErrInvalidValue)
			return
		}
		if _, ok := arrayElementSize(typ); !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		if stride < 0 || offset < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		c.texCoordArray = arrayPointer{size: size, typ: typ, stride: stride, offset: offset, data: data}
	})
}

// NormalPointer sets the descriptor for per-vertex normals; normals
// are always 3 components.
func (c *Context) NormalPointer(typ, stride, offset int, data []byte) {
	c.execCmd(func() {
		if _, ok := arrayElementSize(typ); !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		if stride < 0 || offset < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		c.normalArray = arrayPointer{size: 3, typ: typ, stride: stride, offset: offset, data: data}
	})
}

// emitArrayVertex decodes index idx out of the resolved array bases
// and drives it through the same Color/TexCoord/Normal/Vertex entry
// points Begin/End-bracketed immediate-mode submission uses, so array
// draws assemble, clip and rasterize identically to direct Vertex
// calls. A size-4 vertex array still only feeds x/y/z through Vertex3,
// dropping w — this matches src/gl_api.c's glDrawArrays/glDrawElements,
// which never special-case a 4-component position either.
func (c *Context) emitArrayVertex(idx int, vbase, cbase, tbase, nbase []byte) {
	var v [4]float32
	readArrayElement(c.vertexArray, vbase, idx, v[:])

	if cbase != nil {
		var col [4]float32
		readArrayElement(c.colorArray, cbase, idx, col[:])
		c.Color(linear.Color{R: col[0], G: col[1], B: col[2], A: col[3]})
	}
	if tbase != nil {
		var t [2]float32
		readArrayElement(c.texCoordArray, tbase, idx, t[:])
		c.TexCoord(t[0], t[1])
	}
	if nbase != nil {
		var n [3]float32
		readArrayElement(c.normalArray, nbase, idx, n[:])
		c.Normal(n[0], n[1], n[2])
	}

	if c.vertexArray.size == 2 {
		c.Vertex2(v[0], v[1])
	} else {
		c.Vertex3(v[0], v[1], v[2])
	}
}

// resolveArrayBases looks up the enabled client arrays' backing bytes
// once per draw call.
func (c *Context) resolveArrayBases() (vbase, cbase, tbase, nbase []byte) {
	vbase = c.arrayBase(&c.vertexArray)
	if c.colorArrayEnabled {
		cbase = c.arrayBase(&c.colorArray)
	}
	if c.texCoordArrayEnabled {
		tbase = c.arrayBase(&c.texCoordArray)
	}
	if c.normalArrayEnabled {
		nbase = c.arrayBase(&c.normalArray)
	}
	return
}

// DrawArrays draws count sequentially-indexed vertices, starting at
// first, sourced from the vertex-array descriptors, feeding them
// through an implicit Begin(mode)/End() bracket. A no-op if
// GL_VERTEX_ARRAY is disabled or its descriptor resolves to no data.
func (c *Context) DrawArrays(mode, first, count int) {
	c.execCmd(func() {
		if count < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		if !c.vertexArrayEnabled {
			return
		}
		vbase, cbase, tbase, nbase := c.resolveArrayBases()
		if vbase == nil {
			return
		}

		c.Begin(mode)
		for i := 0; i < count; i++ {
			c.emitArrayVertex(first+i, vbase, cbase, tbase, nbase)
		}
		c.End()
	})
}

// DrawElements draws count vertices named by an index array of the
// given type (GL_UNSIGNED_BYTE/SHORT/INT). When a buffer is bound to
// GL_ELEMENT_ARRAY_BUFFER, offset indexes into that buffer and
// indices is ignored; otherwise offset indexes into indices directly.
func (c *Context) DrawElements(mode, count, typ, offset int, indices []byte) {
	c.execCmd(func() {
		if count < 0 {
			c.latch(ErrInvalidValue)
			return
		}
		elemSize, ok := elementIndexSize(typ)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		if !c.vertexArrayEnabled {
			return
		}
		vbase, cbase, tbase, nbase := c.resolveArrayBases()
		if vbase == nil {
			return
		}

		var ibase []byte
		if c.boundElement != 0 {
			obj, ok := c.buffers.Lookup(c.boundElement)
			if !ok {
				return
			}
			if offset < 0 || offset > len(obj.Data) {
				c.latch(ErrInvalidValue)
				return
			}
			ibase = obj.Data[offset:]
		} else {
			if offset < 0 || offset > len(indices) {
				c.latch(ErrInvalidValue)
				return
			}
			ibase = indices[offset:]
		}
		if len(ibase) < count*elemSize {
			c.latch(ErrInvalidValue)
			return
		}

		c.Begin(mode)
		for i := 0; i < count; i++ {
			idx := readIndex(ibase[i*elemSize:], typ)
			c.emitArrayVertex(int(idx), vbase, cbase, tbase, nbase)
		}
		c.End()
	})
}
