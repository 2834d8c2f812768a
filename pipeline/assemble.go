// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

// Topology is a primitive topology, mirroring the GL_POINTS..
// GL_POLYGON family.
type Topology int

const (
	Points Topology = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip
	Polygon
)

// Tri is a triangle expressed as three indices into the in-flight
// vertex buffer.
type Tri [3]int

// Seg is a line segment expressed as two indices into the in-flight
// vertex buffer.
type Seg [2]int

// Assemble walks n buffered vertices under topology, emitting
// triangles, line segments, or point indices per the table in
// spec.md §4.3. Incomplete trailing vertices are discarded without
// error. At most one of the three return slices is non-empty for
// any given topology (Points yields points only, the line
// topologies yield segs only, the rest yield tris only); all three
// are empty when n is too small for a single primitive.
func Assemble(topology Topology, n int) (tris []Tri, segs []Seg, points []int) {
	switch topology {
	case Points:
		points = make([]int, n)
		for i := range points {
			points[i] = i
		}

	case Lines:
		for i := 0; i+1 < n; i += 2 {
			segs = append(segs, Seg{i, i + 1})
		}

	case LineStrip:
		for i := 0; i+1 < n; i++ {
			segs = append(segs, Seg{i, i + 1})
		}

	case LineLoop:
		for i := 0; i+1 < n; i++ {
			segs = append(segs, Seg{i, i + 1})
		}
		if n >= 2 {
			segs = append(segs, Seg{n - 1, 0})
		}

	case Triangles:
		for i := 0; i+2 < n; i += 3 {
			tris = append(tris, Tri{i, i + 1, i + 2})
		}

	case TriangleStrip:
		for i := 0; i+2 < n; i++ {
			if i%2 == 0 {
				tris = append(tris, Tri{i, i + 1, i + 2})
			} else {
				tris = append(tris, Tri{i + 1, i, i + 2})
			}
		}

	case TriangleFan, Polygon:
		for i := 1; i+1 < n; i++ {
			tris = append(tris, Tri{0, i, i + 1})
		}

	case Quads:
		for i := 0; i+3 < n; i += 4 {
			tris = append(tris, Tri{i, i + 1, i + 2}, Tri{i, i + 2, i + 3})
		}

	case QuadStrip:
		for i := 0; i+3 < n; i += 2 {
			tris = append(tris, Tri{i, i + 1, i + 3}, Tri{i, i + 3, i + 2})
		}
	}
	return
}
