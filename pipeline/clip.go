// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import "github.com/chewxy/math32"

// plane identifies one of the six clip-space half-spaces.
type plane int

const (
	planeNear plane = iota
	planeFar
	planeLeft
	planeRight
	planeBottom
	planeTop
)

var allPlanes = [6]plane{planeNear, planeFar, planeLeft, planeRight, planeBottom, planeTop}

// dist evaluates the linear functional for p at v, non-negative
// when v is inside the half-space.
func (p plane) dist(v *[4]float32) float32 {
	x, y, z, w := v[0], v[1], v[2], v[3]
	switch p {
	case planeNear:
		return w + z
	case planeFar:
		return w - z
	case planeLeft:
		return w + x
	case planeRight:
		return w - x
	case planeBottom:
		return w + y
	default: // planeTop
		return w - y
	}
}

// snap forces the component v corresponds to for plane p to exactly
// ±w, neutralizing floating-point drift at an intersection vertex
// so a later plane pass cannot misclassify it (spec.md §4.5).
func (p plane) snap(v *[4]float32) {
	w := v[3]
	switch p {
	case planeNear:
		v[2] = -w
	case planeFar:
		v[2] = w
	case planeLeft:
		v[0] = -w
	case planeRight:
		v[0] = w
	case planeBottom:
		v[1] = -w
	case planeTop:
		v[1] = w
	}
}

// denomEpsilon is the minimum magnitude an intersection denominator
// must have before it is trusted; spec.md §4.5.
const denomEpsilon = 1e-10

// intersect computes the vertex where the edge a->b crosses plane
// p, given the already-evaluated distances da, db. ok is false if
// the edge is (numerically) parallel to the plane, in which case no
// vertex should be emitted.
func intersect(p plane, a, b *Vertex, da, db float32) (v Vertex, ok bool) {
	denom := da - db
	if math32.Abs(denom) < denomEpsilon {
		return Vertex{}, false
	}
	t := da / denom
	v.Lerp(a, b, t)
	p.snap((*[4]float32)(&v.Clip))
	return v, true
}

// ClipPolygon clips a convex polygon (triangle or general fan)
// against all six clip-space half-spaces using Sutherland-Hodgman,
// one pass per plane in near/far/left/right/bottom/top order. An
// empty result means the polygon was entirely clipped away.
func ClipPolygon(poly []Vertex) []Vertex {
	for _, p := range allPlanes {
		if len(poly) == 0 {
			return poly
		}
		poly = clipOnePlane(poly, p)
	}
	return poly
}

func clipOnePlane(poly []Vertex, p plane) []Vertex {
	n := len(poly)
	out := make([]Vertex, 0, n+1)
	prev := poly[n-1]
	dPrev := p.dist((*[4]float32)(&prev.Clip))
	for i := 0; i < n; i++ {
		cur := poly[i]
		dCur := p.dist((*[4]float32)(&cur.Clip))
		curIn := dCur >= 0
		prevIn := dPrev >= 0
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			if v, ok := intersect(p, &prev, &cur, dPrev, dCur); ok {
				out = append(out, v)
			}
			out = append(out, cur)
		case !curIn && prevIn:
			if v, ok := intersect(p, &prev, &cur, dPrev, dCur); ok {
				out = append(out, v)
			}
			// !curIn && !prevIn: emit nothing.
		}
		prev, dPrev = cur, dCur
	}
	return out
}

// outcode computes the 6-bit Cohen-Sutherland outcode for v, one
// bit per plane set when v is outside that half-space.
func outcode(v *Vertex) (code uint8, dists [6]float32) {
	for i, p := range allPlanes {
		d := p.dist((*[4]float32)(&v.Clip))
		dists[i] = d
		if d < 0 {
			code |= 1 << uint(i)
		}
	}
	return
}

// ClipLine clips the segment a-b against the six clip-space
// half-spaces using Cohen-Sutherland. ok is false if the segment is
// entirely outside (trivial reject or a parallel-plane rejection
// per spec.md §4.5).
func ClipLine(a, b Vertex) (ca, cb Vertex, ok bool) {
	ca, cb = a, b
	for {
		codeA, distA := outcode(&ca)
		codeB, distB := outcode(&cb)
		if codeA == 0 && codeB == 0 {
			return ca, cb, true
		}
		if codeA&codeB != 0 {
			return Vertex{}, Vertex{}, false
		}
		// Pick whichever endpoint is outside and its first violated
		// plane.
		var outCode uint8
		outside := &ca
		inside := &cb
		dOut, dIn := &distA, &distB
		if codeA != 0 {
			outCode = codeA
		} else {
			outCode = codeB
			outside, inside = &cb, &ca
			dOut, dIn = &distB, &distA
		}
		var pIdx int
		for i := 0; i < 6; i++ {
			if outCode&(1<<uint(i)) != 0 {
				pIdx = i
				break
			}
		}
		p := allPlanes[pIdx]
		v, ok := intersect(p, outside, inside, dOut[pIdx], dIn[pIdx])
		if !ok {
			return Vertex{}, Vertex{}, false
		}
		*outside = v
	}
}

// PerspectiveDivide performs the perspective divide on v in place:
// x, y, z are divided by w, and w is replaced by 1/w for
// perspective-correct interpolation downstream. Vertices with
// |w| below 1e-6 collapse to the origin to avoid overflow
// (spec.md §4.5).
func PerspectiveDivide(v *Vertex) {
	w := v.Clip[3]
	if math32.Abs(w) < 1e-6 {
		for i := range v.Clip {
			v.Clip[i] = 0
		}
		return
	}
	inv := 1 / w
	v.Clip[0] *= inv
	v.Clip[1] *= inv
	v.Clip[2] *= inv
	v.Clip[3] = inv
}
