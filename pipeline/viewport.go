// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import "github.com/chewxy/math32"

// mapVertex maps an already perspective-divided vertex's NDC
// position to window coordinates: x, y flipped so row 0 is the top,
// and depth mapped into [DepthNear, DepthFar] (spec.md §4.6). invW
// is Clip[3], left as 1/w for perspective-correct interpolation.
func mapVertex(v *Vertex, st *State) (x, y, depth, invW float32) {
	vp := st.Viewport
	x = math32.Floor((v.Clip[0]+1)/2*float32(vp.W) + float32(vp.X))
	y = math32.Floor((1-v.Clip[1])/2*float32(vp.H) + float32(vp.Y))
	depth = (v.Clip[2]+1)/2*(st.DepthFar-st.DepthNear) + st.DepthNear
	switch {
	case depth < 0:
		depth = 0
	case depth > 1:
		depth = 1
	}
	invW = v.Clip[3]
	return
}

func clampf(x, lo, hi float32) float32 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
