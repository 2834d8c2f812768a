// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import "github.com/gviegas/tinygl/framebuffer"

// DrawPoint maps v to window space and runs the full fragment merge
// pipeline for the size x size square of pixels centered on it. size
// is the point size rounded to the nearest positive integer by the
// caller; 1 rasterizes a single pixel.
func DrawPoint(fb *framebuffer.Buffer, v *Vertex, st *State, size int) {
	if size < 1 {
		size = 1
	}
	x, y, depth, _ := mapVertex(v, st)
	cx, cy := int(x), int(y)
	half := size / 2

	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			MergeFragment(fb, Fragment{
				X: cx - half + dx, Y: cy - half + dy,
				Depth:    depth,
				Color:    v.Color,
				TexCoord: v.TexCoord,
				EyeZ:     v.EyeZ,
				HasTex:   true,
			}, st)
		}
	}
}
