// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"github.com/gviegas/tinygl/framebuffer"
	"github.com/gviegas/tinygl/linear"
)

// DrawLine rasterizes the segment a-b with a Bresenham DDA, affinely
// interpolating every attribute, and replicates each stepped pixel
// perpendicular to the line's major axis to honor lineWidth (rounded
// to the nearest positive integer by the caller). Every replicated
// pixel runs through the full fragment merge pipeline (spec.md §4.9).
func DrawLine(fb *framebuffer.Buffer, a, b Vertex, st *State, lineWidth int) {
	x0, y0, z0, _ := mapVertex(&a, st)
	x1, y1, z1, _ := mapVertex(&b, st)
	ix0, iy0 := int(x0), int(y0)
	ix1, iy1 := int(x1), int(y1)

	dx := ix1 - ix0
	dy := iy1 - iy0
	adx, ady := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)
	err := adx - ady

	total := adx
	if ady > total {
		total = ady
	}
	if total == 0 {
		total = 1
	}

	if lineWidth < 1 {
		lineWidth = 1
	}
	halfWidth := lineWidth / 2
	var expandX, expandY int
	if adx > ady {
		expandY = 1
	} else {
		expandX = 1
	}

	curX, curY := ix0, iy0
	step := 0
	for {
		t := float32(step) / float32(total)
		depth := clampf(z0+t*(z1-z0), 0, 1)
		c := a.Color.Lerp(b.Color, t)
		u := a.TexCoord[0] + t*(b.TexCoord[0]-a.TexCoord[0])
		v := a.TexCoord[1] + t*(b.TexCoord[1]-a.TexCoord[1])
		eyeZ := a.EyeZ + t*(b.EyeZ-a.EyeZ)

		for w := -halfWidth; w < lineWidth-halfWidth; w++ {
			MergeFragment(fb, Fragment{
				X: curX + w*expandX, Y: curY + w*expandY,
				Depth:    depth,
				Color:    c,
				TexCoord: linear.V2{u, v},
				EyeZ:     eyeZ,
				HasTex:   true,
			}, st)
		}

		if curX == ix1 && curY == iy1 {
			break
		}
		e2 := err * 2
		if e2 > -ady {
			err -= ady
			curX += sx
		}
		if e2 < adx {
			err += adx
			curY += sy
		}
		step++
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}
