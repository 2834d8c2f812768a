// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// Color is an RGBA color with float32 channels. Values are not
// implicitly clamped; callers that need [0,1] semantics call Clamp.
type Color struct {
	R, G, B, A float32
}

// Clamp clamps every channel of c to [0, 1].
func (c Color) Clamp() Color {
	clamp := func(x float32) float32 {
		switch {
		case x < 0:
			return 0
		case x > 1:
			return 1
		default:
			return x
		}
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)}
}

// Add returns c + d.
func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

// Mul returns the component-wise product of c and d.
func (c Color) Mul(d Color) Color {
	return Color{c.R * d.R, c.G * d.G, c.B * d.B, c.A * d.A}
}

// Scale returns c scaled by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp returns c + t*(d-c).
func (c Color) Lerp(d Color, t float32) Color {
	return Color{
		c.R + t*(d.R-c.R),
		c.G + t*(d.G-c.G),
		c.B + t*(d.B-c.B),
		c.A + t*(d.A-c.A),
	}
}

// BaryColor returns the barycentric combination b0*a + b1*b + b2*c.
func BaryColor(a, b, c Color, b0, b1, b2 float32) Color {
	return Color{
		b0*a.R + b1*b.R + b2*c.R,
		b0*a.G + b1*b.G + b2*c.G,
		b0*a.B + b1*b.B + b2*c.B,
		b0*a.A + b1*b.A + b2*c.A,
	}
}
