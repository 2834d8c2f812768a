// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/material"
)

func materialFace(e int) (material.Face, bool) {
	switch e {
	case glFront:
		return material.Front, true
	case glBack:
		return material.Back, true
	case glFrontAndBack:
		return material.FrontAndBack, true
	default:
		return 0, false
	}
}

// Materialfv sets a material property on one or both faces.
// Shininess is carried in value.R, matching the recorder's
// single-Color-typed payload.
func (c *Context) Materialfv(face, pname int, value linear.Color) {
	c.stateCmd(func(r *recorderT) { r.Materialfv(face, pname, value) }, func() {
		f, ok := materialFace(face)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		set := func(m *material.Material) {
			switch pname {
			case glAmbient:
				m.Ambient = sanitizeColor(value)
			case glDiffuse:
				m.Diffuse = sanitizeColor(value)
			case glSpecular:
				m.Specular = sanitizeColor(value)
			case glEmission:
				m.Emission = sanitizeColor(value)
			case glShininess:
				m.Shininess = value.R
			case glAmbientAndDiffuse:
				cc := sanitizeColor(value)
				m.Ambient, m.Diffuse = cc, cc
			default:
				c.latch(ErrInvalidEnum)
			}
		}
		if f == material.Front || f == material.FrontAndBack {
			set(&c.st.Lighting.Materials.Front)
		}
		if f == material.Back || f == material.FrontAndBack {
			set(&c.st.Lighting.Materials.Back)
		}
	})
}

// ColorMaterial binds the named material channel(s) of face to track
// the current color while color-material tracking is enabled
// (spec.md §4.11).
func (c *Context) ColorMaterial(face, mode int) {
	c.execCmd(func() {
		f, ok := materialFace(face)
		if !ok {
			c.latch(ErrInvalidEnum)
			return
		}
		var ch material.Channel
		switch mode {
		case glAmbient:
			ch = material.ChanAmbient
		case glDiffuse:
			ch = material.ChanDiffuse
		case glSpecular:
			ch = material.ChanSpecular
		case glEmission:
			ch = material.ChanEmission
		case glAmbientAndDiffuse:
			ch = material.ChanAmbientAndDiffuse
		default:
			c.latch(ErrInvalidEnum)
			return
		}
		c.colorMaterialFace, c.colorMaterialChannel = f, ch
	})
}
