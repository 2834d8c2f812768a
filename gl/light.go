// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import "github.com/gviegas/tinygl/linear"

// Lightfv sets a light parameter. Position and SpotDirection are
// transformed by the current modelview matrix at the moment of the
// call and stored in eye space (spec.md §4.4); every other parameter
// is stored as given. Scalar parameters (exponent, cutoff, the three
// attenuation coefficients) are carried in value.R, matching the
// recorder's single-Color-typed payload.
func (c *Context) Lightfv(light, pname int, value linear.Color) {
	c.stateCmd(func(r *recorderT) { r.Lightfv(light, pname, value) }, func() {
		i := light - glLight0
		if i < 0 || i >= MaxLights {
			c.latch(ErrInvalidEnum)
			return
		}
		l := &c.st.Lighting.Lights[i]
		switch pname {
		case glAmbient:
			l.Ambient = sanitizeColor(value)
		case glDiffuse:
			l.Diffuse = sanitizeColor(value)
		case glSpecular:
			l.Specular = sanitizeColor(value)
		case glPosition:
			obj := linear.V4{value.R, value.G, value.B, value.A}
			var eye linear.V4
			eye.Mul(c.mvTop(), &obj)
			l.Position = eye
		case glSpotDirection:
			obj := linear.V3{value.R, value.G, value.B}
			var eye linear.V3
			eye.MulM3(c.mvTop(), &obj)
			l.SpotDirection = eye
		case glSpotExponent:
			l.SpotExponent = value.R
		case glSpotCutoff:
			l.SpotCutoff = value.R
		case glConstantAttenuation:
			l.ConstantAttenuation = value.R
		case glLinearAttenuation:
			l.LinearAttenuation = value.R
		case glQuadraticAttenuation:
			l.QuadraticAttenuation = value.R
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}

// LightModelfv sets the global ambient lighting contribution.
func (c *Context) LightModelfv(pname int, value linear.Color) {
	c.execCmd(func() {
		if pname != glLightModelAmbient {
			c.latch(ErrInvalidEnum)
			return
		}
		c.st.Lighting.ModelAmbient = sanitizeColor(value)
	})
}

// LightModeli sets a boolean light-model parameter (local-viewer
// specular convention, two-sided lighting).
func (c *Context) LightModeli(pname, param int) {
	c.execCmd(func() {
		switch pname {
		case glLightModelLocalViewer:
			c.st.Lighting.LocalViewer = param != 0
		case glLightModelTwoSide:
			c.st.Lighting.TwoSided = param != 0
		default:
			c.latch(ErrInvalidEnum)
		}
	})
}
