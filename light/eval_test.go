// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"testing"

	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/material"
	"github.com/stretchr/testify/assert"
)

func TestNoLightsYieldsEmissionPlusAmbient(t *testing.T) {
	mat := material.Default()
	mat.Emission = linear.Color{R: 0.1, A: 1}
	modelAmbient := linear.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	got := Evaluate(nil, modelAmbient, &mat, linear.V3{0, 0, -1}, linear.V3{0, 0, 1}, false)
	want := mat.Emission.Add(mat.Ambient.Mul(modelAmbient))
	assert.InDelta(t, want.R, got.R, 1e-5)
	assert.InDelta(t, mat.Diffuse.A, got.A, 1e-6)
}

func TestDirectionalLightFacingNormalProducesDiffuse(t *testing.T) {
	mat := material.Default()
	l := Default()
	l.Enabled = true
	l.Position = linear.V4{0, 0, 1, 0} // directional, pointing +Z
	got := Evaluate([]Light{l}, linear.Color{}, &mat, linear.V3{0, 0, -5}, linear.V3{0, 0, 1}, false)
	assert.Greater(t, got.R, mat.Emission.R)
}

func TestDisabledLightContributesNothing(t *testing.T) {
	mat := material.Default()
	l := Default()
	l.Enabled = false
	got := Evaluate([]Light{l}, linear.Color{}, &mat, linear.V3{0, 0, -5}, linear.V3{0, 0, 1}, false)
	assert.Equal(t, float32(0), got.R)
}

func TestBackFacingNormalGetsNoDiffuseOrSpecular(t *testing.T) {
	mat := material.Default()
	mat.Shininess = 20
	mat.Specular = linear.Color{R: 1, G: 1, B: 1, A: 1}
	l := Default()
	l.Enabled = true
	l.Position = linear.V4{0, 0, 1, 0}
	got := Evaluate([]Light{l}, linear.Color{}, &mat, linear.V3{0, 0, -5}, linear.V3{0, 0, -1}, false)
	// Normal faces away from the light: only ambient (zero here) contributes.
	assert.InDelta(t, 0, got.R, 1e-6)
}

func TestSpotlightOutsideConeContributesNothing(t *testing.T) {
	mat := material.Default()
	l := Default()
	l.Position = linear.V4{0, 0, 0, 1} // positional at origin
	l.Enabled = true
	l.SpotCutoff = 10
	l.SpotDirection = linear.V3{1, 0, 0} // pointing +X
	// Shaded point far along -X relative to light: light-to-point
	// direction is -X, opposite the spot direction, well outside a
	// 10-degree cone.
	got := Evaluate([]Light{l}, linear.Color{}, &mat, linear.V3{-5, 0, 0}, linear.V3{0, 0, 1}, false)
	assert.Equal(t, float32(0), got.R)
}

func TestPositionalAttenuationReducesWithDistance(t *testing.T) {
	mat := material.Default()
	l := Default()
	l.Position = linear.V4{0, 0, 0, 1}
	l.Enabled = true
	l.LinearAttenuation = 1
	l.ConstantAttenuation = 0
	near := Evaluate([]Light{l}, linear.Color{}, &mat, linear.V3{0, 0, -1}, linear.V3{0, 0, 1}, false)
	far := Evaluate([]Light{l}, linear.Color{}, &mat, linear.V3{0, 0, -10}, linear.V3{0, 0, 1}, false)
	assert.Greater(t, near.R, far.R)
}
