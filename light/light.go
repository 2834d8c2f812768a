// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package light defines fixed-function light sources and the
// Blinn-Phong evaluator used to shade a vertex (Gouraud) or a
// fragment (Phong).
package light

import "github.com/gviegas/tinygl/linear"

// MaxLights is the number of light slots a context exposes
// (spec.md §6 implementation limits).
const MaxLights = 8

// Light is a single fixed-function light source. Position and
// SpotDirection are stored in eye space: the front-end transforms
// them by the current modelview matrix at the moment they are set,
// exactly once, not per draw.
type Light struct {
	Enabled bool

	Ambient  linear.Color
	Diffuse  linear.Color
	Specular linear.Color

	// Position.W == 0 means directional (Position.XYZ is the
	// direction towards the light); Position.W != 0 means
	// positional.
	Position linear.V4

	SpotDirection linear.V3
	SpotExponent  float32
	// SpotCutoff in degrees; 180 means "not a spotlight".
	SpotCutoff float32

	ConstantAttenuation float32
	LinearAttenuation   float32
	QuadraticAttenuation float32
}

// Default returns a light with OpenGL's default parameters for
// index 0 (full white diffuse/specular, black ambient, directional
// along -Z, no spot, no attenuation); all other indices default
// ambient/diffuse/specular to black per the OpenGL spec, but this
// constructor always returns the light-0 defaults since index-
// dependent defaults are the front-end's responsibility.
func Default() Light {
	return Light{
		Ambient:             linear.Color{},
		Diffuse:             linear.Color{R: 1, G: 1, B: 1, A: 1},
		Specular:            linear.Color{R: 1, G: 1, B: 1, A: 1},
		Position:            linear.V4{0, 0, 1, 0},
		SpotDirection:       linear.V3{0, 0, -1},
		SpotExponent:        0,
		SpotCutoff:          180,
		ConstantAttenuation: 1,
		LinearAttenuation:   0,
		QuadraticAttenuation: 0,
	}
}
