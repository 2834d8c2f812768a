// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package material defines the fixed-function material properties
// consumed by the lighting evaluator: independent front/back
// ambient, diffuse, specular and emission colors plus a scalar
// shininess, and the color-material override that lets the current
// vertex color stand in for one or more of those channels.
package material

import "github.com/gviegas/tinygl/linear"

// Material holds one face's (front or back) reflectance
// properties.
type Material struct {
	Ambient   linear.Color
	Diffuse   linear.Color
	Specular  linear.Color
	Emission  linear.Color
	Shininess float32
}

// Default returns OpenGL's default material: ambient (0.2,0.2,0.2,1),
// diffuse (0.8,0.8,0.8,1), specular black, emission black, shininess 0.
func Default() Material {
	return Material{
		Ambient:  linear.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Diffuse:  linear.Color{R: 0.8, G: 0.8, B: 0.8, A: 1},
		Specular: linear.Color{},
		Emission: linear.Color{},
	}
}

// Face selects which material(s) a mutation or color-material
// binding applies to.
type Face int

const (
	Front Face = iota
	Back
	FrontAndBack
)

// Channel selects which material property color-material
// overrides with the current color.
type Channel int

const (
	ChanAmbient Channel = iota
	ChanDiffuse
	ChanSpecular
	ChanEmission
	ChanAmbientAndDiffuse
)

// Pair holds the independent front- and back-face materials of a
// single vertex's geometry.
type Pair struct {
	Front Material
	Back  Material
}

// NewPair returns a Pair with both faces set to Default.
func NewPair() Pair {
	d := Default()
	return Pair{Front: d, Back: d}
}

// Apply overwrites the Channel(s) of the named Face(s) with c,
// implementing glColorMaterial's effect when color-material is
// enabled and a new current color is latched. c is assumed already
// clamped to [0,1] by the caller (spec.md §4.11).
func (p *Pair) Apply(face Face, ch Channel, c linear.Color) {
	set := func(m *Material) {
		switch ch {
		case ChanAmbient:
			m.Ambient = c
		case ChanDiffuse:
			m.Diffuse = c
		case ChanSpecular:
			m.Specular = c
		case ChanEmission:
			m.Emission = c
		case ChanAmbientAndDiffuse:
			m.Ambient, m.Diffuse = c, c
		}
	}
	if face == Front || face == FrontAndBack {
		set(&p.Front)
	}
	if face == Back || face == FrontAndBack {
		set(&p.Back)
	}
}
