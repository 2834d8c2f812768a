// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/tinygl/linear"
	"github.com/gviegas/tinygl/material"
)

// attenEpsilon is the floor applied to the attenuation denominator
// to avoid a divide-by-zero when a positional light coincides with
// the shaded point (spec.md §4.11).
const attenEpsilon = 1e-8

// Evaluate computes the fixed-function OpenGL lighting equation at
// a single eye-space point, per spec.md §4.11. eyePos and eyeNormal
// (which must already be normalized) are in eye space; mat is the
// material for whichever face (front/back) is being shaded.
// localViewer selects between the infinite-viewer (0,0,1) and
// local-viewer normalize(-eyePos) specular half-vector convention.
func Evaluate(lights []Light, lightModelAmbient linear.Color, mat *material.Material, eyePos, eyeNormal linear.V3, localViewer bool) linear.Color {
	result := mat.Emission.Add(mat.Ambient.Mul(lightModelAmbient))

	var viewer linear.V3
	if localViewer {
		var neg linear.V3
		neg.Scale(-1, &eyePos)
		viewer.Norm(&neg)
	} else {
		viewer = linear.V3{0, 0, 1}
	}

	for i := range lights {
		l := &lights[i]
		if !l.Enabled {
			continue
		}

		var L linear.V3
		atten := float32(1)
		if l.Position[3] == 0 {
			L.Norm(&linear.V3{l.Position[0], l.Position[1], l.Position[2]})
		} else {
			lightPos := linear.V3{l.Position[0], l.Position[1], l.Position[2]}
			var diff linear.V3
			diff.Sub(&lightPos, &eyePos)
			d := diff.Len()
			L.Norm(&diff)
			denom := l.ConstantAttenuation + l.LinearAttenuation*d + l.QuadraticAttenuation*d*d
			if denom < attenEpsilon {
				denom = attenEpsilon
			}
			atten = 1 / denom
		}

		if l.SpotCutoff < 180 {
			var negL, spotDir linear.V3
			negL.Scale(-1, &L)
			spotDir.Norm(&l.SpotDirection)
			cosAngle := negL.Dot(&spotDir)
			cosCutoff := math32.Cos(l.SpotCutoff * math32.Pi / 180)
			if cosAngle < cosCutoff {
				continue
			}
			atten *= math32.Pow(cosAngle, l.SpotExponent)
		}

		ambientTerm := mat.Ambient.Mul(l.Ambient).Scale(atten)
		result = result.Add(ambientTerm)

		nDotL := eyeNormal.Dot(&L)
		if nDotL <= 0 {
			continue
		}
		diffuseTerm := mat.Diffuse.Mul(l.Diffuse).Scale(nDotL * atten)
		result = result.Add(diffuseTerm)

		if mat.Shininess > 0 {
			var H linear.V3
			var sum linear.V3
			sum.Add(&L, &viewer)
			H.Norm(&sum)
			nDotH := eyeNormal.Dot(&H)
			if nDotH > 0 {
				spec := math32.Pow(nDotH, mat.Shininess)
				specTerm := mat.Specular.Mul(l.Specular).Scale(spec * atten)
				result = result.Add(specTerm)
			}
		}
	}
	result.A = mat.Diffuse.A
	return result
}
