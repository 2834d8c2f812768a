// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package material

import (
	"testing"

	"github.com/gviegas/tinygl/linear"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	m := Default()
	assert.Equal(t, linear.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}, m.Ambient)
	assert.Equal(t, linear.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}, m.Diffuse)
}

func TestApplyAmbientAndDiffuseFrontAndBack(t *testing.T) {
	p := NewPair()
	c := linear.Color{R: 1, G: 0.5, B: 0, A: 1}
	p.Apply(FrontAndBack, ChanAmbientAndDiffuse, c)
	assert.Equal(t, c, p.Front.Ambient)
	assert.Equal(t, c, p.Front.Diffuse)
	assert.Equal(t, c, p.Back.Ambient)
	assert.Equal(t, c, p.Back.Diffuse)
}

func TestApplyFrontOnlyLeavesBackAlone(t *testing.T) {
	p := NewPair()
	backBefore := p.Back
	p.Apply(Front, ChanSpecular, linear.Color{R: 1, G: 1, B: 1, A: 1})
	assert.Equal(t, backBefore, p.Back)
	assert.Equal(t, linear.Color{R: 1, G: 1, B: 1, A: 1}, p.Front.Specular)
}
