// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coloring

import (
	"image/color"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
	"github.com/openbrush/polyhydra/shapes"
	"github.com/stretchr/testify/assert"
)

func box() *polymesh.PolyMesh {
	verts := []math32.Vector3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	loops := [][]int{
		{0, 1, 5, 4}, {3, 7, 6, 2}, {0, 3, 2, 1},
		{4, 5, 6, 7}, {0, 4, 7, 3}, {1, 2, 6, 5},
	}
	return polymesh.NewPolyMesh(verts, loops, nil)
}

// assertNear asserts that the colors differ by at most one in every channel.
func assertNear(t *testing.T, want, got color.RGBA, msgAndArgs ...any) {
	t.Helper()
	near := func(a, b uint8) bool { return int(a)-int(b) <= 1 && int(b)-int(a) <= 1 }
	if !near(want.R, got.R) || !near(want.G, got.G) || !near(want.B, got.B) || !near(want.A, got.A) {
		assert.Fail(t, "colors differ", "want %v, got %v", want, got)
		if len(msgAndArgs) > 0 {
			t.Log(msgAndArgs...)
		}
	}
}

func TestCustomPalette(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.CustomColors = []color.RGBA{colors.Red, colors.Green, colors.Blue}
	opts.ColorBlend = 1
	p := NewPalette(opts)
	assertNear(t, colors.Green, p[0])
	assertNear(t, colors.Red, p[1])
	assertNear(t, colors.Blue, p[2])
	assertNear(t, colors.Green, p[3])
	assertNear(t, colors.Blue, p[11])

	// a single custom color is ignored
	opts.CustomColors = []color.RGBA{colors.Red}
	opts.ColorMap = "NoSuchMap"
	p = NewPalette(opts)
	for i := range p {
		assertNear(t, colors.Spaced(i), p[i], i)
	}
}

func TestBlend(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.MainColor = colors.Black
	opts.ColorBlend = 0
	p := NewPalette(opts)
	for i := range p {
		assertNear(t, colors.Black, p[i], i)
	}

	opts.CustomColors = []color.RGBA{colors.White, colors.White}
	opts.ColorBlend = 0.5
	p = NewPalette(opts)
	assert.InDelta(t, 127.5, float64(p[0].R), 1)

	opts.ColorBlend = 5
	p = NewPalette(opts)
	assertNear(t, colors.White, p[0])
}

func TestGradientStops(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.GradientStops = []color.RGBA{colors.Black, colors.White}
	opts.ColorRange = 0.5
	opts.ColorOffset = 0
	opts.ColorBlend = 1
	p := NewPalette(opts)
	assertNear(t, colors.Black, p[0])
	assert.InDelta(t, 127.5, float64(p[8].R), 2)
	assert.Less(t, p[0].R, p[4].R)
	assert.Less(t, p[4].R, p[8].R)

	// the gradient wraps around
	opts.ColorOffset = 1
	assert.Equal(t, p, NewPalette(opts))
}

func TestPaletteColor(t *testing.T) {
	p := NewPalette(DefaultPaletteOptions())
	assert.Equal(t, p[0], p.Color(12))
	assert.Equal(t, p[11], p.Color(-1))
	assert.Equal(t, p[5], p.Color(29))
}

func TestAssigner(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.GradientStops = []color.RGBA{colors.Black, colors.White}
	opts.ColorBlend = 1
	p := NewPalette(opts)
	pm := box()

	a := NewAssigner(ByRole, p)
	for i := range pm.Faces {
		assert.Equal(t, p[polymesh.Existing], a.FaceColor(pm, i))
	}

	a.Method = BySides
	assert.Equal(t, p[1], a.FaceColor(pm, 0))

	a.Method = ByIndex
	for i := range pm.Faces {
		assert.Equal(t, p[i], a.FaceColor(pm, i))
	}

	a.Method = ByFaceDirection
	assert.Equal(t, []color.RGBA{p[3], p[2], p[5], p[4], p[1], p[0]}, a.FaceColors(pm))

	a.Method = ByArea
	for i := range pm.Faces {
		assert.Equal(t, p[0], a.FaceColor(pm, i))
	}
}

func TestAssignerDeterministic(t *testing.T) {
	p := NewPalette(DefaultPaletteOptions())
	pm := shapes.BuildPrism(5, 2)
	for _, m := range MethodsValues() {
		a := NewAssigner(m, p)
		cs := a.FaceColors(pm)
		assert.Len(t, cs, pm.NumFaces())
		assert.Equal(t, cs, a.FaceColors(pm), m.String())
		for i := range pm.Faces {
			assert.Equal(t, cs[i], a.FaceColor(pm, i), m.String())
		}
	}

	a := NewAssigner(ByArea, p)
	distinct := map[color.RGBA]bool{}
	for _, c := range a.FaceColors(pm) {
		distinct[c] = true
	}
	assert.Len(t, distinct, 2)
}

func TestUnknownMethod(t *testing.T) {
	a := NewAssigner(Methods(100), NewPalette(DefaultPaletteOptions()))
	assert.Panics(t, func() { a.FaceColor(box(), 0) })
}
