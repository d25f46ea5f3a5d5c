// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhydra

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"github.com/openbrush/polyhydra/coloring"
	"github.com/openbrush/polyhydra/conway"
	"github.com/openbrush/polyhydra/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(ut shapes.UniformTypes, ops ...conway.Operator) Config {
	c := DefaultConfig()
	c.ShapeType = shapes.Uniform
	c.UniformType = ut
	c.Operators = ops
	return c
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, shapes.Uniform, c.ShapeType)
	assert.Equal(t, shapes.Cube, c.UniformType)
	assert.Equal(t, 5, c.P)
	assert.Equal(t, 2, c.Q)
	assert.Equal(t, "ColdHot", c.ColorMap)
	assert.Equal(t, float32(0.5), c.ColorBlend)
	assert.Equal(t, coloring.ByRole, c.ColorMethod)
	assert.Equal(t, colors.White, c.MainColor)
	assert.True(t, c.SafeLimits)
	assert.True(t, c.FlatShading)
	assert.True(t, c.Rescale)
	assert.False(t, c.GenerateSubmeshes)
}

func TestScenarios(t *testing.T) {
	// tetrahedron
	pm := BuildPolyMesh(uniform(shapes.Tetrahedron))
	assert.Equal(t, 4, pm.NumFaces())
	assert.Equal(t, 4, pm.NumVertices())
	assert.Equal(t, 6, pm.NumEdges())

	// single polygon
	c := DefaultConfig()
	c.ShapeType = shapes.Other
	c.OtherType = shapes.Polygon
	c.P = 6
	pm = BuildPolyMesh(c)
	require.Equal(t, 1, pm.NumFaces())
	assert.Equal(t, 6, pm.Faces[0].Sides())
	b, cs := BuildPolyhedron(c)
	assert.Equal(t, 6, b.NumVertex())
	assert.Equal(t, 4, b.NumTriangles())
	assert.Len(t, cs, 1)

	// dual tetrahedron
	pm = BuildPolyMesh(uniform(shapes.Tetrahedron, conway.Operator{Op: conway.Dual, Amount: 1}))
	assert.Equal(t, 4, pm.NumFaces())
	assert.Equal(t, 4, pm.NumVertices())

	// Q above P-2
	c = uniform(shapes.PolygrammicPrism)
	c.P, c.Q = 5, 10
	assert.Equal(t, 3, ValidateConfig(c).Q)

	// a disabled entry has no effect
	trunc := conway.Operator{Op: conway.Truncate, Amount: 0.3}
	disabled := conway.Operator{Op: conway.Kis, Amount: 0.5, Disabled: true}
	a := BuildPolyMesh(uniform(shapes.Cube, disabled, trunc))
	e := BuildPolyMesh(uniform(shapes.Cube, trunc))
	assert.Equal(t, e, a)
}

func TestValidateConfig(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		uniform(shapes.Cube, conway.Operator{Op: conway.Kis, Amount: 12.34567}, conway.Operator{Op: conway.Inset, Amount: -3, Amount2: 9}),
		{ShapeType: shapes.Johnson, P: 40, Q: -2, ColorBlend: 3},
		{ShapeType: shapes.Waterman, P: 0, Q: 100},
		{ShapeType: shapes.Grid, GridShape: shapes.Torus, GridType: shapes.Hex, P: 0, Q: 33},
		{ShapeType: shapes.Other, OtherType: shapes.UvSphere, P: 1, Q: 1, SafeLimits: true,
			Operators: []conway.Operator{{Op: conway.Dual, Amount: 4}, {Op: conway.Truncate, Amount: 0.9}}},
	}
	for i, c := range configs {
		v := ValidateConfig(c)
		assert.Equal(t, v, ValidateConfig(v), i)
		assert.GreaterOrEqual(t, v.ColorBlend, float32(0), i)
		assert.LessOrEqual(t, v.ColorBlend, float32(1), i)
	}

	c := configs[1]
	v := ValidateConfig(c)
	assert.Equal(t, float32(12.34567), c.Operators[0].Amount)
	assert.Equal(t, float32(1), v.Operators[0].Amount)
	assert.Equal(t, float32(0.001), v.Operators[1].Amount)
	assert.Equal(t, float32(0.5), v.Operators[1].Amount2)

	c.SafeLimits = false
	v = ValidateConfig(c)
	assert.Equal(t, float32(6), v.Operators[0].Amount)
	assert.Equal(t, float32(-1), v.Operators[1].Amount)
	assert.Equal(t, float32(2), v.Operators[1].Amount2)

	v = ValidateConfig(configs[5])
	assert.Equal(t, float32(0), v.Operators[0].Amount)
	assert.Equal(t, float32(0.499), v.Operators[1].Amount)
	assert.Equal(t, 3, v.P)
	assert.Equal(t, 2, v.Q)
}

func TestBuildPolyhedron(t *testing.T) {
	c := uniform(shapes.Cube, conway.NewOperator(conway.Kis), conway.NewOperator(conway.Truncate))
	c.GenerateSubmeshes = true
	b, cs := BuildPolyhedron(c)
	pm := BuildPolyMesh(c)
	assert.Len(t, cs, pm.NumFaces())
	tolassert.EqualTol(t, 2, b.MaxDimension(), 1e-4)
	assert.NotEmpty(t, b.Submeshes)
	count := 0
	for _, sm := range b.Submeshes {
		count += sm.Count
	}
	assert.Equal(t, len(b.Index), count)

	b2, cs2 := BuildPolyhedron(c)
	assert.Equal(t, b, b2)
	assert.Equal(t, cs, cs2)

	// a randomized config built once gives buffers matching its mesh
	r := uniform(shapes.Cube, conway.Operator{Op: conway.Kis, Faces: conway.All, Amount: 0.5, Randomize: true})
	r.FlatShading = false
	r.Rescale = false
	rm := BuildPolyMesh(r)
	rb, rcs := BuildBuffers(r, rm)
	require.Equal(t, rm.NumVertices(), rb.NumVertex())
	assert.Len(t, rcs, rm.NumFaces())
	for i, v := range rm.Vertices {
		assert.Equal(t, v, rb.Position(i))
	}

	c.FlatShading = false
	b, _ = BuildPolyhedron(c)
	assert.Equal(t, pm.NumVertices(), b.NumVertex())
	assert.False(t, b.HasColor())
}

func TestAllShapeTypes(t *testing.T) {
	for _, st := range shapes.ShapeTypesValues() {
		c := DefaultConfig()
		c.ShapeType = st
		c.Operators = []conway.Operator{conway.NewOperator(conway.Ambo)}
		b, cs := BuildPolyhedron(c)
		assert.NotEmpty(t, cs, st.String())
		assert.Positive(t, b.NumTriangles(), st.String())
	}
}

func TestWatermanColoring(t *testing.T) {
	c := DefaultConfig()
	c.ShapeType = shapes.Waterman
	c.P, c.Q = 2, 0
	_, cs := BuildPolyhedron(c)
	pm := BuildPolyMesh(c)
	want := coloring.NewAssigner(coloring.ByFaceDirection, coloring.NewPalette(c.PaletteOptions())).FaceColors(pm)
	assert.Equal(t, want, cs)
}

func TestRescaleFailure(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(old)

	b, cs := BuildPolyhedron(uniform(shapes.Cube, conway.NewOperator(conway.FaceRemove)))
	assert.Equal(t, 0, b.NumVertex())
	assert.Empty(t, cs)
	assert.Contains(t, buf.String(), "Failed to rescale")
}

func TestConfigTOML(t *testing.T) {
	c := uniform(shapes.Dodecahedron,
		conway.Operator{Op: conway.Kis, Faces: conway.FiveSided, Amount: 0.3, Randomize: true},
		conway.Operator{Op: conway.Inset, Faces: conway.All, Amount: 0.25, Amount2: -0.1, Disabled: true},
	)
	c.CustomColors = []color.RGBA{colors.Red, colors.Blue}
	c.GradientStops = []color.RGBA{colors.Black, colors.White}
	c.ColorMethod = coloring.BySides
	c.Seed = 7

	data, err := MarshalConfig(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dodecahedron")
	assert.Contains(t, string(data), "FiveSided")

	got, err := UnmarshalConfig(data)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got, err = UnmarshalConfig([]byte("P = 7\nShapeType = 'Johnson'\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, got.P)
	assert.Equal(t, shapes.Johnson, got.ShapeType)
	assert.Equal(t, float32(0.5), got.ColorBlend)

	_, err = UnmarshalConfig([]byte("ShapeType = 'NoSuchShape'\n"))
	assert.ErrorContains(t, err, "NoSuchShape")
	_, err = UnmarshalConfig([]byte("[[Operators]]\nOp = 'Kis'\n\n[[Operators]]\nOp = 'Twist'\n"))
	assert.ErrorContains(t, err, "Operators: 1: Twist")
	got, err = UnmarshalConfig([]byte("colormethod = 'ByArea'\n"))
	require.NoError(t, err)
	assert.Equal(t, coloring.ByArea, got.ColorMethod)
	_, err = UnmarshalConfig([]byte("P = = 3"))
	assert.Error(t, err)
}
