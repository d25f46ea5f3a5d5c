// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conway

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
	"github.com/openbrush/polyhydra/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube() *polymesh.PolyMesh {
	return shapes.Build(shapes.Params{ShapeType: shapes.Uniform, UniformType: shapes.Cube})
}

func tetrahedron() *polymesh.PolyMesh {
	return shapes.Build(shapes.Params{ShapeType: shapes.Uniform, UniformType: shapes.Tetrahedron})
}

// box returns an axis aligned cube with outward faces.
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

func apply(pm *polymesh.PolyMesh, ops ...Operator) *polymesh.PolyMesh {
	e := &Engine{Seed: 1, Check: true}
	return e.Apply(pm, ops)
}

func TestOperatorsOnCube(t *testing.T) {
	tests := []struct {
		op           Ops
		verts, faces int
	}{
		{Dual, 6, 8},
		{Kis, 14, 24},
		{Ambo, 12, 14},
		{Zip, 24, 14},
		{Expand, 24, 26},
		{Bevel, 48, 26},
		{Join, 14, 12},
		{Needle, 14, 24},
		{Ortho, 26, 24},
		{Meta, 26, 48},
		{Truncate, 24, 14},
		{Chamfer, 32, 18},
		{Gyro, 38, 24},
		{Snub, 24, 38},
		{Subdivide, 26, 24},
		{Inset, 32, 30},
		{Extrude, 32, 30},
		{Spherize, 8, 6},
		{Recenter, 8, 6},
		{SitLevel, 8, 6},
	}
	for _, test := range tests {
		t.Run(test.op.String(), func(t *testing.T) {
			pm := apply(cube(), NewOperator(test.op))
			require.NoError(t, pm.Validate())
			assert.Equal(t, test.verts, pm.NumVertices())
			assert.Equal(t, test.faces, pm.NumFaces())
			assert.True(t, pm.IsClosed())
			assert.Equal(t, 2, pm.NumVertices()-pm.NumEdges()+pm.NumFaces())
		})
	}
}

func TestDualTetrahedron(t *testing.T) {
	pm := apply(tetrahedron(), Operator{Op: Dual, Amount: 1})
	require.NoError(t, pm.Validate())
	assert.Equal(t, 4, pm.NumVertices())
	assert.Equal(t, 4, pm.NumFaces())
	for i := range pm.Faces {
		assert.Equal(t, polymesh.New, pm.Faces[i].Role)
	}
}

func TestRoles(t *testing.T) {
	pm := apply(cube(), NewOperator(Kis))
	nnew := 0
	for i := range pm.Faces {
		if pm.Faces[i].Role == polymesh.New {
			nnew++
		}
	}
	assert.Equal(t, 24, nnew)

	pm = apply(cube(), NewOperator(Truncate))
	counts := map[polymesh.Roles]int{}
	for i := range pm.Faces {
		counts[pm.Faces[i].Role]++
	}
	assert.Equal(t, 6, counts[polymesh.Existing])
	assert.Equal(t, 8, counts[polymesh.New])

	pm = apply(cube(), NewOperator(Expand))
	counts = map[polymesh.Roles]int{}
	for i := range pm.Faces {
		counts[pm.Faces[i].Role]++
	}
	assert.Equal(t, 6, counts[polymesh.Existing])
	assert.Equal(t, 8, counts[polymesh.New])
	assert.Equal(t, 12, counts[polymesh.NewAlt])
}

func TestSelection(t *testing.T) {
	pm := apply(cube(), Operator{Op: Kis, Faces: OnlyFirst, Amount: 0.2})
	require.NoError(t, pm.Validate())
	assert.Equal(t, 9, pm.NumVertices())
	assert.Equal(t, 9, pm.NumFaces())
	assert.True(t, pm.IsClosed())

	pm = apply(cube(), Operator{Op: Truncate, Faces: OnlyFirst, Amount: 0.25})
	require.NoError(t, pm.Validate())
	assert.Equal(t, 16, pm.NumVertices())
	assert.Equal(t, 10, pm.NumFaces())
	assert.True(t, pm.IsClosed())

	pm = apply(cube(), Operator{Op: Subdivide, Faces: OnlyFirst})
	require.NoError(t, pm.Validate())
	assert.Equal(t, 13, pm.NumVertices())
	assert.Equal(t, 9, pm.NumFaces())
	assert.True(t, pm.IsClosed())

	pm = apply(cube(), Operator{Op: Inset, Faces: Even, Amount: 0.3, Amount2: 0.1})
	require.NoError(t, pm.Validate())
	assert.Equal(t, 8+12, pm.NumVertices())
	assert.Equal(t, 6+12, pm.NumFaces())
	assert.True(t, pm.IsClosed())

	pm = apply(cube(), Operator{Op: FaceRemove, Faces: OnlyFirst})
	assert.Equal(t, 5, pm.NumFaces())
	assert.Equal(t, 8, pm.NumVertices())
	assert.False(t, pm.IsClosed())

	pm = apply(cube(), Operator{Op: FaceKeep, Faces: OnlyFirst})
	assert.Equal(t, 1, pm.NumFaces())
	assert.Equal(t, 4, pm.NumVertices())
}

func TestFaceSelections(t *testing.T) {
	pm := box()
	count := func(fs FaceSelections) int {
		return fs.Select(pm).NumSelected()
	}
	assert.Equal(t, 6, count(All))
	assert.Equal(t, 0, count(None))
	assert.Equal(t, 6, count(Existing))
	assert.Equal(t, 0, count(New))
	assert.Equal(t, 6, count(FourSided))
	assert.Equal(t, 0, count(ThreeSided))
	assert.Equal(t, 6, count(EvenSided))
	assert.Equal(t, 0, count(OddSided))
	assert.Equal(t, 1, count(FacingUp))
	assert.Equal(t, 1, count(FacingDown))
	assert.Equal(t, 4, count(FacingLevel))
	assert.Equal(t, 1, count(TopHalf))
	assert.Equal(t, 1, count(BottomHalf))
	assert.Equal(t, 3, count(Even))
	assert.Equal(t, 3, count(Odd))
	assert.Equal(t, 1, count(OnlyFirst))

	pm.Info.P = 4
	assert.Equal(t, 6, count(PSided))
	assert.Equal(t, 0, count(QSided))

	kissed := apply(cube(), NewOperator(Kis))
	assert.Equal(t, 24, ThreeSided.Select(kissed).NumSelected())
	assert.Equal(t, 24, AllNew.Select(kissed).NumSelected())
	assert.Equal(t, 0, pm.NumSelected())
}

func TestEngine(t *testing.T) {
	base := cube()
	before := base.Clone()

	// identity and disabled operators leave the mesh as it is
	pm := apply(base, NewOperator(Identity), Operator{Op: Kis, Amount: 0.5, Disabled: true})
	assert.NotSame(t, base, pm)
	assert.Equal(t, base.NumVertices(), pm.NumVertices())
	assert.Equal(t, base.NumFaces(), pm.NumFaces())

	// an empty selection is a no-op
	pm = apply(base, Operator{Op: Truncate, Faces: None, Amount: 0.3})
	assert.Equal(t, base.NumFaces(), pm.NumFaces())

	// a disabled entry has no effect
	trunc := Operator{Op: Truncate, Amount: 0.3}
	a := apply(base, Operator{Op: Kis, Amount: 0.2, Disabled: true}, trunc)
	b := apply(base, trunc)
	assert.Equal(t, b.Vertices, a.Vertices)
	assert.Equal(t, b.Faces, a.Faces)

	// the input is not modified and the info is carried
	pm = apply(base, NewOperator(Dual), NewOperator(Kis), NewOperator(Ambo))
	assert.Equal(t, before, base)
	assert.Equal(t, base.Info, pm.Info)
	assert.Equal(t, 0, pm.NumSelected())

	// operators on an empty mesh are no-ops
	empty := apply(base, NewOperator(FaceRemove))
	assert.True(t, empty.IsEmpty())
	pm = apply(base, NewOperator(FaceRemove), NewOperator(Kis), NewOperator(Dual))
	assert.True(t, pm.IsEmpty())
}

func TestRandomize(t *testing.T) {
	op := Operator{Op: Kis, Amount: 0.5, Randomize: true}
	e := &Engine{Seed: 42}
	a := e.Apply(cube(), []Operator{op})
	b := e.Apply(cube(), []Operator{op})
	assert.Equal(t, a.Vertices, b.Vertices)

	op.Randomize = false
	c := e.Apply(cube(), []Operator{op})
	assert.NotEqual(t, a.Vertices, c.Vertices)
}

func TestStash(t *testing.T) {
	pm := apply(cube(), Operator{Op: Stash, Faces: OnlyFirst}, NewOperator(Unstash))
	require.NoError(t, pm.Validate())
	assert.Equal(t, 7, pm.NumFaces())
	assert.Equal(t, 12, pm.NumVertices())

	pm = apply(cube(), NewOperator(Unstash))
	assert.Equal(t, 6, pm.NumFaces())

	// the stash belongs to one run
	e := &Engine{}
	e.Apply(cube(), []Operator{NewOperator(Stash)})
	pm = e.Apply(cube(), []Operator{NewOperator(Unstash)})
	assert.Equal(t, 6, pm.NumFaces())
}

func TestWeld(t *testing.T) {
	pm := apply(cube(), Operator{Op: Truncate, Amount: 0.5}, Operator{Op: Weld, Amount: 0.001})
	require.NoError(t, pm.Validate())
	assert.Equal(t, 12, pm.NumVertices())
	assert.Equal(t, 14, pm.NumFaces())
}

func TestValidateOperator(t *testing.T) {
	o := Operator{Op: Kis, Amount: 7.12345}
	assert.Equal(t, float32(6), o.Validate(false).Amount)
	assert.Equal(t, float32(1), o.Validate(true).Amount)

	o = Operator{Op: Kis, Amount: 0.12345}.Validate(false)
	assert.InDelta(t, 0.123, o.Amount, 1e-6)
	assert.Equal(t, o, o.Validate(false))

	o = Operator{Op: Dual, Amount: 5, Amount2: 3}.Validate(false)
	assert.Equal(t, float32(0), o.Amount)
	assert.Equal(t, float32(0), o.Amount2)

	o = Operator{Op: Inset, Amount: 0.5, Amount2: 3}.Validate(false)
	assert.Equal(t, float32(0.5), o.Amount)
	assert.Equal(t, float32(2), o.Amount2)
	o = Operator{Op: Inset, Amount: 0.5, Amount2: 3}.Validate(true)
	assert.Equal(t, float32(0.5), o.Amount2)

	for _, op := range OpsValues() {
		o := NewOperator(op)
		assert.Equal(t, o, o.Validate(false), op.String())
	}
}

func TestUnknown(t *testing.T) {
	assert.Panics(t, func() { Ops(100).Config() })
	assert.Panics(t, func() { apply(cube(), Operator{Op: Ops(100)}) })
	assert.Panics(t, func() { FaceSelections(100).Matches(cube(), 0) })
}
