// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polymesh

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube() *PolyMesh {
	verts := []math32.Vector3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	loops := [][]int{
		{0, 3, 2, 1}, // -z
		{4, 5, 6, 7}, // +z
		{0, 1, 5, 4}, // -y
		{2, 3, 7, 6}, // +y
		{1, 2, 6, 5}, // +x
		{0, 4, 7, 3}, // -x
	}
	return NewPolyMesh(verts, loops, nil)
}

func square() *PolyMesh {
	verts := []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 1, Z: 0}}
	return NewPolyMesh(verts, [][]int{{0, 1, 2, 3}, {1, 4, 5, 2}}, []Roles{Existing, New})
}

func TestCounts(t *testing.T) {
	pm := cube()
	assert.Equal(t, 8, pm.NumVertices())
	assert.Equal(t, 6, pm.NumFaces())
	assert.Equal(t, 12, pm.NumEdges())
	assert.True(t, pm.IsClosed())
	assert.NoError(t, pm.Validate())

	sq := square()
	assert.Equal(t, 7, sq.NumEdges())
	assert.False(t, sq.IsClosed())
	assert.Equal(t, New, sq.Faces[1].Role)
}

func TestValidate(t *testing.T) {
	pm := cube()
	pm.Faces[0].Vertices = []int{0, 1}
	err := pm.Validate()
	assert.True(t, errors.Is(err, ErrShortFace))

	pm = cube()
	pm.Faces[1].Vertices = []int{4, 5, 4}
	assert.True(t, errors.Is(pm.Validate(), ErrRepeatedVertex))

	pm = cube()
	pm.Faces[2].Vertices = []int{0, 1, 99}
	assert.True(t, errors.Is(pm.Validate(), ErrMissingVertex))
}

func TestClone(t *testing.T) {
	pm := cube()
	cp := pm.Clone()
	cp.Faces[0].Vertices[0] = 7
	cp.Vertices[0].X = 5
	assert.Equal(t, 0, pm.Faces[0].Vertices[0])
	assert.Equal(t, float32(-1), pm.Vertices[0].X)
}

func TestGeometry(t *testing.T) {
	pm := cube()
	for i := range pm.Faces {
		n := pm.FaceNormal(i)
		c := pm.FaceCentroid(i)
		tolassert.EqualTol(t, 1, n.Dot(c), 1e-5)
		tolassert.EqualTol(t, 4, pm.FaceArea(i), 1e-5)
	}
	c := pm.Centroid()
	tolassert.EqualTol(t, 0, c.Length(), 1e-6)
	bb := pm.Bounds()
	assert.Equal(t, math32.Vec3(2, 2, 2), bb.Size())
}

func TestVertexRing(t *testing.T) {
	pm := cube()
	tp := pm.Topology()
	for v := range pm.Vertices {
		rg := tp.VertexRing(v)
		assert.False(t, rg.Open)
		assert.Len(t, rg.Corners, 3)
		assert.Len(t, rg.Neighbors, 3)
		seen := map[int]bool{}
		for _, c := range rg.Corners {
			seen[c.Face] = true
		}
		assert.Len(t, seen, 3)
	}
	// consecutive faces in a ring share the edge to the neighbor between them
	rg := tp.VertexRing(0)
	for i, c := range rg.Corners {
		nx := rg.Corners[(i+1)%len(rg.Corners)]
		assert.Equal(t, tp.Prev(c), tp.Next(nx))
	}

	sq := square()
	tp = sq.Topology()
	rg = tp.VertexRing(1)
	assert.True(t, rg.Open)
	assert.Len(t, rg.Corners, 2)
	assert.Len(t, rg.Neighbors, 3)
	l, r := tp.EdgeFaces(1, 2)
	assert.Equal(t, 0, l)
	assert.Equal(t, 1, r)
	assert.True(t, tp.IsBoundary(0, 1))
}

func TestCompactWeld(t *testing.T) {
	pm := cube()
	pm.Vertices = append(pm.Vertices, math32.Vec3(9, 9, 9))
	cp := pm.Compact()
	assert.Equal(t, 8, cp.NumVertices())
	assert.NoError(t, cp.Validate())

	// duplicate vertex 1 and use the copy in one face
	pm = cube()
	pm.Vertices = append(pm.Vertices, pm.Vertices[1])
	pm.Faces[4].Vertices[0] = 8
	assert.Equal(t, 14, pm.NumEdges())
	wd := pm.Weld(1e-4)
	assert.Equal(t, 8, wd.NumVertices())
	assert.Equal(t, 12, wd.NumEdges())
	assert.True(t, wd.IsClosed())
}

func TestCleanLoop(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, CleanLoop([]int{1, 1, 2, 3, 3, 1}))
	assert.Equal(t, []int{4, 5}, CleanLoop([]int{4, 5, 5, 4}))
}

func TestRemoveAppend(t *testing.T) {
	pm := cube()
	rm := pm.RemoveFaces(func(i int, f *Face) bool { return i == 0 })
	assert.Equal(t, 5, rm.NumFaces())
	assert.Equal(t, 8, rm.NumVertices())
	assert.False(t, rm.IsClosed())

	ap := rm.Append(square())
	assert.Equal(t, 7, ap.NumFaces())
	assert.Equal(t, 14, ap.NumVertices())
	require.NoError(t, ap.Validate())
}

func TestSitLevel(t *testing.T) {
	verts := []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}
	pm := NewPolyMesh(verts, [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}, nil)
	pm.OrientOutward()
	lv := pm.SitLevel()
	best := float32(0)
	for i := range lv.Faces {
		best = min(best, lv.FaceNormal(i).Y)
	}
	tolassert.EqualTol(t, -1, best, 1e-5)
}

func TestOrientOutward(t *testing.T) {
	pm := cube()
	for i := range pm.Faces {
		ReverseLoop(pm.Faces[i].Vertices)
	}
	pm.OrientOutward()
	for i := range pm.Faces {
		assert.Greater(t, pm.FaceNormal(i).Dot(pm.FaceCentroid(i)), float32(0))
	}
}
