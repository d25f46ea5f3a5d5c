// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuild

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(roles ...polymesh.Roles) *polymesh.PolyMesh {
	verts := []math32.Vector3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	loops := [][]int{
		{0, 1, 5, 4}, {3, 7, 6, 2}, {0, 3, 2, 1},
		{4, 5, 6, 7}, {0, 4, 7, 3}, {1, 2, 6, 5},
	}
	return polymesh.NewPolyMesh(verts, loops, roles)
}

func xy(pts ...float32) []math32.Vector3 {
	vs := make([]math32.Vector3, len(pts)/2)
	for i := range vs {
		vs[i] = math32.Vec3(pts[2*i], pts[2*i+1], 0)
	}
	return vs
}

func signedArea(pts []math32.Vector3, t [3]int) float32 {
	return pts[t[1]].Sub(pts[t[0]]).Cross(pts[t[2]].Sub(pts[t[0]])).Z / 2
}

func TestTriangulate(t *testing.T) {
	up := math32.Vec3(0, 0, 1)
	assert.Nil(t, Triangulate(xy(0, 0, 1, 0), up))
	assert.Equal(t, [][3]int{{0, 1, 2}}, Triangulate(xy(0, 0, 1, 0, 0, 1), up))

	square := xy(0, 0, 1, 0, 1, 1, 0, 1)
	assert.True(t, IsConvex(square, up))
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 2, 3}}, Triangulate(square, up))

	// a straight corner still counts as convex
	assert.True(t, IsConvex(xy(0, 0, 1, 0, 2, 0, 2, 2, 0, 2), up))

	u := xy(0, 0, 3, 0, 3, 2, 2, 2, 2, 1, 1, 1, 1, 2, 0, 2)
	assert.False(t, IsConvex(u, up))
	tris := Triangulate(u, up)
	require.Len(t, tris, len(u)-2)
	var area float32
	for _, tri := range tris {
		a := signedArea(u, tri)
		assert.Greater(t, a, float32(0))
		area += a
	}
	tolassert.EqualTol(t, 5, area, 1e-5)
}

func TestBuildFlat(t *testing.T) {
	pm := box()
	colors := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}}
	b := Build(pm, colors, DefaultOptions())
	assert.Equal(t, 24, b.NumVertex())
	assert.Equal(t, 12, b.NumTriangles())
	assert.True(t, b.HasColor())
	assert.Len(t, b.Normal, 3*24)
	assert.Len(t, b.TexCoord, 2*24)
	assert.Len(t, b.Color, 4*24)
	assert.Empty(t, b.Submeshes)

	assert.Equal(t, []float32{1, 0, 0, 1}, []float32(b.Color[:4]))
	assert.Equal(t, []float32{0, 1, 0, 1}, []float32(b.Color[16:20]))
	assert.Equal(t, []float32{1, 1, 1, 1}, []float32(b.Color[32:36]))

	tolassert.EqualTol(t, -1, b.BBox.Min.X, 1e-6)
	tolassert.EqualTol(t, 1, b.BBox.Max.Y, 1e-6)
	tolassert.EqualTol(t, 2, b.MaxDimension(), 1e-6)

	for i := 0; i < len(b.Index); i += 3 {
		p0 := b.Position(int(b.Index[i]))
		p1 := b.Position(int(b.Index[i+1]))
		p2 := b.Position(int(b.Index[i+2]))
		v := int(b.Index[i])
		n := math32.Vec3(b.Normal[3*v], b.Normal[3*v+1], b.Normal[3*v+2])
		assert.Greater(t, math32.Normal(p0, p1, p2).Dot(n), float32(0.99))
	}

	// texture coordinates start at the first corner of each face
	assert.Equal(t, []float32{0, 0}, []float32(b.TexCoord[:2]))
	tolassert.EqualTol(t, 2, b.TexCoord[2], 1e-6)
}

func TestBuildShared(t *testing.T) {
	pm := box()
	b := Build(pm, nil, Options{})
	assert.Equal(t, 8, b.NumVertex())
	assert.Equal(t, 12, b.NumTriangles())
	assert.False(t, b.HasColor())
	for i := range b.NumVertex() {
		p := b.Position(i)
		n := math32.Vec3(b.Normal[3*i], b.Normal[3*i+1], b.Normal[3*i+2])
		tolassert.EqualTol(t, 1, n.Length(), 1e-5)
		tolassert.EqualTol(t, 1, n.Dot(p.Normal()), 1e-5)
	}
}

func TestSubmeshes(t *testing.T) {
	pm := box(polymesh.New, polymesh.Existing, polymesh.New, polymesh.Existing, polymesh.NewAlt, polymesh.Existing)
	b := Build(pm, nil, Options{Flat: true, Submeshes: true})
	assert.Equal(t, []Submesh{
		{Role: polymesh.Existing, Start: 0, Count: 18},
		{Role: polymesh.New, Start: 18, Count: 12},
		{Role: polymesh.NewAlt, Start: 30, Count: 6},
	}, b.Submeshes)

	// the first face written is the first Existing face
	assert.Equal(t, float32(1), b.Normal[1])
}

func TestBuildDeterministic(t *testing.T) {
	pm := box(polymesh.New, polymesh.Existing)
	opts := Options{Flat: true, Submeshes: true}
	assert.Equal(t, Build(pm, nil, opts), Build(pm, nil, opts))
}

func TestScale(t *testing.T) {
	b := Build(box(), nil, DefaultOptions())
	p := b.Position(0)
	b.Scale(0.5)
	tolassert.EqualTol(t, 1, b.MaxDimension(), 1e-6)
	assert.Equal(t, p.MulScalar(0.5), b.Position(0))
}

func TestBuildEmpty(t *testing.T) {
	b := Build(&polymesh.PolyMesh{}, nil, DefaultOptions())
	assert.Equal(t, 0, b.NumVertex())
	assert.Equal(t, 0, b.NumTriangles())
	assert.True(t, b.BBox.IsEmpty())
}

func TestMeshData(t *testing.T) {
	b := Build(box(), []color.RGBA{{255, 0, 0, 255}}, DefaultOptions())
	md := shape.NewMeshData(b)
	assert.Equal(t, b.NumVertex(), md.NumVertex)
	assert.Equal(t, len(b.Index), md.NumIndex)
	assert.True(t, md.HasColor)
	assert.Equal(t, b.Vertex, md.Vertex)
	assert.Equal(t, b.Normal, md.Normal)
	assert.Equal(t, b.TexCoord, md.TexCoord)
	assert.Equal(t, b.Color, md.Colors)
	assert.Equal(t, b.Index, md.Index)
	assert.Equal(t, b.BBox, md.MeshBBox)
}

func TestMeshOffsets(t *testing.T) {
	b := Build(box(), nil, Options{})
	b.SetOffsets(2, 6)
	b.Pos = math32.Vec3(1, 0, 0)
	nv, ni, hasColor := b.MeshSize()
	require.Equal(t, 8, nv)
	require.Equal(t, 36, ni)
	assert.False(t, hasColor)

	vertex := make(math32.ArrayF32, 3*(nv+2))
	normal := make(math32.ArrayF32, 3*(nv+2))
	texcoord := make(math32.ArrayF32, 2*(nv+2))
	index := make(math32.ArrayU32, ni+6)
	b.Set(vertex, normal, texcoord, nil, index)

	var p math32.Vector3
	p.FromSlice(vertex, 3*2)
	assert.Equal(t, b.Position(0).Add(b.Pos), p)
	assert.Equal(t, b.Index[0]+2, index[6])
	assert.Equal(t, []float32(b.Normal[:3]), []float32(normal[6:9]))
	tolassert.EqualTol(t, 0, b.MeshBBox().Min.X, 1e-6)
	tolassert.EqualTol(t, 2, b.MeshBBox().Max.X, 1e-6)
}
