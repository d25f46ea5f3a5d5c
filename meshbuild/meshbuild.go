// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshbuild converts polygon meshes into indexed triangle
// buffers in the layout used by the Cogent Core 3D rendering system.
package meshbuild

import (
	"image/color"
	"slices"

	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
)

// Options control how a mesh is built.
type Options struct {

	// Flat gives every face its own vertices with the face normal,
	// planar texture coordinates and the face color. Otherwise vertices
	// are shared between faces with averaged normals and no colors.
	Flat bool `default:"true"`

	// Submeshes groups the triangles by face role.
	Submeshes bool
}

// DefaultOptions returns the default build options.
func DefaultOptions() Options {
	return Options{Flat: true}
}

// Submesh is a range of triangle indexes whose faces share a role.
type Submesh struct {

	// Role is the role of the faces in the range.
	Role polymesh.Roles

	// Start is the position of the first index in [Buffers.Index].
	Start int

	// Count is the number of indexes in the range.
	Count int
}

// Buffers are indexed triangle buffers. Vertex and Normal hold three
// floats per vertex, TexCoord two and Color four when present.
// Buffers implement [shape.Mesh], so they can be rendered directly.
type Buffers struct {
	shape.ShapeBase

	Vertex    math32.ArrayF32
	Normal    math32.ArrayF32
	TexCoord  math32.ArrayF32
	Color     math32.ArrayF32
	Index     math32.ArrayU32
	Submeshes []Submesh

	// BBox is the bounding box of the vertex positions.
	BBox math32.Box3
}

// NumVertex returns the number of vertices.
func (b *Buffers) NumVertex() int { return len(b.Vertex) / 3 }

// NumTriangles returns the number of triangles.
func (b *Buffers) NumTriangles() int { return len(b.Index) / 3 }

// HasColor returns whether the buffers have per-vertex colors.
func (b *Buffers) HasColor() bool { return len(b.Color) > 0 }

// Position returns the position of vertex i.
func (b *Buffers) Position(i int) math32.Vector3 {
	return math32.Vec3(b.Vertex[3*i], b.Vertex[3*i+1], b.Vertex[3*i+2])
}

// MaxDimension returns the largest extent of the bounding box.
func (b *Buffers) MaxDimension() float32 {
	sz := b.BBox.Size()
	return max(sz.X, sz.Y, sz.Z)
}

// Scale multiplies every position and the bounding box by s.
func (b *Buffers) Scale(s float32) {
	for i := range b.Vertex {
		b.Vertex[i] *= s
	}
	b.BBox.Min = b.BBox.Min.MulScalar(s)
	b.BBox.Max = b.BBox.Max.MulScalar(s)
}

// Build returns the triangle buffers for the mesh. Face i gets
// colors[i] in flat mode, or white if there is no such color.
// The output only depends on the inputs.
func Build(pm *polymesh.PolyMesh, colors []color.RGBA, opts Options) *Buffers {
	order := faceOrder(pm, opts.Submeshes)
	tris := make([][][3]int, len(pm.Faces))
	nvtx, nidx := 0, 0
	for _, fi := range order {
		tris[fi] = Triangulate(facePoints(pm, fi), pm.FaceNormal(fi))
		nvtx += pm.Faces[fi].Sides()
		nidx += 3 * len(tris[fi])
	}
	if !opts.Flat {
		nvtx = len(pm.Vertices)
	}
	b := &Buffers{
		Vertex:   make(math32.ArrayF32, 0, 3*nvtx),
		Normal:   make(math32.ArrayF32, 0, 3*nvtx),
		TexCoord: make(math32.ArrayF32, 0, 2*nvtx),
		Index:    make(math32.ArrayU32, 0, nidx),
	}
	if opts.Flat {
		b.Color = make(math32.ArrayF32, 0, 4*nvtx)
		b.setFlat(pm, colors, order, tris)
	} else {
		b.setShared(pm, order, tris)
	}
	if opts.Submeshes {
		b.setSubmeshes(pm, order, tris)
	}
	b.BBox = math32.B3Empty()
	for i := range b.NumVertex() {
		b.BBox.ExpandByPoint(b.Position(i))
	}
	return b
}

// faceOrder returns the order faces are written in: by role
// when grouping into submeshes, keeping the mesh order within a role.
func faceOrder(pm *polymesh.PolyMesh, byRole bool) []int {
	order := make([]int, len(pm.Faces))
	for i := range order {
		order[i] = i
	}
	if byRole {
		slices.SortStableFunc(order, func(a, b int) int {
			return int(pm.Faces[a].Role) - int(pm.Faces[b].Role)
		})
	}
	return order
}

func facePoints(pm *polymesh.PolyMesh, fi int) []math32.Vector3 {
	lp := pm.Faces[fi].Vertices
	pts := make([]math32.Vector3, len(lp))
	for i, v := range lp {
		pts[i] = pm.Vertices[v]
	}
	return pts
}

func (b *Buffers) addVertex(pos, norm math32.Vector3, uv math32.Vector2) {
	b.Vertex = append(b.Vertex, pos.X, pos.Y, pos.Z)
	b.Normal = append(b.Normal, norm.X, norm.Y, norm.Z)
	b.TexCoord = append(b.TexCoord, uv.X, uv.Y)
}

func (b *Buffers) setFlat(pm *polymesh.PolyMesh, colors []color.RGBA, order []int, tris [][][3]int) {
	for _, fi := range order {
		off := uint32(b.NumVertex())
		norm := pm.FaceNormal(fi)
		pts := facePoints(pm, fi)
		u, v := planeAxes(pts, norm)
		clr := faceColor(colors, fi)
		for _, p := range pts {
			d := p.Sub(pts[0])
			b.addVertex(p, norm, math32.Vec2(d.Dot(u), d.Dot(v)))
			b.Color = append(b.Color, clr.X, clr.Y, clr.Z, clr.W)
		}
		for _, t := range tris[fi] {
			b.Index = append(b.Index, off+uint32(t[0]), off+uint32(t[1]), off+uint32(t[2]))
		}
	}
}

func (b *Buffers) setShared(pm *polymesh.PolyMesh, order []int, tris [][][3]int) {
	norms := make([]math32.Vector3, len(pm.Vertices))
	for _, fi := range order {
		// the unnormalized normal is scaled by the face area
		nw := pm.FaceNormal(fi).MulScalar(pm.FaceArea(fi))
		for _, v := range pm.Faces[fi].Vertices {
			norms[v] = norms[v].Add(nw)
		}
	}
	for i, p := range pm.Vertices {
		n := norms[i]
		if n.LengthSquared() > 0 {
			n = n.Normal()
		}
		b.addVertex(p, n, math32.Vec2(p.X, p.Z))
	}
	for _, fi := range order {
		lp := pm.Faces[fi].Vertices
		for _, t := range tris[fi] {
			b.Index = append(b.Index, uint32(lp[t[0]]), uint32(lp[t[1]]), uint32(lp[t[2]]))
		}
	}
}

func (b *Buffers) setSubmeshes(pm *polymesh.PolyMesh, order []int, tris [][][3]int) {
	start := 0
	for _, fi := range order {
		role := pm.Faces[fi].Role
		n := 3 * len(tris[fi])
		if k := len(b.Submeshes); k > 0 && b.Submeshes[k-1].Role == role {
			b.Submeshes[k-1].Count += n
		} else {
			b.Submeshes = append(b.Submeshes, Submesh{Role: role, Start: start, Count: n})
		}
		start += n
	}
}

// planeAxes returns two unit axes spanning the face plane, the first
// along the first edge of the face.
func planeAxes(pts []math32.Vector3, norm math32.Vector3) (u, v math32.Vector3) {
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[0])
		if d.LengthSquared() > 0 {
			u = d.Normal()
			break
		}
	}
	return u, norm.Cross(u)
}

func faceColor(colors []color.RGBA, fi int) math32.Vector4 {
	if fi >= len(colors) {
		return math32.Vec4(1, 1, 1, 1)
	}
	c := colors[fi]
	return math32.Vec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
