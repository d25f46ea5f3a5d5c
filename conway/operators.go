// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conway

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"github.com/openbrush/polyhydra/polymesh"
)

// Amount yields the amount to use for the next face, vertex or edge
// an operator visits.
type Amount func() float32

// Fixed returns an Amount that is always v.
func Fixed(v float32) Amount {
	return func() float32 { return v }
}

// Random returns an Amount that is v scaled by a uniform draw in [0, 1) from rnd.
func Random(v float32, rnd randx.Rand) Amount {
	return func() float32 { return v * rnd.Float32() }
}

// pointKind distinguishes the kinds of points an operator creates.
type pointKind int8

const (
	origPoint   pointKind = iota // an input vertex
	facePoint                    // a point per input face
	edgePoint                    // a point per (directed or undirected) edge
	cornerPoint                  // a point per face and vertex
)

type pointKey struct {
	kind pointKind
	a, b int
}

// builder accumulates the output mesh of an operator.
// Points are created once per key, in first use order, so input vertices
// that no output face references are dropped.
type builder struct {
	in    *polymesh.PolyMesh
	out   *polymesh.PolyMesh
	index map[pointKey]int
}

func newBuilder(pm *polymesh.PolyMesh) *builder {
	return &builder{in: pm, out: &polymesh.PolyMesh{Info: pm.Info}, index: make(map[pointKey]int)}
}

func (b *builder) point(k pointKey, pos func() math32.Vector3) int {
	if i, ok := b.index[k]; ok {
		return i
	}
	i := b.out.AddVertex(pos())
	b.index[k] = i
	return i
}

// vert returns the output index of input vertex v.
func (b *builder) vert(v int) int {
	return b.point(pointKey{origPoint, v, 0}, func() math32.Vector3 { return b.in.Vertices[v] })
}

func (b *builder) verts(loop []int) []int {
	lp := make([]int, len(loop))
	for i, v := range loop {
		lp[i] = b.vert(v)
	}
	return lp
}

// centroid returns the output index of the centroid of input face fi.
func (b *builder) centroid(fi int) int {
	return b.point(pointKey{facePoint, fi, 0}, func() math32.Vector3 { return b.in.FaceCentroid(fi) })
}

// midpoint returns the output index of the midpoint of edge v-w.
func (b *builder) midpoint(v, w int) int {
	e := polymesh.NewEdge(v, w)
	return b.point(pointKey{edgePoint, e.A, e.B}, func() math32.Vector3 {
		return b.in.Vertices[v].Lerp(b.in.Vertices[w], 0.5)
	})
}

// face appends a face to the output if it has at least three vertices.
func (b *builder) face(loop []int, role polymesh.Roles) {
	if len(loop) < 3 {
		return
	}
	b.out.AddFace(loop, role)
}

// dual returns the dual mesh: a vertex at the centroid of each face and
// a [polymesh.New] face around each vertex with a closed ring of faces.
func dual(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	tp := pm.Topology()
	b := newBuilder(pm)
	for v := range pm.Vertices {
		rg := tp.VertexRing(v)
		if rg.Open {
			continue
		}
		loop := make([]int, len(rg.Corners))
		for i, c := range rg.Corners {
			loop[i] = b.centroid(c.Face)
		}
		b.face(loop, polymesh.New)
	}
	return b.out
}

// kis raises a pyramid of [polymesh.New] triangles on each selected face,
// with its apex offset from the face centroid along the normal.
func kis(pm *polymesh.PolyMesh, height Amount) *polymesh.PolyMesh {
	b := newBuilder(pm)
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		lp := b.verts(f.Vertices)
		if !f.Selected {
			b.face(lp, f.Role)
			continue
		}
		apex := b.out.AddVertex(pm.FaceCentroid(fi).Add(pm.FaceNormal(fi).MulScalar(height())))
		n := len(lp)
		for i := range lp {
			b.face([]int{lp[i], lp[(i+1)%n], apex}, polymesh.New)
		}
	}
	return b.out
}

// ambo returns the mesh whose vertices are the edge midpoints.
// Faces keep their role; the faces replacing vertices are [polymesh.New].
// Boundary vertices keep a corner in their face.
func ambo(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	tp := pm.Topology()
	b := newBuilder(pm)
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		n := len(f.Vertices)
		loop := make([]int, n)
		for i, v := range f.Vertices {
			loop[i] = b.midpoint(v, f.Vertices[(i+1)%n])
		}
		b.face(loop, f.Role)
	}
	for v := range pm.Vertices {
		rg := tp.VertexRing(v)
		if len(rg.Corners) == 0 {
			continue
		}
		var loop []int
		for _, nb := range rg.Neighbors {
			loop = append(loop, b.midpoint(v, nb))
		}
		if rg.Open {
			loop = append(loop, b.vert(v))
		}
		b.face(loop, polymesh.New)
	}
	return b.out
}

// truncate cuts every vertex of the selected faces at the fraction t of
// its edges, replacing it with a [polymesh.New] face.
func truncate(pm *polymesh.PolyMesh, t Amount) *polymesh.PolyMesh {
	cut := make(map[int]float32)
	for fi := range pm.Faces {
		if !pm.Faces[fi].Selected {
			continue
		}
		for _, v := range pm.Faces[fi].Vertices {
			cut[v] = 0
		}
	}
	for v := range pm.Vertices {
		if _, ok := cut[v]; ok {
			cut[v] = t()
		}
	}
	b := newBuilder(pm)
	edge := func(v, w int) int {
		return b.point(pointKey{edgePoint, v, w}, func() math32.Vector3 {
			return pm.Vertices[v].Lerp(pm.Vertices[w], cut[v])
		})
	}
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		n := len(f.Vertices)
		var loop []int
		for i, v := range f.Vertices {
			if _, ok := cut[v]; !ok {
				loop = append(loop, b.vert(v))
				continue
			}
			loop = append(loop, edge(v, f.Vertices[(i+n-1)%n]), edge(v, f.Vertices[(i+1)%n]))
		}
		b.face(loop, f.Role)
	}
	tp := pm.Topology()
	for v := range pm.Vertices {
		if _, ok := cut[v]; !ok {
			continue
		}
		rg := tp.VertexRing(v)
		var loop []int
		for _, nb := range rg.Neighbors {
			loop = append(loop, edge(v, nb))
		}
		if rg.Open {
			loop = append(loop, b.vert(v))
		}
		b.face(loop, polymesh.New)
	}
	return b.out
}

// insetPoints returns a function giving, for face fi and vertex v, the
// output index of v moved toward the centroid of fi by the face amount.
func insetPoints(b *builder, amount Amount) func(fi, v int) int {
	pm := b.in
	amounts := make([]float32, len(pm.Faces))
	for fi := range amounts {
		amounts[fi] = amount()
	}
	return func(fi, v int) int {
		return b.point(pointKey{cornerPoint, fi, v}, func() math32.Vector3 {
			return pm.Vertices[v].Lerp(pm.FaceCentroid(fi), amounts[fi])
		})
	}
}

// expand separates the faces by moving their vertices toward their
// centroids. Edges become [polymesh.NewAlt] quads and vertices with a
// closed ring become [polymesh.New] faces.
func expand(pm *polymesh.PolyMesh, amount Amount) *polymesh.PolyMesh {
	tp := pm.Topology()
	b := newBuilder(pm)
	inner := insetPoints(b, amount)
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		loop := make([]int, len(f.Vertices))
		for i, v := range f.Vertices {
			loop[i] = inner(fi, v)
		}
		b.face(loop, f.Role)
	}
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		n := len(lp)
		for i, v := range lp {
			w := lp[(i+1)%n]
			twin, ok := tp.HalfEdges[polymesh.HalfEdge{From: w, To: v}]
			if !ok || v > w {
				continue
			}
			g := twin.Face
			b.face([]int{inner(fi, w), inner(fi, v), inner(g, v), inner(g, w)}, polymesh.NewAlt)
		}
	}
	for v := range pm.Vertices {
		rg := tp.VertexRing(v)
		if rg.Open {
			continue
		}
		loop := make([]int, len(rg.Corners))
		for i, c := range rg.Corners {
			loop[i] = inner(c.Face, v)
		}
		b.face(loop, polymesh.New)
	}
	return b.out
}

// chamfer shrinks every face toward its centroid and replaces each edge
// with a [polymesh.New] hexagon joining the two shrunk faces and the
// edge ends. Boundary edges get a [polymesh.NewAlt] quad.
func chamfer(pm *polymesh.PolyMesh, amount Amount) *polymesh.PolyMesh {
	tp := pm.Topology()
	b := newBuilder(pm)
	inner := insetPoints(b, amount)
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		loop := make([]int, len(f.Vertices))
		for i, v := range f.Vertices {
			loop[i] = inner(fi, v)
		}
		b.face(loop, f.Role)
	}
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		n := len(lp)
		for i, v := range lp {
			w := lp[(i+1)%n]
			twin, ok := tp.HalfEdges[polymesh.HalfEdge{From: w, To: v}]
			if !ok {
				b.face([]int{inner(fi, w), inner(fi, v), b.vert(v), b.vert(w)}, polymesh.NewAlt)
				continue
			}
			if v > w {
				continue
			}
			g := twin.Face
			b.face([]int{inner(fi, w), inner(fi, v), b.vert(v), inner(g, v), inner(g, w), b.vert(w)}, polymesh.New)
		}
	}
	return b.out
}

// gyro splits each face into [polymesh.New] pentagons, one per corner,
// joining the face centroid, two points on each edge at the fraction t
// from either end, and the corner vertex.
func gyro(pm *polymesh.PolyMesh, t Amount) *polymesh.PolyMesh {
	b := newBuilder(pm)
	amounts := make(map[polymesh.Edge]float32)
	edge := func(v, w int) int {
		e := polymesh.NewEdge(v, w)
		a, ok := amounts[e]
		if !ok {
			a = t()
			amounts[e] = a
		}
		return b.point(pointKey{edgePoint, v, w}, func() math32.Vector3 {
			return pm.Vertices[v].Lerp(pm.Vertices[w], a)
		})
	}
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		n := len(lp)
		c := b.centroid(fi)
		for i := range lp {
			v1, v2, v3 := lp[i], lp[(i+1)%n], lp[(i+2)%n]
			b.face([]int{c, edge(v1, v2), edge(v2, v1), b.vert(v2), edge(v2, v3)}, polymesh.New)
		}
	}
	return b.out
}

// The composite operators act on all faces of the intermediate mesh.

func zip(pm *polymesh.PolyMesh, height Amount) *polymesh.PolyMesh {
	return dual(kis(pm, height))
}

func bevel(pm *polymesh.PolyMesh, t Amount) *polymesh.PolyMesh {
	return truncate(selectAll(ambo(pm)), t)
}

func join(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	return dual(ambo(pm))
}

func needle(pm *polymesh.PolyMesh, height Amount) *polymesh.PolyMesh {
	return kis(selectAll(dual(pm)), height)
}

func ortho(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	return join(join(pm))
}

func meta(pm *polymesh.PolyMesh, height Amount) *polymesh.PolyMesh {
	return kis(selectAll(join(pm)), height)
}

func snub(pm *polymesh.PolyMesh, t Amount) *polymesh.PolyMesh {
	return dual(gyro(pm, t))
}
