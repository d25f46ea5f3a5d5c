// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polymesh

// Edge is an undirected edge between two vertices, with A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the undirected edge between v and w.
func NewEdge(v, w int) Edge {
	if v > w {
		v, w = w, v
	}
	return Edge{A: v, B: w}
}

// HalfEdge is a directed edge v -> w.
type HalfEdge struct {
	From, To int
}

// Corner locates a vertex within a face loop.
type Corner struct {
	Face int
	Pos  int
}

// Edges returns the distinct undirected edges of the mesh
// in the order they first appear in the face loops.
func (pm *PolyMesh) Edges() []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		n := len(lp)
		for i, v := range lp {
			e := NewEdge(v, lp[(i+1)%n])
			if seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
		}
	}
	return edges
}

// IsClosed returns true if every edge is shared by exactly two faces.
func (pm *PolyMesh) IsClosed() bool {
	if pm.IsEmpty() {
		return false
	}
	count := make(map[Edge]int)
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		n := len(lp)
		for i, v := range lp {
			count[NewEdge(v, lp[(i+1)%n])]++
		}
	}
	for _, c := range count {
		if c != 2 {
			return false
		}
	}
	return true
}

// Topology holds derived adjacency information for a mesh.
// It is a snapshot: it must be rebuilt after the mesh changes.
type Topology struct {
	mesh *PolyMesh

	// HalfEdges maps each directed edge to the face corner it starts at.
	HalfEdges map[HalfEdge]Corner

	// corners lists, for each vertex, the face corners referencing it.
	corners [][]Corner
}

// Topology builds the adjacency information of the mesh.
func (pm *PolyMesh) Topology() *Topology {
	tp := &Topology{mesh: pm, HalfEdges: make(map[HalfEdge]Corner), corners: make([][]Corner, len(pm.Vertices))}
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		n := len(lp)
		for i, v := range lp {
			tp.HalfEdges[HalfEdge{v, lp[(i+1)%n]}] = Corner{Face: fi, Pos: i}
			tp.corners[v] = append(tp.corners[v], Corner{Face: fi, Pos: i})
		}
	}
	return tp
}

// Next returns the vertex after the given corner in its face loop.
func (tp *Topology) Next(c Corner) int {
	lp := tp.mesh.Faces[c.Face].Vertices
	return lp[(c.Pos+1)%len(lp)]
}

// Prev returns the vertex before the given corner in its face loop.
func (tp *Topology) Prev(c Corner) int {
	lp := tp.mesh.Faces[c.Face].Vertices
	return lp[(c.Pos+len(lp)-1)%len(lp)]
}

// EdgeFaces returns the faces on either side of the edge v -> w:
// the face containing v -> w and the face containing w -> v.
// A missing face is returned as -1.
func (tp *Topology) EdgeFaces(v, w int) (left, right int) {
	left, right = -1, -1
	if c, ok := tp.HalfEdges[HalfEdge{v, w}]; ok {
		left = c.Face
	}
	if c, ok := tp.HalfEdges[HalfEdge{w, v}]; ok {
		right = c.Face
	}
	return
}

// IsBoundary returns true if the directed edge v -> w has no twin.
func (tp *Topology) IsBoundary(v, w int) bool {
	_, ok := tp.HalfEdges[HalfEdge{w, v}]
	return !ok
}

// Ring is the ordered fan of faces around a vertex.
type Ring struct {

	// Corners are the face corners at the vertex, in walking order.
	Corners []Corner

	// Neighbors are the neighboring vertices: Neighbors[i] is the
	// vertex after the vertex in the face of Corners[i].
	// For an open ring it has one more entry than Corners,
	// the vertex before it in the last face.
	Neighbors []int

	// Open is true if the vertex lies on a boundary.
	Open bool
}

// VertexRing returns the faces around vertex v in consistent order.
// Walking from a face f containing v, the next face is the one holding the
// edge v -> prev(f, v). For boundary vertices the walk starts at the face
// whose incoming edge has no twin. Non-manifold vertices return the fan
// reachable from the first corner.
func (tp *Topology) VertexRing(v int) Ring {
	cs := tp.corners[v]
	var rg Ring
	if len(cs) == 0 {
		return rg
	}
	start := cs[0]
	// walk backwards to the boundary, if any
	for range cs {
		nx := tp.Next(start)
		c, ok := tp.HalfEdges[HalfEdge{nx, v}]
		if !ok {
			rg.Open = true
			break
		}
		// the face holding nx -> v has v at the following position
		lp := tp.mesh.Faces[c.Face].Vertices
		start = Corner{Face: c.Face, Pos: (c.Pos + 1) % len(lp)}
		if start == cs[0] {
			break
		}
	}
	cur := start
	for range len(cs) {
		rg.Corners = append(rg.Corners, cur)
		rg.Neighbors = append(rg.Neighbors, tp.Next(cur))
		pv := tp.Prev(cur)
		c, ok := tp.HalfEdges[HalfEdge{v, pv}]
		if !ok {
			rg.Open = true
			rg.Neighbors = append(rg.Neighbors, pv)
			break
		}
		if c == start {
			break
		}
		cur = c
	}
	return rg
}

// VertexFaces returns the indexes of the faces around vertex v, in ring order.
func (tp *Topology) VertexFaces(v int) []int {
	rg := tp.VertexRing(v)
	fs := make([]int, len(rg.Corners))
	for i, c := range rg.Corners {
		fs[i] = c.Face
	}
	return fs
}

// Degree returns the number of faces referencing vertex v.
func (tp *Topology) Degree(v int) int {
	return len(tp.corners[v])
}
