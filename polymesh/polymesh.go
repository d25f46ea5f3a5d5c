// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polymesh provides the polygon mesh data model used by the
// polyhedron builders and Conway operators: vertices, faces as ordered
// vertex loops tagged with a role, and derived edge and ring topology.
package polymesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

//go:generate core generate

// Roles record which generative step or operator produced a face.
// They drive coloring and face selection.
type Roles int32 //enums:enum

const (
	// Ignored faces are not part of any generative lineage.
	Ignored Roles = iota

	// Existing faces derive from faces of the input mesh.
	Existing

	// New faces derive from vertices of the input mesh.
	New

	// NewAlt faces derive from edges of the input mesh,
	// or are a second kind of new face.
	NewAlt

	// ExistingAlt faces are a second kind of existing face.
	ExistingAlt
)

// BasePolyhedraInfo records the P and Q parameters used
// to generate the base shape of a mesh.
type BasePolyhedraInfo struct {
	P int
	Q int
}

// Face is an ordered, cyclic loop of vertex indices,
// counter-clockwise when seen from outside.
type Face struct {

	// Vertices are indexes into [PolyMesh.Vertices].
	Vertices []int

	// Role records the provenance of the face.
	Role Roles

	// Selected scopes operator application.
	Selected bool
}

// Sides returns the number of vertices in the face loop.
func (f *Face) Sides() int {
	return len(f.Vertices)
}

// Clone returns a deep copy of the face.
func (f *Face) Clone() Face {
	return Face{Vertices: slices.Clone(f.Vertices), Role: f.Role, Selected: f.Selected}
}

// PolyMesh is a polygon mesh made of vertex positions and face loops.
// Operators never modify a PolyMesh in place: they return a new one.
type PolyMesh struct {

	// Vertices are the vertex positions; a vertex is identified by its index.
	Vertices []math32.Vector3

	// Faces are the polygon loops of the mesh.
	Faces []Face

	// Info records the parameters of the base shape.
	Info BasePolyhedraInfo
}

// NewPolyMesh returns a new mesh with the given vertex positions and face loops.
// Roles are matched to loops by index; missing roles default to [Existing].
func NewPolyMesh(verts []math32.Vector3, loops [][]int, roles []Roles) *PolyMesh {
	pm := &PolyMesh{Vertices: slices.Clone(verts), Faces: make([]Face, len(loops))}
	for i, lp := range loops {
		role := Existing
		if i < len(roles) {
			role = roles[i]
		}
		pm.Faces[i] = Face{Vertices: slices.Clone(lp), Role: role}
	}
	return pm
}

// Clone returns a deep copy of the mesh.
func (pm *PolyMesh) Clone() *PolyMesh {
	cp := &PolyMesh{Vertices: slices.Clone(pm.Vertices), Faces: make([]Face, len(pm.Faces)), Info: pm.Info}
	for i := range pm.Faces {
		cp.Faces[i] = pm.Faces[i].Clone()
	}
	return cp
}

// NumVertices returns the number of vertices.
func (pm *PolyMesh) NumVertices() int { return len(pm.Vertices) }

// NumFaces returns the number of faces.
func (pm *PolyMesh) NumFaces() int { return len(pm.Faces) }

// NumEdges returns the number of distinct undirected edges.
func (pm *PolyMesh) NumEdges() int { return len(pm.Edges()) }

// IsEmpty returns true if the mesh has no faces.
func (pm *PolyMesh) IsEmpty() bool { return len(pm.Faces) == 0 }

// AddVertex appends a vertex and returns its index.
func (pm *PolyMesh) AddVertex(v math32.Vector3) int {
	pm.Vertices = append(pm.Vertices, v)
	return len(pm.Vertices) - 1
}

// AddFace appends a face with the given loop and role.
func (pm *PolyMesh) AddFace(loop []int, role Roles) {
	pm.Faces = append(pm.Faces, Face{Vertices: loop, Role: role})
}

// Loops returns the vertex loops of all faces.
// The returned slices alias the face data.
func (pm *PolyMesh) Loops() [][]int {
	lps := make([][]int, len(pm.Faces))
	for i := range pm.Faces {
		lps[i] = pm.Faces[i].Vertices
	}
	return lps
}

// SelectFaces sets the Selected flag of each face from the given function.
func (pm *PolyMesh) SelectFaces(fun func(i int, f *Face) bool) {
	for i := range pm.Faces {
		pm.Faces[i].Selected = fun(i, &pm.Faces[i])
	}
}

// NumSelected returns the number of selected faces.
func (pm *PolyMesh) NumSelected() int {
	n := 0
	for i := range pm.Faces {
		if pm.Faces[i].Selected {
			n++
		}
	}
	return n
}

// ClearSelection deselects all faces.
func (pm *PolyMesh) ClearSelection() {
	for i := range pm.Faces {
		pm.Faces[i].Selected = false
	}
}
