// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polymesh

import (
	"cogentcore.org/core/math32"
)

// FaceCentroid returns the average of the vertex positions of face i.
func (pm *PolyMesh) FaceCentroid(i int) math32.Vector3 {
	return pm.LoopCentroid(pm.Faces[i].Vertices)
}

// LoopCentroid returns the average of the vertex positions of the loop.
func (pm *PolyMesh) LoopCentroid(loop []int) math32.Vector3 {
	var c math32.Vector3
	if len(loop) == 0 {
		return c
	}
	for _, v := range loop {
		c.SetAdd(pm.Vertices[v])
	}
	return c.DivScalar(float32(len(loop)))
}

// FaceNormal returns the unit normal of face i, computed with
// Newell's method so that non-planar loops get a stable average.
func (pm *PolyMesh) FaceNormal(i int) math32.Vector3 {
	return pm.LoopNormal(pm.Faces[i].Vertices)
}

// LoopNormal returns the unit Newell normal of the loop.
func (pm *PolyMesh) LoopNormal(loop []int) math32.Vector3 {
	return newell(pm.Vertices, loop).Normal()
}

// FaceArea returns the area of face i.
func (pm *PolyMesh) FaceArea(i int) float32 {
	return 0.5 * newell(pm.Vertices, pm.Faces[i].Vertices).Length()
}

// newell returns the unnormalized Newell normal, whose
// length is twice the area of a planar loop.
func newell(verts []math32.Vector3, loop []int) math32.Vector3 {
	var n math32.Vector3
	ln := len(loop)
	for i, vi := range loop {
		a := verts[vi]
		b := verts[loop[(i+1)%ln]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Centroid returns the average position of all vertices.
func (pm *PolyMesh) Centroid() math32.Vector3 {
	var c math32.Vector3
	if len(pm.Vertices) == 0 {
		return c
	}
	for _, v := range pm.Vertices {
		c.SetAdd(v)
	}
	return c.DivScalar(float32(len(pm.Vertices)))
}

// Bounds returns the bounding box of the vertices.
func (pm *PolyMesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range pm.Vertices {
		bb.ExpandByPoint(v)
	}
	return bb
}

// OrientLoop returns the loop, reversed if needed so that
// its normal points along ref.
func (pm *PolyMesh) OrientLoop(loop []int, ref math32.Vector3) []int {
	if newell(pm.Vertices, loop).Dot(ref) < 0 {
		ReverseLoop(loop)
	}
	return loop
}

// ReverseLoop reverses the loop in place, keeping its first vertex.
func ReverseLoop(loop []int) {
	for i, j := 1, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}

// OrientOutward reverses any face whose normal points toward
// the centroid of the mesh. It suits convex and star-shaped meshes.
func (pm *PolyMesh) OrientOutward() {
	c := pm.Centroid()
	for i := range pm.Faces {
		lp := pm.Faces[i].Vertices
		pm.OrientLoop(lp, pm.LoopCentroid(lp).Sub(c))
	}
}

// Transform applies fun to every vertex position in place.
func (pm *PolyMesh) Transform(fun func(v math32.Vector3) math32.Vector3) {
	for i, v := range pm.Vertices {
		pm.Vertices[i] = fun(v)
	}
}

// Transformed returns a copy of the mesh with fun applied to every vertex.
func (pm *PolyMesh) Transformed(fun func(v math32.Vector3) math32.Vector3) *PolyMesh {
	cp := pm.Clone()
	cp.Transform(fun)
	return cp
}

// SitLevel returns a copy of the mesh rotated so that the face whose
// normal points most nearly down lies level, facing straight down.
func (pm *PolyMesh) SitLevel() *PolyMesh {
	if pm.IsEmpty() {
		return pm.Clone()
	}
	down := math32.Vec3(0, -1, 0)
	best, bestDot := 0, float32(2)
	for i := range pm.Faces {
		d := pm.FaceNormal(i).Dot(down)
		if bestDot > 1 || d > bestDot+1e-5 {
			best, bestDot = i, d
		}
	}
	n := pm.FaceNormal(best)
	if n.LengthSquared() == 0 || bestDot > 0.99999 {
		return pm.Clone()
	}
	var q math32.Quat
	q.SetFromUnitVectors(n, down)
	return pm.Transformed(func(v math32.Vector3) math32.Vector3 {
		return v.MulQuat(q)
	})
}

// Recenter returns a copy of the mesh translated so its centroid is at the origin.
func (pm *PolyMesh) Recenter() *PolyMesh {
	c := pm.Centroid()
	return pm.Transformed(func(v math32.Vector3) math32.Vector3 {
		return v.Sub(c)
	})
}
