// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conway

import (
	"github.com/openbrush/polyhydra/polymesh"
)

// subdivide splits each selected face into quads joining its centroid,
// its edge midpoints and its corners. Faces sharing an edge with a
// selected face get the midpoint inserted so the mesh stays watertight.
func subdivide(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	b := newBuilder(pm)
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		if !f.Selected {
			continue
		}
		n := len(f.Vertices)
		for i, v := range f.Vertices {
			b.midpoint(v, f.Vertices[(i+1)%n])
		}
	}
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		lp := f.Vertices
		n := len(lp)
		if f.Selected {
			c := b.centroid(fi)
			for i, v := range lp {
				b.face([]int{b.vert(v), b.midpoint(v, lp[(i+1)%n]), c, b.midpoint(lp[(i+n-1)%n], v)}, f.Role)
			}
			continue
		}
		var loop []int
		for i, v := range lp {
			loop = append(loop, b.vert(v))
			e := polymesh.NewEdge(v, lp[(i+1)%n])
			if m, ok := b.index[pointKey{edgePoint, e.A, e.B}]; ok {
				loop = append(loop, m)
			}
		}
		b.face(loop, f.Role)
	}
	return b.out
}

// inset replaces each selected face with a copy moved toward its
// centroid by the inset amount and along its normal by the depth,
// joined to the original outline by [polymesh.New] quads.
func inset(pm *polymesh.PolyMesh, amount, depth Amount) *polymesh.PolyMesh {
	b := newBuilder(pm)
	for fi := range pm.Faces {
		f := &pm.Faces[fi]
		lp := b.verts(f.Vertices)
		if !f.Selected {
			b.face(lp, f.Role)
			continue
		}
		c := pm.FaceCentroid(fi)
		a := amount()
		off := pm.FaceNormal(fi).MulScalar(depth())
		n := len(lp)
		in := make([]int, n)
		for i, v := range f.Vertices {
			in[i] = b.out.AddVertex(pm.Vertices[v].Lerp(c, a).Add(off))
		}
		b.face(in, f.Role)
		for i := range lp {
			j := (i + 1) % n
			b.face([]int{lp[i], lp[j], in[j], in[i]}, polymesh.New)
		}
	}
	return b.out
}

// extrude raises each selected face along its normal by the depth.
func extrude(pm *polymesh.PolyMesh, depth Amount) *polymesh.PolyMesh {
	return inset(pm, Fixed(0), depth)
}

func faceRemove(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	return pm.RemoveFaces(func(i int, f *polymesh.Face) bool { return f.Selected })
}

func faceKeep(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	return pm.RemoveFaces(func(i int, f *polymesh.Face) bool { return !f.Selected })
}

// spherize moves each vertex of the selected faces toward the sphere
// centered on the mesh centroid with the mean vertex distance as radius.
// An amount of 1 puts the vertex on the sphere.
func spherize(pm *polymesh.PolyMesh, amount Amount) *polymesh.PolyMesh {
	c := pm.Centroid()
	var radius float32
	for _, v := range pm.Vertices {
		radius += v.DistanceTo(c)
	}
	radius /= float32(max(len(pm.Vertices), 1))
	moved := make([]bool, len(pm.Vertices))
	for fi := range pm.Faces {
		if !pm.Faces[fi].Selected {
			continue
		}
		for _, v := range pm.Faces[fi].Vertices {
			moved[v] = true
		}
	}
	cp := pm.Clone()
	for i, v := range pm.Vertices {
		if !moved[i] {
			continue
		}
		d := v.Sub(c)
		if d.LengthSquared() == 0 {
			continue
		}
		target := c.Add(d.Normal().MulScalar(radius))
		cp.Vertices[i] = v.Lerp(target, amount())
	}
	return cp
}
