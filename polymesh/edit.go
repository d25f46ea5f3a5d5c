// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polymesh

import (
	"cogentcore.org/core/math32"
)

// Compact returns a copy of the mesh without unreferenced vertices.
// Vertex order is preserved.
func (pm *PolyMesh) Compact() *PolyMesh {
	used := make([]bool, len(pm.Vertices))
	for fi := range pm.Faces {
		for _, v := range pm.Faces[fi].Vertices {
			used[v] = true
		}
	}
	remap := make([]int, len(pm.Vertices))
	cp := &PolyMesh{Info: pm.Info}
	for i, v := range pm.Vertices {
		if !used[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(cp.Vertices)
		cp.Vertices = append(cp.Vertices, v)
	}
	cp.Faces = make([]Face, len(pm.Faces))
	for fi := range pm.Faces {
		f := pm.Faces[fi].Clone()
		for i, v := range f.Vertices {
			f.Vertices[i] = remap[v]
		}
		cp.Faces[fi] = f
	}
	return cp
}

// Weld returns a copy of the mesh in which vertices closer than eps are
// merged into the first of them. Repeated vertices are removed from face
// loops and faces left with fewer than three vertices are dropped.
// The result is compacted.
func (pm *PolyMesh) Weld(eps float32) *PolyMesh {
	if eps <= 0 {
		eps = 1e-5
	}
	remap := make([]int, len(pm.Vertices))
	type cell struct{ x, y, z int32 }
	grid := make(map[cell][]int)
	key := func(v math32.Vector3) cell {
		return cell{int32(math32.Floor(v.X / eps)), int32(math32.Floor(v.Y / eps)), int32(math32.Floor(v.Z / eps))}
	}
	for i, v := range pm.Vertices {
		remap[i] = i
		k := key(v)
	search:
		for dx := int32(-1); dx <= 1; dx++ {
			for dy := int32(-1); dy <= 1; dy++ {
				for dz := int32(-1); dz <= 1; dz++ {
					for _, j := range grid[cell{k.x + dx, k.y + dy, k.z + dz}] {
						if pm.Vertices[j].DistanceTo(v) < eps {
							remap[i] = j
							break search
						}
					}
				}
			}
		}
		if remap[i] == i {
			grid[k] = append(grid[k], i)
		}
	}
	cp := &PolyMesh{Vertices: append([]math32.Vector3(nil), pm.Vertices...), Info: pm.Info}
	for fi := range pm.Faces {
		f := pm.Faces[fi]
		lp := CleanLoop(remapLoop(f.Vertices, remap))
		if len(lp) < 3 {
			continue
		}
		cp.Faces = append(cp.Faces, Face{Vertices: lp, Role: f.Role, Selected: f.Selected})
	}
	return cp.Compact()
}

func remapLoop(loop, remap []int) []int {
	lp := make([]int, len(loop))
	for i, v := range loop {
		lp[i] = remap[v]
	}
	return lp
}

// CleanLoop removes consecutive repeated vertices from the loop,
// including a repeat of the first vertex at the end. If a vertex still
// appears more than once, only the entries up to its first repeat are kept.
func CleanLoop(loop []int) []int {
	out := make([]int, 0, len(loop))
	for _, v := range loop {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	seen := make(map[int]bool, len(out))
	for i, v := range out {
		if seen[v] {
			return out[:i]
		}
		seen[v] = true
	}
	return out
}

// RemoveFaces returns a copy of the mesh without the faces for which
// drop returns true. The result is compacted.
func (pm *PolyMesh) RemoveFaces(drop func(i int, f *Face) bool) *PolyMesh {
	cp := &PolyMesh{Vertices: append([]math32.Vector3(nil), pm.Vertices...), Info: pm.Info}
	for fi := range pm.Faces {
		if drop(fi, &pm.Faces[fi]) {
			continue
		}
		cp.Faces = append(cp.Faces, pm.Faces[fi].Clone())
	}
	return cp.Compact()
}

// Append returns a new mesh holding the vertices and faces of
// both meshes. The info of pm is kept.
func (pm *PolyMesh) Append(other *PolyMesh) *PolyMesh {
	cp := pm.Clone()
	off := len(cp.Vertices)
	cp.Vertices = append(cp.Vertices, other.Vertices...)
	for fi := range other.Faces {
		f := other.Faces[fi].Clone()
		for i := range f.Vertices {
			f.Vertices[i] += off
		}
		cp.Faces = append(cp.Faces, f)
	}
	return cp
}
