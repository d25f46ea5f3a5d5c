// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"
	"slices"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"
	"github.com/openbrush/polyhydra/polymesh"
	vec "gonum.org/v1/gonum/spatial/r3"
)

const (
	// hullEpsilon is the quickhull tolerance.
	hullEpsilon = 1e-9

	// coplanarTol is how close to 1 the dot product of two triangle
	// normals must be for them to be merged into one face.
	coplanarTol = 1e-6
)

// HullMesh returns the convex hull of the points as a polygon mesh.
// Coplanar hull triangles are merged into polygon faces, points lying
// inside a hull edge are dropped, and faces point outward. All faces
// get the [polymesh.Existing] role.
func HullMesh(pts []vec.Vec) *polymesh.PolyMesh {
	pts = uniquePoints(pts)
	if len(pts) < 4 {
		return &polymesh.PolyMesh{}
	}
	cloud := make([]r3.Vector, len(pts))
	for i, p := range pts {
		cloud[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
	}
	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(cloud, true, true, hullEpsilon)

	var tris [][3]int
	var normals []vec.Vec
	for i := 0; i+2 < len(hull.Indices); i += 3 {
		t := [3]int{hull.Indices[i], hull.Indices[i+1], hull.Indices[i+2]}
		n := vec.Cross(vec.Sub(pts[t[1]], pts[t[0]]), vec.Sub(pts[t[2]], pts[t[0]]))
		if vec.Norm(n) < 1e-12 {
			continue
		}
		tris = append(tris, t)
		normals = append(normals, vec.Unit(n))
	}

	// union coplanar neighbors
	parent := make([]int, len(tris))
	for i := range parent {
		parent[i] = i
	}
	var find func(i int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	owner := make(map[[2]int]int, 3*len(tris))
	for ti, t := range tris {
		for k := range 3 {
			owner[[2]int{t[k], t[(k+1)%3]}] = ti
		}
	}
	for ti, t := range tris {
		for k := range 3 {
			tj, ok := owner[[2]int{t[(k+1)%3], t[k]}]
			if !ok || vec.Dot(normals[ti], normals[tj]) < 1-coplanarTol {
				continue
			}
			a, b := find(ti), find(tj)
			if a != b {
				parent[max(a, b)] = min(a, b)
			}
		}
	}

	// boundary loop of each group of triangles, in order of first triangle
	groups := make(map[int][]int)
	var order []int
	for ti := range tris {
		r := find(ti)
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], ti)
	}
	var loops [][]int
	for _, r := range order {
		loops = append(loops, groupLoops(tris, groups[r])...)
	}
	for i, lp := range loops {
		loops[i] = dropCollinear(pts, lp)
	}
	pm := toMesh(pts, loops, nil).Compact()
	pm.OrientOutward()
	return pm
}

// uniquePoints returns the points without duplicates, in order.
func uniquePoints(pts []vec.Vec) []vec.Vec {
	type key [3]int64
	q := func(x float64) int64 { return int64(math.Round(x / pointTol)) }
	seen := make(map[key]bool, len(pts))
	out := make([]vec.Vec, 0, len(pts))
	for _, p := range pts {
		k := key{q(p.X), q(p.Y), q(p.Z)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// groupLoops returns the boundary loop of a group of coplanar triangles.
// If the boundary does not chain into a single loop the triangles are
// returned unmerged.
func groupLoops(tris [][3]int, group []int) [][]int {
	if len(group) == 1 {
		t := tris[group[0]]
		return [][]int{{t[0], t[1], t[2]}}
	}
	inGroup := make(map[[2]int]bool)
	for _, ti := range group {
		t := tris[ti]
		for k := range 3 {
			inGroup[[2]int{t[k], t[(k+1)%3]}] = true
		}
	}
	next := make(map[int]int)
	start := -1
	for _, ti := range group {
		t := tris[ti]
		for k := range 3 {
			a, b := t[k], t[(k+1)%3]
			if inGroup[[2]int{b, a}] {
				continue
			}
			next[a] = b
			if start < 0 || a < start {
				start = a
			}
		}
	}
	var loop []int
	v := start
	for range len(next) {
		loop = append(loop, v)
		nv, ok := next[v]
		if !ok {
			break
		}
		v = nv
		if v == start {
			break
		}
	}
	if v != start || len(loop) != len(next) {
		var out [][]int
		for _, ti := range group {
			t := tris[ti]
			out = append(out, []int{t[0], t[1], t[2]})
		}
		return out
	}
	return [][]int{loop}
}

// dropCollinear removes loop vertices that lie on the segment
// between their neighbors.
func dropCollinear(pts []vec.Vec, loop []int) []int {
	lp := slices.Clone(loop)
	for changed := true; changed && len(lp) > 3; {
		changed = false
		n := len(lp)
		for i := range n {
			a, b, c := pts[lp[(i+n-1)%n]], pts[lp[i]], pts[lp[(i+1)%n]]
			u, w := vec.Sub(b, a), vec.Sub(c, b)
			if vec.Norm(vec.Cross(u, w)) < 1e-9*vec.Norm(u)*vec.Norm(w) && vec.Dot(u, w) > 0 {
				lp = slices.Delete(lp, i, i+1)
				changed = true
				break
			}
		}
	}
	return lp
}
