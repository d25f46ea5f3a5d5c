// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
)

// OtherTypes are the other procedural primitives.
type OtherTypes int32 //enums:enum

const (
	// Polygon is a single regular P-gon facing up.
	Polygon OtherTypes = iota

	// UvSphere is a sphere of P longitudes and Q latitude bands.
	UvSphere

	// UvHemisphere is the upper half of a UvSphere, closed by a base polygon.
	UvHemisphere

	// GriddedCube is a cube with each face divided into a grid of quads.
	GriddedCube
)

func buildOther(p Params) *polymesh.PolyMesh {
	switch p.OtherType {
	case Polygon:
		return BuildPolygon(p.P)
	case UvSphere:
		return BuildUvSphere(p.P, p.Q)
	case UvHemisphere:
		return BuildUvHemisphere(p.P, p.Q)
	case GriddedCube:
		return BuildGriddedCube(p.P, p.Q)
	}
	panic(fmt.Sprintf("shapes: unknown other type %d", p.OtherType))
}

// BuildPolygon builds a single regular p-gon of unit circumradius in
// the XZ plane, facing up, with the [polymesh.Existing] role.
func BuildPolygon(p int) *polymesh.PolyMesh {
	pm := toMesh(ring(p, 1, 0, 0), [][]int{loopRange(0, p)}, nil)
	pm.OrientLoop(pm.Faces[0].Vertices, math32.Vec3(0, 1, 0))
	return pm
}

func loopRange(start, n int) []int {
	lp := make([]int, n)
	for i := range lp {
		lp[i] = start + i
	}
	return lp
}

// latRing returns the p points of the unit sphere at the given latitude.
func latRing(p int, lat float32) []math32.Vector3 {
	pts := make([]math32.Vector3, p)
	y, r := math32.Sin(lat), math32.Cos(lat)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(p)
		pts[i] = math32.Vec3(r*math32.Cos(a), y, r*math32.Sin(a))
	}
	return pts
}

// uvBands appends the faces between consecutive rings of p vertices
// starting at the given vertex index. Quads alternate between the
// [polymesh.Existing] and [polymesh.ExistingAlt] roles.
func uvBands(pm *polymesh.PolyMesh, first, rings, p int) {
	for j := range rings - 1 {
		lo, hi := first+j*p, first+(j+1)*p
		for i := range p {
			k := (i + 1) % p
			role := polymesh.Existing
			if (i+j)%2 == 1 {
				role = polymesh.ExistingAlt
			}
			pm.AddFace([]int{lo + i, lo + k, hi + k, hi + i}, role)
		}
	}
}

// uvCap appends a fan of [polymesh.New] triangles from the pole
// to a ring of p vertices.
func uvCap(pm *polymesh.PolyMesh, pole, first, p int) {
	for i := range p {
		pm.AddFace([]int{pole, first + i, first + (i+1)%p}, polymesh.New)
	}
}

// BuildUvSphere builds a unit sphere of p longitudes and q latitude
// bands, with single pole vertices.
func BuildUvSphere(p, q int) *polymesh.PolyMesh {
	pm := &polymesh.PolyMesh{}
	south := pm.AddVertex(math32.Vec3(0, -1, 0))
	north := pm.AddVertex(math32.Vec3(0, 1, 0))
	first := len(pm.Vertices)
	for j := 1; j < q; j++ {
		pm.Vertices = append(pm.Vertices, latRing(p, math32.Pi*(float32(j)/float32(q)-0.5))...)
	}
	uvCap(pm, south, first, p)
	uvBands(pm, first, q-1, p)
	uvCap(pm, north, first+(q-2)*p, p)
	pm.OrientOutward()
	return pm
}

// BuildUvHemisphere builds the upper half of a unit sphere with p
// longitudes and q latitude bands. The base is a [polymesh.NewAlt] p-gon.
func BuildUvHemisphere(p, q int) *polymesh.PolyMesh {
	pm := &polymesh.PolyMesh{}
	north := pm.AddVertex(math32.Vec3(0, 1, 0))
	first := len(pm.Vertices)
	for j := range q {
		pm.Vertices = append(pm.Vertices, latRing(p, 0.5*math32.Pi*float32(j)/float32(q))...)
	}
	pm.AddFace(loopRange(first, p), polymesh.NewAlt)
	uvBands(pm, first, q, p)
	uvCap(pm, north, first+(q-1)*p, p)
	pm.OrientOutward()
	return pm
}

// BuildGriddedCube builds a cube spanning -1 to 1 with each face divided
// into a grid: p cells along X and Z, q cells along Y. Faces normal to
// X are [polymesh.Existing], to Y [polymesh.New], to Z [polymesh.NewAlt].
func BuildGriddedCube(p, q int) *polymesh.PolyMesh {
	segs := [3]int{p, q, p}
	roles := [3]polymesh.Roles{polymesh.Existing, polymesh.New, polymesh.NewAlt}
	pm := &polymesh.PolyMesh{}
	for axis := range 3 {
		u, v := (axis+1)%3, (axis+2)%3
		for _, side := range []float32{-1, 1} {
			base := len(pm.Vertices)
			nu, nv := segs[u], segs[v]
			for j := 0; j <= nv; j++ {
				for i := 0; i <= nu; i++ {
					var c [3]float32
					c[axis] = side
					c[u] = 2*float32(i)/float32(nu) - 1
					c[v] = 2*float32(j)/float32(nv) - 1
					pm.AddVertex(math32.Vec3(c[0], c[1], c[2]))
				}
			}
			for j := range nv {
				for i := range nu {
					a := base + j*(nu+1) + i
					pm.AddFace([]int{a, a + 1, a + nu + 2, a + nu + 1}, roles[axis])
				}
			}
		}
	}
	pm = pm.Weld(1e-5)
	pm.OrientOutward()
	return pm
}
