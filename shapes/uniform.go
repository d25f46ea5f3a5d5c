// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"math"

	"github.com/openbrush/polyhydra/polymesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// UniformTypes are the uniform polyhedra that can be built.
type UniformTypes int32 //enums:enum

const (
	Tetrahedron UniformTypes = iota
	Octahedron
	Cube
	Icosahedron
	Dodecahedron

	TruncatedTetrahedron
	Cuboctahedron
	TruncatedCube
	TruncatedOctahedron
	Rhombicuboctahedron
	TruncatedCuboctahedron
	SnubCube
	Icosidodecahedron
	TruncatedDodecahedron
	TruncatedIcosahedron
	Rhombicosidodecahedron
	TruncatedIcosidodecahedron
	SnubDodecahedron

	SmallStellatedDodecahedron
	GreatDodecahedron
	GreatStellatedDodecahedron
	GreatIcosahedron

	// PolygonalPrism is a prism on a regular P-gon.
	PolygonalPrism

	// PolygonalAntiprism is an antiprism on a regular P-gon.
	PolygonalAntiprism

	// PolygrammicPrism is a prism on the star polygon {P/Q}.
	PolygrammicPrism

	// PolygrammicAntiprism is an antiprism on the star polygon {P/Q}.
	PolygrammicAntiprism
)

// UniformCategories group the uniform polyhedra.
type UniformCategories int32 //enums:enum

const (
	Platonic UniformCategories = iota
	Archimedean
	KeplerPoinsot
	Prismatic
)

// uniformSymbols are the Wythoff symbols of the non-prismatic uniform polyhedra.
var uniformSymbols = map[UniformTypes]string{
	Tetrahedron:  "3|2 3",
	Octahedron:   "4|2 3",
	Cube:         "3|2 4",
	Icosahedron:  "5|2 3",
	Dodecahedron: "3|2 5",

	TruncatedTetrahedron:       "2 3|3",
	Cuboctahedron:              "2|3 4",
	TruncatedCube:              "2 3|4",
	TruncatedOctahedron:        "2 4|3",
	Rhombicuboctahedron:        "3 4|2",
	TruncatedCuboctahedron:     "2 3 4|",
	SnubCube:                   "|2 3 4",
	Icosidodecahedron:          "2|3 5",
	TruncatedDodecahedron:      "2 3|5",
	TruncatedIcosahedron:       "2 5|3",
	Rhombicosidodecahedron:     "3 5|2",
	TruncatedIcosidodecahedron: "2 3 5|",
	SnubDodecahedron:           "|2 3 5",

	SmallStellatedDodecahedron: "5|2 5/2",
	GreatDodecahedron:          "5/2|2 5",
	GreatStellatedDodecahedron: "3|2 5/2",
	GreatIcosahedron:           "5/2|2 3",
}

// Category returns the category of the uniform polyhedron.
func (ut UniformTypes) Category() UniformCategories {
	switch {
	case ut <= Dodecahedron:
		return Platonic
	case ut <= SnubDodecahedron:
		return Archimedean
	case ut <= GreatIcosahedron:
		return KeplerPoinsot
	}
	return Prismatic
}

// Symbol returns the Wythoff symbol of the uniform polyhedron,
// or "" for the prismatic ones.
func (ut UniformTypes) Symbol() string {
	return uniformSymbols[ut]
}

// buildUniform builds a uniform polyhedron and sits it level.
func buildUniform(p Params) *polymesh.PolyMesh {
	var pm *polymesh.PolyMesh
	switch p.UniformType {
	case PolygonalPrism:
		pm = BuildPrism(p.P, 1)
	case PolygonalAntiprism:
		pm = BuildAntiprism(p.P, 1)
	case PolygrammicPrism:
		pm = BuildPrism(p.P, p.Q)
	case PolygrammicAntiprism:
		pm = BuildAntiprism(p.P, p.Q)
	default:
		sym, ok := uniformSymbols[p.UniformType]
		if !ok {
			panic(fmt.Sprintf("shapes: unknown uniform type %d", p.UniformType))
		}
		pm = BuildWythoff(mustWythoff(sym))
	}
	return pm.SitLevel()
}

// starStep normalizes the star step q of a {p/q} polygon to the range
// [1, p/2]. It returns the step and the number of separate polygons
// in the compound. Compounds of digons fall back to the plain polygon.
func starStep(p, q int) (step, parts int) {
	q = min(q, p-q)
	if q < 1 {
		q = 1
	}
	g := gcd(p, q)
	if p/g < 3 {
		return 1, 1
	}
	return q, g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ring returns n points on a circle of the given radius in the plane
// y = height, starting at the given phase angle.
func ring(n int, radius, height, phase float64) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i := range pts {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = r3.Vec{X: radius * math.Cos(a), Y: height, Z: radius * math.Sin(a)}
	}
	return pts
}

// polygramLoops returns the loops of the {p/q} compound over vertex
// indexes offset by off.
func polygramLoops(p, q, parts, off int) [][]int {
	loops := make([][]int, parts)
	for s := range parts {
		for k := range p / parts {
			loops[s] = append(loops[s], off+(s+k*q)%p)
		}
	}
	return loops
}

// circumradius returns the circumradius of a {p/q} polygon with unit edges.
func circumradius(p, q int) float64 {
	return 1 / (2 * math.Sin(math.Pi*float64(q)/float64(p)))
}

// BuildPrism builds a prism on the {p/q} polygon with unit edges.
// Caps are [polymesh.Existing] and sides [polymesh.New].
func BuildPrism(p, q int) *polymesh.PolyMesh {
	q, parts := starStep(p, q)
	r := circumradius(p, q)
	pts := append(ring(p, r, 0.5, 0), ring(p, r, -0.5, 0)...)
	var loops [][]int
	var roles []polymesh.Roles
	for _, lp := range polygramLoops(p, q, parts, 0) {
		loops = append(loops, lp)
		roles = append(roles, polymesh.Existing)
	}
	for _, lp := range polygramLoops(p, q, parts, p) {
		loops = append(loops, lp)
		roles = append(roles, polymesh.Existing)
	}
	for a := range p {
		b := (a + q) % p
		loops = append(loops, []int{a, b, b + p, a + p})
		roles = append(roles, polymesh.New)
	}
	pm := toMesh(pts, loops, roles)
	pm.OrientOutward()
	return pm
}

// BuildAntiprism builds an antiprism on the {p/q} polygon with unit edges.
// Caps are [polymesh.Existing] and triangles [polymesh.New].
func BuildAntiprism(p, q int) *polymesh.PolyMesh {
	q, parts := starStep(p, q)
	r := circumradius(p, q)
	side := 2 * r * math.Sin(math.Pi*float64(q)/(2*float64(p)))
	h := math.Sqrt(max(1-side*side, 0.01))
	pts := append(ring(p, r, h/2, 0), ring(p, r, -h/2, math.Pi*float64(q)/float64(p))...)
	var loops [][]int
	var roles []polymesh.Roles
	for _, lp := range polygramLoops(p, q, parts, 0) {
		loops = append(loops, lp)
		roles = append(roles, polymesh.Existing)
	}
	for _, lp := range polygramLoops(p, q, parts, p) {
		loops = append(loops, lp)
		roles = append(roles, polymesh.Existing)
	}
	for a := range p {
		b := (a + q) % p
		loops = append(loops, []int{a, b, a + p}, []int{a + p, b + p, b})
		roles = append(roles, polymesh.New, polymesh.New)
	}
	pm := toMesh(pts, loops, roles)
	pm.OrientOutward()
	return pm
}
