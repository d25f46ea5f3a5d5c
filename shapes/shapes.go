// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes builds the base polyhedra that Conway operators act on:
// uniform polyhedra from Wythoff symbols, parametric Johnson solids,
// Waterman polyhedra, grids and other procedural primitives.
package shapes

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
	"gonum.org/v1/gonum/spatial/r3"
)

//go:generate core generate

// ShapeTypes are the families of base shapes.
type ShapeTypes int32 //enums:enum

const (
	// Uniform polyhedra: Platonic, Archimedean, Kepler-Poinsot and prismatic.
	Uniform ShapeTypes = iota

	// Johnson solids built from parametric families.
	Johnson

	// Waterman polyhedra: convex hulls of lattice points in a sphere.
	Waterman

	// Grid lattices mapped onto a plane or a surface.
	Grid

	// Other procedural primitives.
	Other
)

// Params selects a base shape and its parameters.
type Params struct {

	// ShapeType is the shape family.
	ShapeType ShapeTypes

	// UniformType is the uniform polyhedron, for the Uniform family.
	UniformType UniformTypes

	// JohnsonType is the Johnson family, for the Johnson family.
	JohnsonType JohnsonTypes

	// GridType is the tiling, for the Grid family.
	GridType GridTypes

	// GridShape is the surface the grid is mapped onto, for the Grid family.
	GridShape GridShapes

	// OtherType is the primitive, for the Other family.
	OtherType OtherTypes

	// P is the first integer parameter: usually a side count.
	P int

	// Q is the second integer parameter: a star step, center or resolution.
	Q int
}

var builders = map[ShapeTypes]func(p Params) *polymesh.PolyMesh{
	Uniform:  buildUniform,
	Johnson:  buildJohnson,
	Waterman: func(p Params) *polymesh.PolyMesh { return BuildWaterman(p.P, p.Q) },
	Grid:     func(p Params) *polymesh.PolyMesh { return BuildGrid(p.GridType, p.GridShape, p.P, p.Q) },
	Other:    buildOther,
}

// Build returns the base shape for the given parameters, which
// are validated first. The P and Q actually used are recorded in
// the mesh info. It panics on an unknown shape type.
func Build(p Params) *polymesh.PolyMesh {
	p = Validate(p)
	fn, ok := builders[p.ShapeType]
	if !ok {
		panic(fmt.Sprintf("shapes: unknown shape type %d", p.ShapeType))
	}
	pm := fn(p)
	pm.Info = polymesh.BasePolyhedraInfo{P: p.P, Q: p.Q}
	return pm
}

// Validate returns the parameters with P and Q clamped into the
// domain of the selected family. It is idempotent.
func Validate(p Params) Params {
	switch p.ShapeType {
	case Uniform:
		p.P = clamp(p.P, 3, 16)
		if p.Q > p.P-2 {
			p.Q = p.P - 2
		}
		if p.Q < 2 {
			p.Q = 2
		}
	case Johnson:
		p.P = clamp(p.P, 3, 16)
		p.Q = clamp(p.Q, 1, 16)
	case Waterman:
		p.P = clamp(p.P, 1, 60)
		p.Q = clamp(p.Q, 0, watermanCentersN-1)
	case Grid:
		lo := 1
		if p.GridShape != Plane {
			lo = 3
		}
		p.P = clamp(p.P, lo, 32)
		p.Q = clamp(p.Q, lo, 32)
		// hex rows only line up across the torus seam in pairs
		if p.GridType == Hex && p.GridShape == Torus && p.Q%2 == 1 {
			p.Q++
			if p.Q > 32 {
				p.Q -= 2
			}
		}
	case Other:
		switch p.OtherType {
		case Polygon:
			p.P = clamp(p.P, 3, 64)
			p.Q = clamp(p.Q, 1, 64)
		case UvSphere, UvHemisphere:
			p.P = clamp(p.P, 3, 64)
			p.Q = clamp(p.Q, 2, 64)
		default:
			p.P = clamp(p.P, 1, 32)
			p.Q = clamp(p.Q, 1, 32)
		}
	}
	return p
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// toMesh converts float64 positions and loops into a mesh.
func toMesh(pts []r3.Vec, loops [][]int, roles []polymesh.Roles) *polymesh.PolyMesh {
	verts := make([]math32.Vector3, len(pts))
	for i, p := range pts {
		verts[i] = math32.Vec3(float32(p.X), float32(p.Y), float32(p.Z))
	}
	return polymesh.NewPolyMesh(verts, loops, roles)
}
