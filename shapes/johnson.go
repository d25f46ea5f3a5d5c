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

// JohnsonTypes are the parametric families of Johnson solids.
// P gives the side count of the base polygon; the rotunda families
// are exact Johnson solids for P = 5.
type JohnsonTypes int32 //enums:enum

const (
	JohnsonPrism JohnsonTypes = iota
	JohnsonAntiprism
	Pyramid
	ElongatedPyramid
	GyroelongatedPyramid
	Dipyramid
	ElongatedDipyramid
	GyroelongatedDipyramid
	Cupola
	ElongatedCupola
	GyroelongatedCupola
	OrthoBicupola
	GyroBicupola
	ElongatedOrthoBicupola
	ElongatedGyroBicupola
	GyroelongatedBicupola
	Rotunda
	ElongatedRotunda
	GyroelongatedRotunda
	GyroelongatedBirotunda
)

// regular polygon measures for unit edges
func polyRadius(n int) float64  { return circumradius(n, 1) }
func polyApothem(n int) float64 { return 1 / (2 * math.Tan(math.Pi/float64(n))) }

// pyramidHeight is the apex height over a regular n-gon. Shapes that
// cannot have unit edges (n >= 6) get a fixed height instead.
func pyramidHeight(n int) float64 {
	r := polyRadius(n)
	return math.Sqrt(max(1-r*r, 0.25))
}

// bandHeight is the height of an antiprism band on a regular n-gon.
func bandHeight(n int) float64 {
	side := 2 * polyRadius(n) * math.Sin(math.Pi/(2*float64(n)))
	return math.Sqrt(1 - side*side)
}

// cupolaHeight is the height of a cupola on a regular n-gon top.
func cupolaHeight(n int) float64 {
	d := polyApothem(2*n) - polyApothem(n)
	return math.Sqrt(max(1-d*d, 0.25))
}

// rotunda returns the vertices of a rotunda on a 2n-gon base lying in
// the plane y = base, growing in direction dir (+1 or -1), turned by
// phase. The vertices lie on the sphere through the base.
func rotunda(n int, base, dir, phase float64) []r3.Vec {
	R := polyRadius(2 * n)
	rn := polyRadius(n)
	top := math.Sqrt(max(R*R-rn*rn, 0))
	mid := (2*R*R - 1) / (2 * R * math.Cos(math.Pi/(2*float64(n))))
	midY := math.Sqrt(max(R*R-mid*mid, 0))
	fn := float64(n)
	pts := ring(2*n, R, base, phase+math.Pi/(2*fn))
	pts = append(pts, ring(n, mid, base+dir*midY, phase+math.Pi/fn)...)
	return append(pts, ring(n, rn, base+dir*top, phase)...)
}

// cupola returns the vertices of a cupola on a 2n-gon base lying in
// the plane y = base, growing in direction dir, turned by phase.
func cupola(n int, base, dir, phase float64) []r3.Vec {
	fn := float64(n)
	pts := ring(2*n, polyRadius(2*n), base, phase+math.Pi/(2*fn))
	return append(pts, ring(n, polyRadius(n), base+dir*cupolaHeight(n), phase+math.Pi/fn)...)
}

// johnsonPoints returns the vertex set of a Johnson family member.
func johnsonPoints(t JohnsonTypes, n int) []r3.Vec {
	fn := float64(n)
	r := polyRadius(n)
	h := pyramidHeight(n)
	ha := bandHeight(n)
	ha2 := bandHeight(2 * n)
	half := math.Pi / fn
	apex := func(y float64) r3.Vec { return r3.Vec{Y: y} }
	switch t {
	case Pyramid:
		return append(ring(n, r, 0, 0), apex(h))
	case ElongatedPyramid:
		return append(append(ring(n, r, 0, 0), ring(n, r, -1, 0)...), apex(h))
	case GyroelongatedPyramid:
		return append(append(ring(n, r, 0, 0), ring(n, r, -ha, half)...), apex(h))
	case Dipyramid:
		return append(ring(n, r, 0, 0), apex(h), apex(-h))
	case ElongatedDipyramid:
		return append(append(ring(n, r, 0, 0), ring(n, r, -1, 0)...), apex(h), apex(-1-h))
	case GyroelongatedDipyramid:
		return append(append(ring(n, r, 0, 0), ring(n, r, -ha, half)...), apex(h), apex(-ha-h))
	case Cupola:
		return cupola(n, 0, 1, 0)
	case ElongatedCupola:
		return append(cupola(n, 0, 1, 0), ring(2*n, polyRadius(2*n), -1, half/2)...)
	case GyroelongatedCupola:
		return append(cupola(n, 0, 1, 0), ring(2*n, polyRadius(2*n), -ha2, half)...)
	case OrthoBicupola:
		return append(cupola(n, 0, 1, 0), cupola(n, 0, -1, 0)...)
	case GyroBicupola:
		return append(cupola(n, 0, 1, 0), cupola(n, 0, -1, half)...)
	case ElongatedOrthoBicupola:
		return append(cupola(n, 0, 1, 0), cupola(n, -1, -1, 0)...)
	case ElongatedGyroBicupola:
		return append(cupola(n, 0, 1, 0), cupola(n, -1, -1, half)...)
	case GyroelongatedBicupola:
		return append(cupola(n, 0, 1, 0), cupola(n, -ha2, -1, half/2)...)
	case Rotunda:
		return rotunda(n, 0, 1, 0)
	case ElongatedRotunda:
		return append(rotunda(n, 0, 1, 0), ring(2*n, polyRadius(2*n), -1, half/2)...)
	case GyroelongatedRotunda:
		return append(rotunda(n, 0, 1, 0), ring(2*n, polyRadius(2*n), -ha2, half)...)
	case GyroelongatedBirotunda:
		return append(rotunda(n, 0, 1, 0), rotunda(n, -ha2, -1, half/2)...)
	}
	panic(fmt.Sprintf("shapes: unknown Johnson type %d", t))
}

// BuildJohnson builds a member of a Johnson family on a P-gon.
// Faces with P sides are [polymesh.Existing], with 2P sides
// [polymesh.ExistingAlt], triangles [polymesh.New] and the rest
// [polymesh.NewAlt].
func BuildJohnson(t JohnsonTypes, p int) *polymesh.PolyMesh {
	switch t {
	case JohnsonPrism:
		return BuildPrism(p, 1)
	case JohnsonAntiprism:
		return BuildAntiprism(p, 1)
	}
	pm := HullMesh(johnsonPoints(t, p))
	roleBySides(pm, func(sides int) polymesh.Roles {
		switch sides {
		case p:
			return polymesh.Existing
		case 2 * p:
			return polymesh.ExistingAlt
		case 3:
			return polymesh.New
		}
		return polymesh.NewAlt
	})
	return pm
}

func buildJohnson(p Params) *polymesh.PolyMesh {
	return BuildJohnson(p.JohnsonType, p.P)
}
