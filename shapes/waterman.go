// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/openbrush/polyhydra/polymesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// watermanCenters are the sphere centers selected by Q, in units of the
// cubic lattice: a lattice point, an edge midpoint, a tetrahedral hole
// and an octahedral hole of the face-centered cubic lattice.
var watermanCenters = []r3.Vec{
	{},
	{X: 0.5, Y: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: 1},
}

const watermanCentersN = 4

// WatermanPoints returns the points of the face-centered cubic lattice
// (integer points with an even coordinate sum) within distance
// sqrt(2*root) of the center selected by c, relative to that center.
func WatermanPoints(root, c int) []r3.Vec {
	center := watermanCenters[clamp(c, 0, watermanCentersN-1)]
	r2 := 2 * float64(root)
	ext := int(math.Ceil(math.Sqrt(r2))) + 1
	var pts []r3.Vec
	for x := -ext; x <= ext+1; x++ {
		for y := -ext; y <= ext+1; y++ {
			for z := -ext; z <= ext+1; z++ {
				if (x+y+z)%2 != 0 {
					continue
				}
				d := r3.Sub(r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}, center)
				if r3.Dot(d, d) <= r2+1e-9 {
					pts = append(pts, d)
				}
			}
		}
	}
	return pts
}

// BuildWaterman builds the Waterman polyhedron of the given root and
// center. If the lattice points within the sphere do not span a solid,
// the root is increased until they do. All faces are [polymesh.Existing].
func BuildWaterman(root, c int) *polymesh.PolyMesh {
	root = max(root, 1)
	for {
		pm := HullMesh(WatermanPoints(root, c))
		if pm.NumFaces() >= 4 {
			return pm
		}
		root++
	}
}
