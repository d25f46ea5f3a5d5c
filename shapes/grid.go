// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
)

// GridTypes are the tilings a grid can be made of.
type GridTypes int32 //enums:enum

const (
	// Square is a grid of quads.
	Square GridTypes = iota

	// Isometric is a grid of triangles.
	Isometric

	// Hex is a grid of hexagons.
	Hex
)

// GridShapes are the surfaces a grid can be mapped onto.
type GridShapes int32 //enums:enum

const (
	// Plane is a flat grid in the XZ plane.
	Plane GridShapes = iota

	// Cylinder wraps the grid around the Y axis.
	Cylinder

	// Cone wraps the grid around the Y axis, narrowing to an apex.
	Cone

	// Sphere wraps the grid around a sphere, pinching at the poles.
	Sphere

	// Torus wraps the grid in both directions.
	Torus

	// Polar maps the grid onto a flat disc, pinching at the center.
	Polar
)

// lattice is a flat tiling: planar vertex coordinates, face loops,
// face roles, and the nominal size of the tiling in each direction.
type lattice struct {
	pts    []math32.Vector2
	loops  [][]int
	roles  []polymesh.Roles
	width  float32
	height float32
}

func squareLattice(p, q int, tris bool) *lattice {
	lt := &lattice{width: float32(p), height: float32(q)}
	idx := func(i, j int) int { return j*(p+1) + i }
	for j := 0; j <= q; j++ {
		for i := 0; i <= p; i++ {
			lt.pts = append(lt.pts, math32.Vec2(float32(i), float32(j)))
		}
	}
	for j := range q {
		for i := range p {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			switch {
			case !tris:
				role := polymesh.Existing
				if (i+j)%2 == 1 {
					role = polymesh.ExistingAlt
				}
				lt.loops = append(lt.loops, []int{a, b, c, d})
				lt.roles = append(lt.roles, role)
			case j%2 == 0:
				lt.loops = append(lt.loops, []int{a, b, c}, []int{a, c, d})
				lt.roles = append(lt.roles, polymesh.Existing, polymesh.New)
			default:
				lt.loops = append(lt.loops, []int{a, b, d}, []int{b, c, d})
				lt.roles = append(lt.roles, polymesh.Existing, polymesh.New)
			}
		}
	}
	return lt
}

// hexLattice lays p hexagons per row in q rows, odd rows shifted right,
// as a brick wall of lattice columns whose points zigzag up and down.
func hexLattice(p, q int) *lattice {
	cols := 2*p + 2
	colStep := math32.Sqrt(3) / 3
	lt := &lattice{width: float32(2*p) * colStep, height: float32(q)}
	idx := func(x, j int) int { return j*cols + x }
	for j := 0; j <= q; j++ {
		for x := range cols {
			dy := float32(1) / 6
			if (x+j)%2 == 1 {
				dy = -dy
			}
			lt.pts = append(lt.pts, math32.Vec2(float32(x)*colStep, float32(j)+dy))
		}
	}
	roles := []polymesh.Roles{polymesh.Existing, polymesh.New, polymesh.NewAlt}
	for j := range q {
		for i := range p {
			x := 2*i + j%2
			lt.loops = append(lt.loops, []int{idx(x, j), idx(x+1, j), idx(x+2, j), idx(x+2, j+1), idx(x+1, j+1), idx(x, j+1)})
			// axial coordinates give a proper three-coloring
			aq := i - (j-j%2)/2
			c := ((aq-j)%3 + 3) % 3
			lt.roles = append(lt.roles, roles[c])
		}
	}
	return lt
}

// gridMapping maps planar lattice coordinates (normalized to u, v in
// [0, 1]) onto a surface, and gives an outward reference direction.
type gridMapping struct {
	pos     func(u, v float32) math32.Vector3
	outward func(c math32.Vector3) math32.Vector3
	clampV  bool
}

func gridMappings(w, h float32) map[GridShapes]gridMapping {
	r := w / (2 * math32.Pi)
	up := func(c math32.Vector3) math32.Vector3 { return math32.Vec3(0, 1, 0) }
	radial := func(c math32.Vector3) math32.Vector3 { return math32.Vec3(c.X, 0, c.Z) }
	return map[GridShapes]gridMapping{
		Plane: {
			pos:     func(u, v float32) math32.Vector3 { return math32.Vec3((u-0.5)*w, 0, (v-0.5)*h) },
			outward: up,
		},
		Cylinder: {
			pos: func(u, v float32) math32.Vector3 {
				a := 2 * math32.Pi * u
				return math32.Vec3(r*math32.Cos(a), (v-0.5)*h, r*math32.Sin(a))
			},
			outward: radial,
		},
		Cone: {
			pos: func(u, v float32) math32.Vector3 {
				a := 2 * math32.Pi * u
				rr := r * (1 - v)
				return math32.Vec3(rr*math32.Cos(a), (v-0.5)*h, rr*math32.Sin(a))
			},
			outward: radial,
			clampV:  true,
		},
		Sphere: {
			pos: func(u, v float32) math32.Vector3 {
				lon := 2 * math32.Pi * u
				lat := math32.Pi * (v - 0.5)
				return math32.Vec3(r*math32.Cos(lat)*math32.Cos(lon), r*math32.Sin(lat), r*math32.Cos(lat)*math32.Sin(lon))
			},
			outward: func(c math32.Vector3) math32.Vector3 { return c },
			clampV:  true,
		},
		Torus: {
			pos: func(u, v float32) math32.Vector3 {
				a := 2 * math32.Pi * u
				b := 2 * math32.Pi * v
				rr := r + 0.4*r*math32.Cos(b)
				return math32.Vec3(rr*math32.Cos(a), 0.4*r*math32.Sin(b), rr*math32.Sin(a))
			},
			outward: func(c math32.Vector3) math32.Vector3 {
				return c.Sub(math32.Vec3(c.X, 0, c.Z).Normal().MulScalar(r))
			},
		},
		Polar: {
			pos: func(u, v float32) math32.Vector3 {
				a := 2 * math32.Pi * u
				return math32.Vec3(r*v*math32.Cos(a), 0, r*v*math32.Sin(a))
			},
			outward: up,
			clampV:  true,
		},
	}
}

// BuildGrid builds a grid of p by q cells of the given tiling mapped
// onto the given shape. Vertices that coincide after mapping, along
// seams and at poles, are welded together.
func BuildGrid(gt GridTypes, gs GridShapes, p, q int) *polymesh.PolyMesh {
	var lt *lattice
	switch gt {
	case Square:
		lt = squareLattice(p, q, false)
	case Isometric:
		lt = squareLattice(p, q, true)
	case Hex:
		lt = hexLattice(p, q)
	default:
		panic(fmt.Sprintf("shapes: unknown grid type %d", gt))
	}
	mp, ok := gridMappings(lt.width, lt.height)[gs]
	if !ok {
		panic(fmt.Sprintf("shapes: unknown grid shape %d", gs))
	}
	verts := make([]math32.Vector3, len(lt.pts))
	for i, pt := range lt.pts {
		u, v := pt.X/lt.width, pt.Y/lt.height
		if mp.clampV {
			v = math32.Clamp(v, 0, 1)
		}
		verts[i] = mp.pos(u, v)
	}
	pm := polymesh.NewPolyMesh(verts, lt.loops, lt.roles).Weld(1e-4)
	for i := range pm.Faces {
		lp := pm.Faces[i].Vertices
		pm.OrientLoop(lp, mp.outward(pm.LoopCentroid(lp)))
	}
	return pm
}
