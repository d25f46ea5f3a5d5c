// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/openbrush/polyhydra/polymesh"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// maxGroupOrder is the order of the largest (icosahedral) reflection group.
	maxGroupOrder = 120

	// maxFaceSteps bounds the walk that builds a fundamental face.
	maxFaceSteps = 64

	// pointTol is the distance under which two points are the same vertex.
	pointTol = 1e-6
)

// Wythoff is a parsed Wythoff symbol such as "3|2 4" or "5/2|2 5".
// The numbers p, q, r give the angles pi/p, pi/q, pi/r of the Schwarz
// triangle at its corners A, B, C. The bar position selects the mirrors
// the generator point lies off.
type Wythoff struct {
	P, Q, R float64

	// Bar is the number of entries before the bar: 0 for snubs ("|p q r"),
	// 1 for "p|q r", 2 for "p q|r" and 3 for "p q r|".
	Bar int
}

// ParseWythoff parses a Wythoff symbol. Entries may be fractions like 5/2.
func ParseWythoff(s string) (Wythoff, error) {
	before, after, ok := strings.Cut(s, "|")
	if !ok {
		return Wythoff{}, fmt.Errorf("shapes: Wythoff symbol %q has no bar", s)
	}
	bf := strings.Fields(before)
	nums := append(bf, strings.Fields(after)...)
	if len(nums) != 3 {
		return Wythoff{}, fmt.Errorf("shapes: Wythoff symbol %q must have 3 entries", s)
	}
	var vals [3]float64
	for i, n := range nums {
		num, den, frac := strings.Cut(n, "/")
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Wythoff{}, fmt.Errorf("shapes: Wythoff symbol %q: %w", s, err)
		}
		if frac {
			d, err := strconv.ParseFloat(den, 64)
			if err != nil {
				return Wythoff{}, fmt.Errorf("shapes: Wythoff symbol %q: %w", s, err)
			}
			v /= d
		}
		if v <= 1 {
			return Wythoff{}, fmt.Errorf("shapes: Wythoff symbol %q: entry %s must be > 1", s, n)
		}
		vals[i] = v
	}
	return Wythoff{P: vals[0], Q: vals[1], R: vals[2], Bar: len(bf)}, nil
}

// mustWythoff is ParseWythoff for the built-in tables.
func mustWythoff(s string) Wythoff {
	w, err := ParseWythoff(s)
	if err != nil {
		panic(err)
	}
	return w
}

// mat3 is a 3x3 matrix stored as the images of the basis vectors.
type mat3 [3]r3.Vec

func identity3() mat3 {
	return mat3{{X: 1}, {Y: 1}, {Z: 1}}
}

func (m mat3) apply(v r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, m[0]), r3.Scale(v.Y, m[1])), r3.Scale(v.Z, m[2]))
}

// mul returns m * o, which applies o first.
func (m mat3) mul(o mat3) mat3 {
	return mat3{m.apply(o[0]), m.apply(o[1]), m.apply(o[2])}
}

func (m mat3) near(o mat3) bool {
	for i := range m {
		if !nearVec(m[i], o[i]) {
			return false
		}
	}
	return true
}

func nearVec(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < pointTol
}

// reflect reflects v in the plane through the origin with unit normal n.
func reflect(v, n r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(2*r3.Dot(v, n), n))
}

func reflection(n r3.Vec) mat3 {
	var m mat3
	for i, e := range identity3() {
		m[i] = reflect(e, n)
	}
	return m
}

// closure returns all products of the generators, starting from the identity.
func closure(gens ...mat3) []mat3 {
	group := []mat3{identity3()}
	for i := 0; i < len(group); i++ {
		for _, g := range gens {
			m := g.mul(group[i])
			if slices.ContainsFunc(group, m.near) {
				continue
			}
			group = append(group, m)
			if len(group) > maxGroupOrder {
				panic("shapes: reflection group is not a finite polyhedral group")
			}
		}
	}
	return group
}

// normals returns the unit normals of the mirrors opposite A, B and C,
// each pointing into the triangle.
func (w Wythoff) normals() [3]r3.Vec {
	ap, aq, ar := math.Pi/w.P, math.Pi/w.Q, math.Pi/w.R
	na := r3.Vec{X: 1}
	nb := r3.Vec{X: -math.Cos(ar), Y: math.Sin(ar)}
	x := -math.Cos(aq)
	y := (-math.Cos(ap) - math.Cos(ar)*math.Cos(aq)) / math.Sin(ar)
	z := math.Sqrt(max(0, 1-x*x-y*y))
	return [3]r3.Vec{na, nb, {X: x, Y: y, Z: z}}
}

// corners returns the unit directions of the triangle corners A, B, C.
func corners(ns [3]r3.Vec) [3]r3.Vec {
	var cs [3]r3.Vec
	for i := range cs {
		c := r3.Unit(r3.Cross(ns[(i+1)%3], ns[(i+2)%3]))
		if r3.Dot(c, ns[i]) < 0 {
			c = r3.Scale(-1, c)
		}
		cs[i] = c
	}
	return cs
}

// generator returns the unit point that lies on the unringed mirrors
// and at equal distance from the ringed ones.
func (w Wythoff) generator(ns [3]r3.Vec) r3.Vec {
	var g r3.Vec
	for i := range w.Bar {
		g = r3.Add(g, r3.Cross(ns[(i+1)%3], ns[(i+2)%3]))
	}
	det := r3.Dot(ns[0], r3.Cross(ns[1], ns[2]))
	return r3.Unit(r3.Scale(1/det, g))
}

// faceAround returns the distinct points of the face centered on the
// common corner of mirrors mi and mj, in cyclic order: g, Sj g, Sj Si g,
// Sj Si Sj g and so on, where Si and Sj are the reflections. It returns
// fewer than 3 points when there is no such face.
func faceAround(g, mi, mj r3.Vec) []r3.Vec {
	pts := []r3.Vec{g}
	refl := [2]mat3{reflection(mj), reflection(mi)}
	word := identity3()
	for step := range maxFaceSteps {
		word = word.mul(refl[step%2])
		p := word.apply(g)
		if nearVec(p, pts[len(pts)-1]) {
			continue
		}
		if nearVec(p, pts[0]) {
			break
		}
		pts = append(pts, p)
	}
	return pts
}

// vertexIndex returns the index of p in verts, appending it if needed.
func vertexIndex(verts *[]r3.Vec, p r3.Vec) int {
	for i, v := range *verts {
		if nearVec(v, p) {
			return i
		}
	}
	*verts = append(*verts, p)
	return len(*verts) - 1
}

func loopKey(loop []int) string {
	s := slices.Clone(loop)
	slices.Sort(s)
	return fmt.Sprint(s)
}

// kindRoles are the roles given to successive kinds of faces.
var kindRoles = []polymesh.Roles{polymesh.Existing, polymesh.New, polymesh.NewAlt}

// BuildWythoff builds the uniform polyhedron of the Wythoff symbol,
// with unit circumradius. Each kind of face, taken around the corners
// A, B, C in order, gets its own role.
func BuildWythoff(w Wythoff) *polymesh.PolyMesh {
	if w.Bar == 0 {
		return buildSnub(w)
	}
	ns := w.normals()
	group := closure(reflection(ns[0]), reflection(ns[1]), reflection(ns[2]))
	g := w.generator(ns)

	var verts []r3.Vec
	var loops [][]int
	var roles []polymesh.Roles
	seen := make(map[string]bool)
	kind := 0
	// mirrors through corners A, B and C
	pairs := [3][2]int{{1, 2}, {2, 0}, {0, 1}}
	for _, pr := range pairs {
		fund := faceAround(g, ns[pr[0]], ns[pr[1]])
		if len(fund) < 3 {
			continue
		}
		role := kindRoles[kind]
		kind++
		for _, m := range group {
			loop := make([]int, len(fund))
			for i, p := range fund {
				loop[i] = vertexIndex(&verts, m.apply(p))
			}
			key := loopKey(loop)
			if seen[key] {
				continue
			}
			seen[key] = true
			loops = append(loops, loop)
			roles = append(roles, role)
		}
	}
	pm := toMesh(verts, loops, roles)
	pm.OrientOutward()
	return pm
}

// buildSnub builds a snub polyhedron: the orbit of a generator under the
// rotation subgroup, chosen so that the three kinds of edges are equal.
func buildSnub(w Wythoff) *polymesh.PolyMesh {
	ns := w.normals()
	ra, rb, rc := reflection(ns[0]), reflection(ns[1]), reflection(ns[2])
	rots := [3]mat3{rb.mul(rc), rc.mul(ra), ra.mul(rb)}
	cs := corners(ns)
	gen := func(x []float64) r3.Vec {
		return r3.Unit(r3.Add(r3.Add(r3.Scale(x[0], cs[0]), r3.Scale(x[1], cs[1])), cs[2]))
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			g := gen(x)
			var l [3]float64
			for i, rot := range rots {
				l[i] = r3.Norm(r3.Sub(g, rot.apply(g)))
			}
			return (l[0]-l[1])*(l[0]-l[1]) + (l[1]-l[2])*(l[1]-l[2]) + (l[0]-l[2])*(l[0]-l[2])
		},
	}
	x := []float64{1, 1}
	res, err := optimize.Minimize(problem, x, nil, &optimize.NelderMead{})
	if err != nil {
		slog.Warn("shapes: snub generator search did not converge", "err", err)
	}
	if res != nil {
		x = res.X
	}
	g := gen(x)
	var pts []r3.Vec
	for _, m := range closure(rots[0], rots[1]) {
		vertexIndex(&pts, m.apply(g))
	}
	pm := HullMesh(pts)
	roleBySides(pm, func(sides int) polymesh.Roles {
		if sides == 3 {
			return polymesh.New
		}
		return polymesh.Existing
	})
	return pm
}

// roleBySides sets the role of every face from its side count.
func roleBySides(pm *polymesh.PolyMesh, fun func(sides int) polymesh.Roles) {
	for i := range pm.Faces {
		pm.Faces[i].Role = fun(pm.Faces[i].Sides())
	}
}
