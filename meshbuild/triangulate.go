// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuild

import (
	"cogentcore.org/core/math32"
)

// convexTol is the smallest sine of the turn angle
// that counts as a convex corner.
const convexTol = 1e-6

// Triangulate splits the polygon with the given points and normal into
// triangles, returned as indexes into pts with the same winding as the
// polygon. Convex polygons are split as a fan. Others are split by ear
// clipping on the polygon plane, falling back to a fan for whatever is
// left when no ear can be found.
func Triangulate(pts []math32.Vector3, normal math32.Vector3) [][3]int {
	n := len(pts)
	if n < 3 {
		return nil
	}
	if n == 3 || IsConvex(pts, normal) {
		return fan(identity(n))
	}
	return earClip(pts, normal)
}

// IsConvex returns whether no corner of the polygon turns against
// the normal. Straight corners are allowed.
func IsConvex(pts []math32.Vector3, normal math32.Vector3) bool {
	n := len(pts)
	for i := range pts {
		if turn(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], normal) < -convexTol {
			return false
		}
	}
	return true
}

// turn returns the sine of the angle the path a, b, c turns
// counter-clockwise around the normal.
func turn(a, b, c, normal math32.Vector3) float32 {
	ab := b.Sub(a)
	bc := c.Sub(b)
	l := ab.Length() * bc.Length()
	if l == 0 {
		return 0
	}
	return ab.Cross(bc).Dot(normal) / l
}

func convexCorner(a, b, c, normal math32.Vector3) bool {
	return turn(a, b, c, normal) > convexTol
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func fan(idx []int) [][3]int {
	tris := make([][3]int, 0, len(idx)-2)
	for i := 1; i+1 < len(idx); i++ {
		tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
	}
	return tris
}

func earClip(pts []math32.Vector3, normal math32.Vector3) [][3]int {
	rem := identity(len(pts))
	tris := make([][3]int, 0, len(pts)-2)
	for len(rem) > 3 {
		ear := -1
		n := len(rem)
		for i := range rem {
			a, b, c := rem[(i+n-1)%n], rem[i], rem[(i+1)%n]
			if !convexCorner(pts[a], pts[b], pts[c], normal) {
				continue
			}
			if anyInside(pts, rem, a, b, c) {
				continue
			}
			ear = i
			tris = append(tris, [3]int{a, b, c})
			break
		}
		if ear < 0 {
			return append(tris, fan(rem)...)
		}
		rem = append(rem[:ear], rem[ear+1:]...)
	}
	return append(tris, [3]int{rem[0], rem[1], rem[2]})
}

// anyInside returns whether a remaining point other than the
// triangle corners lies inside triangle a, b, c.
func anyInside(pts []math32.Vector3, rem []int, a, b, c int) bool {
	for _, p := range rem {
		if p == a || p == b || p == c {
			continue
		}
		if pts[p] == pts[a] || pts[p] == pts[b] || pts[p] == pts[c] {
			continue
		}
		if math32.ContainsPoint(pts[p], pts[a], pts[b], pts[c]) {
			return true
		}
	}
	return false
}
