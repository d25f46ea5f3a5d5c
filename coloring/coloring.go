// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coloring assigns a color to every face of a mesh
// from a small palette.
package coloring

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
)

//go:generate core generate

// Methods are the ways of choosing the palette entry of a face.
type Methods int32 //enums:enum

const (
	// ByRole colors faces by their role.
	ByRole Methods = iota

	// BySides colors faces by their number of sides.
	BySides

	// ByFaceDirection colors faces by the axis their normal is closest to.
	ByFaceDirection

	// ByIndex colors faces by their position in the mesh.
	ByIndex

	// ByArea colors faces by the rank of their area among
	// the distinct face areas of the mesh.
	ByArea
)

// areaPrecision is the number of area steps per unit area
// below which faces share an area rank.
const areaPrecision = 1000

// Assigner assigns palette colors to faces.
type Assigner struct {
	Method  Methods
	Palette Palette
}

// NewAssigner returns an assigner using the method and palette.
func NewAssigner(method Methods, palette Palette) *Assigner {
	return &Assigner{Method: method, Palette: palette}
}

// FaceColor returns the color of face i of the mesh.
func (a *Assigner) FaceColor(pm *polymesh.PolyMesh, i int) color.RGBA {
	if a.Method == ByArea {
		return a.Palette.Color(areaRank(areaRanks(pm), pm, i))
	}
	return a.Palette.Color(a.index(pm, i))
}

// FaceColors returns the colors of all the faces of the mesh.
func (a *Assigner) FaceColors(pm *polymesh.PolyMesh) []color.RGBA {
	cs := make([]color.RGBA, len(pm.Faces))
	var ranks []int64
	if a.Method == ByArea {
		ranks = areaRanks(pm)
	}
	for i := range pm.Faces {
		if a.Method == ByArea {
			cs[i] = a.Palette.Color(areaRank(ranks, pm, i))
			continue
		}
		cs[i] = a.Palette.Color(a.index(pm, i))
	}
	return cs
}

// index returns the palette index of face i for every method but [ByArea].
// It panics on an unknown method.
func (a *Assigner) index(pm *polymesh.PolyMesh, i int) int {
	f := &pm.Faces[i]
	switch a.Method {
	case ByRole:
		return int(f.Role)
	case BySides:
		return max(f.Sides()-3, 0)
	case ByFaceDirection:
		return direction(pm.FaceNormal(i))
	case ByIndex:
		return i
	}
	panic(fmt.Sprintf("coloring: unknown method %d", a.Method))
}

// direction returns 0 to 5 for the +X, -X, +Y, -Y, +Z and -Z axes,
// whichever the normal is closest to.
func direction(n math32.Vector3) int {
	ax, ay, az := math32.Abs(n.X), math32.Abs(n.Y), math32.Abs(n.Z)
	axis, comp := 0, n.X
	switch {
	case ay >= ax && ay >= az:
		axis, comp = 1, n.Y
	case az >= ax && az >= ay:
		axis, comp = 2, n.Z
	}
	if comp < 0 {
		return 2*axis + 1
	}
	return 2 * axis
}

func quantizedArea(pm *polymesh.PolyMesh, i int) int64 {
	return int64(math32.Round(pm.FaceArea(i) * areaPrecision))
}

// areaRanks returns the sorted distinct quantized face areas.
func areaRanks(pm *polymesh.PolyMesh) []int64 {
	as := make([]int64, len(pm.Faces))
	for i := range pm.Faces {
		as[i] = quantizedArea(pm, i)
	}
	slices.Sort(as)
	return slices.Compact(as)
}

func areaRank(ranks []int64, pm *polymesh.PolyMesh, i int) int {
	r, _ := slices.BinarySearch(ranks, quantizedArea(pm, i))
	return r
}
