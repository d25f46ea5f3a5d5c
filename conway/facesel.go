// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conway

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/polymesh"
)

// FaceSelections are predicates selecting the faces an operator acts on.
// They are evaluated against the mesh as it is when the operator runs.
type FaceSelections int32 //enums:enum

const (
	// All selects every face.
	All FaceSelections = iota

	// None selects no face.
	None

	// Existing selects faces with the Existing role.
	Existing

	// New selects faces with the New role.
	New

	// NewAlt selects faces with the NewAlt role.
	NewAlt

	// AllNew selects faces with the New or NewAlt role.
	AllNew

	ThreeSided
	FourSided
	FiveSided
	SixSided
	SevenPlusSided

	// PSided selects faces with as many sides as the P of the base shape.
	PSided

	// QSided selects faces with as many sides as the Q of the base shape.
	QSided

	EvenSided
	OddSided

	// FacingUp selects faces whose normal points up.
	FacingUp

	// FacingDown selects faces whose normal points down.
	FacingDown

	// FacingLevel selects faces whose normal is horizontal.
	FacingLevel

	// TopHalf selects faces whose centroid is above the XZ plane.
	TopHalf

	// BottomHalf selects faces whose centroid is below the XZ plane.
	BottomHalf

	// Even selects faces with an even index.
	Even

	// Odd selects faces with an odd index.
	Odd

	// OnlyFirst selects the first face.
	OnlyFirst
)

// levelTol is the largest vertical normal component of a level face.
const levelTol = 0.01

type selector func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool

func sided(n int) selector {
	return func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return f.Sides() == n }
}

func withRole(roles ...polymesh.Roles) selector {
	return func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool {
		for _, r := range roles {
			if f.Role == r {
				return true
			}
		}
		return false
	}
}

var selectors = map[FaceSelections]selector{
	All:            func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return true },
	None:           func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return false },
	Existing:       withRole(polymesh.Existing),
	New:            withRole(polymesh.New),
	NewAlt:         withRole(polymesh.NewAlt),
	AllNew:         withRole(polymesh.New, polymesh.NewAlt),
	ThreeSided:     sided(3),
	FourSided:      sided(4),
	FiveSided:      sided(5),
	SixSided:       sided(6),
	SevenPlusSided: func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return f.Sides() >= 7 },
	PSided:         func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return f.Sides() == pm.Info.P },
	QSided:         func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return f.Sides() == pm.Info.Q },
	EvenSided:      func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return f.Sides()%2 == 0 },
	OddSided:       func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return f.Sides()%2 == 1 },
	FacingUp:       func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return pm.FaceNormal(i).Y > levelTol },
	FacingDown:     func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return pm.FaceNormal(i).Y < -levelTol },
	FacingLevel: func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool {
		return math32.Abs(pm.FaceNormal(i).Y) <= levelTol
	},
	TopHalf:    func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return pm.FaceCentroid(i).Y > 0 },
	BottomHalf: func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return pm.FaceCentroid(i).Y < 0 },
	Even:       func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return i%2 == 0 },
	Odd:        func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return i%2 == 1 },
	OnlyFirst:  func(pm *polymesh.PolyMesh, i int, f *polymesh.Face) bool { return i == 0 },
}

// Matches returns true if face i of the mesh is selected by fs.
// It panics on an unknown selection.
func (fs FaceSelections) Matches(pm *polymesh.PolyMesh, i int) bool {
	sel, ok := selectors[fs]
	if !ok {
		panic(fmt.Sprintf("conway: unknown face selection %d", fs))
	}
	return sel(pm, i, &pm.Faces[i])
}

// Select returns a copy of the mesh with exactly the faces
// matching fs selected.
func (fs FaceSelections) Select(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	cp := pm.Clone()
	cp.SelectFaces(func(i int, f *polymesh.Face) bool {
		return fs.Matches(pm, i)
	})
	return cp
}

// selectAll returns a copy of the mesh with every face selected.
func selectAll(pm *polymesh.PolyMesh) *polymesh.PolyMesh {
	return All.Select(pm)
}
