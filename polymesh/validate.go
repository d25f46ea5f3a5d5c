// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polymesh

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrMissingVertex is returned when a face references a vertex that does not exist.
	ErrMissingVertex = errors.New("polymesh: face references a missing vertex")

	// ErrShortFace is returned when a face has fewer than three vertices.
	ErrShortFace = errors.New("polymesh: face has fewer than 3 vertices")

	// ErrRepeatedVertex is returned when a face references the same vertex twice.
	ErrRepeatedVertex = errors.New("polymesh: face references a vertex twice")
)

// Validate checks the structural invariants of the mesh: every face has
// at least three vertices, all of which exist and are distinct.
// All violations are joined into the returned error.
func (pm *PolyMesh) Validate() error {
	var errs []error
	nv := len(pm.Vertices)
	for fi := range pm.Faces {
		lp := pm.Faces[fi].Vertices
		if len(lp) < 3 {
			errs = append(errs, fmt.Errorf("face %d: %w", fi, ErrShortFace))
		}
		seen := make(map[int]bool, len(lp))
		for _, v := range lp {
			if v < 0 || v >= nv {
				errs = append(errs, fmt.Errorf("face %d: vertex %d: %w", fi, v, ErrMissingVertex))
				continue
			}
			if seen[v] {
				errs = append(errs, fmt.Errorf("face %d: vertex %d: %w", fi, v, ErrRepeatedVertex))
			}
			seen[v] = true
		}
	}
	return errors.Join(errs...)
}
