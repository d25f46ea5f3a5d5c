// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conway

import (
	"fmt"
	"log/slog"

	"cogentcore.org/lab/base/randx"
	"github.com/openbrush/polyhydra/polymesh"
)

// Engine applies operator lists to meshes.
// An Engine holds no state between calls to [Engine.Apply],
// so separate engines may run concurrently.
type Engine struct {

	// Seed seeds the random source for randomized amounts.
	// Zero uses the global random source.
	Seed int64

	// Check validates the mesh after every operator and
	// logs any structural error.
	Check bool
}

// run is the state of one [Engine.Apply] call.
type run struct {
	rand  randx.Rand
	stash *polymesh.PolyMesh
}

// amounts returns the two amounts of the operator for this run.
func (r *run) amounts(o Operator) (a, b Amount) {
	if !o.Randomize {
		return Fixed(o.Amount), Fixed(o.Amount2)
	}
	return Random(o.Amount, r.rand), Random(o.Amount2, r.rand)
}

// opFuncs applies each operator to a mesh whose selected faces are
// the ones it acts on.
var opFuncs = map[Ops]func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh{
	Dual:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return dual(pm) },
	Kis:        func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return kis(pm, a) },
	Ambo:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return ambo(pm) },
	Zip:        func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return zip(pm, a) },
	Expand:     func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return expand(pm, a) },
	Bevel:      func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return bevel(pm, a) },
	Join:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return join(pm) },
	Needle:     func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return needle(pm, a) },
	Ortho:      func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return ortho(pm) },
	Meta:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return meta(pm, a) },
	Truncate:   func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return truncate(pm, a) },
	Chamfer:    func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return chamfer(pm, a) },
	Gyro:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return gyro(pm, a) },
	Snub:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return snub(pm, a) },
	Subdivide:  func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return subdivide(pm) },
	Inset:      func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return inset(pm, a, b) },
	Extrude:    func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return extrude(pm, a) },
	FaceRemove: func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return faceRemove(pm) },
	FaceKeep:   func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return faceKeep(pm) },
	Spherize:   func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return spherize(pm, a) },
	Recenter:   func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return pm.Recenter() },
	SitLevel:   func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return pm.SitLevel() },
	Weld:       func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh { return pm.Weld(a()) },
	Stash: func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh {
		r.stash = faceKeep(pm)
		return pm
	},
	Unstash: func(r *run, pm *polymesh.PolyMesh, a, b Amount) *polymesh.PolyMesh {
		if r.stash == nil {
			return pm
		}
		return pm.Append(r.stash)
	},
}

// Apply runs the operators in order on the mesh and returns the result.
// Disabled operators and [Identity] are skipped. An operator whose face
// selection is empty, or that is given an empty mesh, is a no-op.
// The base shape info of the input is kept on every intermediate mesh.
// The input mesh is never modified. Apply panics on an unknown operator.
func (e *Engine) Apply(pm *polymesh.PolyMesh, ops []Operator) *polymesh.PolyMesh {
	r := &run{rand: e.newRand()}
	info := pm.Info
	cur := pm
	for i, op := range ops {
		if op.Disabled || op.Op == Identity {
			continue
		}
		fn, ok := opFuncs[op.Op]
		if !ok {
			panic(fmt.Sprintf("conway: unknown operator %d", op.Op))
		}
		if cur.IsEmpty() {
			continue
		}
		sel := op.Faces.Select(cur)
		if sel.NumSelected() == 0 {
			continue
		}
		a, b := r.amounts(op)
		next := fn(r, sel, a, b)
		next.Info = info
		next.ClearSelection()
		cur = next
		if e.Check {
			if err := cur.Validate(); err != nil {
				slog.Error("conway: invalid mesh after operator", "index", i, "op", op.Op, "err", err)
			}
		}
	}
	if cur == pm {
		return pm.Clone()
	}
	return cur
}

func (e *Engine) newRand() randx.Rand {
	if e.Seed == 0 {
		return randx.NewGlobalRand()
	}
	return randx.NewSysRand(e.Seed)
}
