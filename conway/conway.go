// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conway applies Conway operators to polygon meshes.
// Each operator maps a [polymesh.PolyMesh] to a new one and never
// modifies its input. The [Engine] runs an ordered list of [Operator]
// values, each scoped to a face selection.
package conway

import (
	"fmt"

	"cogentcore.org/core/math32"
)

//go:generate core generate

// Ops are the Conway operators and related mesh edits.
type Ops int32 //enums:enum

const (
	// Identity leaves the mesh unchanged.
	Identity Ops = iota

	// Dual swaps faces and vertices.
	Dual

	// Kis raises a pyramid on each selected face.
	Kis

	// Ambo cuts every vertex down to the edge midpoints.
	Ambo

	// Zip is the dual of kis.
	Zip

	// Expand pulls the faces apart, filling edges with quads
	// and vertices with new faces.
	Expand

	// Bevel truncates the ambo of the mesh.
	Bevel

	// Join is the dual of ambo.
	Join

	// Needle is kis applied to the dual.
	Needle

	// Ortho is join applied twice.
	Ortho

	// Meta is kis applied to the join.
	Meta

	// Truncate cuts the vertices of the selected faces.
	Truncate

	// Chamfer shrinks the faces and replaces edges with hexagons.
	Chamfer

	// Gyro splits every face into pentagons around its center.
	Gyro

	// Snub is the dual of gyro.
	Snub

	// Subdivide splits each selected face into quads.
	Subdivide

	// Inset inserts a smaller copy of each selected face,
	// optionally raised by the second amount.
	Inset

	// Extrude raises each selected face along its normal.
	Extrude

	// FaceRemove removes the selected faces.
	FaceRemove

	// FaceKeep removes the faces that are not selected.
	FaceKeep

	// Spherize moves the vertices of the selected faces toward a sphere.
	Spherize

	// Recenter moves the centroid of the mesh to the origin.
	Recenter

	// SitLevel rotates the mesh so a face lies flat facing down.
	SitLevel

	// Weld merges vertices closer than the amount.
	Weld

	// Stash saves a copy of the selected faces.
	Stash

	// Unstash adds the stashed faces back into the mesh.
	Unstash
)

// OpConfig describes the amounts an operator takes: whether it uses
// them, their defaults, and the normal and safe ranges they are clamped to.
type OpConfig struct {
	UsesAmount    bool
	AmountDefault float32
	AmountMin     float32
	AmountMax     float32
	AmountSafeMin float32
	AmountSafeMax float32

	UsesAmount2    bool
	Amount2Default float32
	Amount2Min     float32
	Amount2Max     float32
	Amount2SafeMin float32
	Amount2SafeMax float32
}

// opConfigs holds the amount configuration of every operator.
var opConfigs = map[Ops]OpConfig{
	Identity:   {},
	Dual:       {},
	Kis:        {UsesAmount: true, AmountDefault: 0.1, AmountMin: -6, AmountMax: 6, AmountSafeMin: -0.5, AmountSafeMax: 1},
	Ambo:       {},
	Zip:        {UsesAmount: true, AmountDefault: 0, AmountMin: -2, AmountMax: 2, AmountSafeMin: 0, AmountSafeMax: 0.5},
	Expand:     {UsesAmount: true, AmountDefault: 0.5, AmountMin: -4, AmountMax: 4, AmountSafeMin: 0, AmountSafeMax: 1},
	Bevel:      {UsesAmount: true, AmountDefault: 0.3, AmountMin: 0, AmountMax: 1, AmountSafeMin: 0.001, AmountSafeMax: 0.499},
	Join:       {},
	Needle:     {UsesAmount: true, AmountDefault: 0, AmountMin: -2, AmountMax: 2, AmountSafeMin: -0.5, AmountSafeMax: 0.5},
	Ortho:      {},
	Meta:       {UsesAmount: true, AmountDefault: 0, AmountMin: -2, AmountMax: 2, AmountSafeMin: -0.5, AmountSafeMax: 0.5},
	Truncate:   {UsesAmount: true, AmountDefault: 0.3, AmountMin: 0, AmountMax: 1, AmountSafeMin: 0.001, AmountSafeMax: 0.499},
	Chamfer:    {UsesAmount: true, AmountDefault: 0.5, AmountMin: -1, AmountMax: 2, AmountSafeMin: 0.001, AmountSafeMax: 0.999},
	Gyro:       {UsesAmount: true, AmountDefault: 0.33, AmountMin: -1, AmountMax: 1, AmountSafeMin: 0.001, AmountSafeMax: 0.499},
	Snub:       {UsesAmount: true, AmountDefault: 0.33, AmountMin: -1, AmountMax: 1, AmountSafeMin: 0.001, AmountSafeMax: 0.499},
	Subdivide:  {},
	Inset:      {UsesAmount: true, AmountDefault: 0.3, AmountMin: -1, AmountMax: 2, AmountSafeMin: 0.001, AmountSafeMax: 0.999, UsesAmount2: true, Amount2Default: 0, Amount2Min: -2, Amount2Max: 2, Amount2SafeMin: -0.5, Amount2SafeMax: 0.5},
	Extrude:    {UsesAmount: true, AmountDefault: 0.1, AmountMin: -4, AmountMax: 4, AmountSafeMin: -0.5, AmountSafeMax: 0.5},
	FaceRemove: {},
	FaceKeep:   {},
	Spherize:   {UsesAmount: true, AmountDefault: 0.5, AmountMin: -2, AmountMax: 2, AmountSafeMin: 0, AmountSafeMax: 1},
	Recenter:   {},
	SitLevel:   {},
	Weld:       {UsesAmount: true, AmountDefault: 0.001, AmountMin: 0, AmountMax: 1, AmountSafeMin: 0, AmountSafeMax: 0.1},
	Stash:      {},
	Unstash:    {},
}

// Config returns the amount configuration of the operator.
// It panics on an unknown operator.
func (op Ops) Config() OpConfig {
	cfg, ok := opConfigs[op]
	if !ok {
		panic(fmt.Sprintf("conway: unknown operator %d", op))
	}
	return cfg
}

// Operator is one step of an operator list. It is a plain value:
// editing an operator means building a new one.
type Operator struct {

	// Op is the operator to apply.
	Op Ops

	// Faces selects the faces the operator acts on.
	Faces FaceSelections

	// Amount is the main amount of the operator, if it uses one.
	Amount float32

	// Amount2 is the second amount of the operator, if it uses one.
	Amount2 float32

	// Randomize scales the amount by a random factor in [0, 1)
	// for each face or vertex.
	Randomize bool

	// Disabled operators are skipped.
	Disabled bool
}

// NewOperator returns an operator acting on all faces with default amounts.
func NewOperator(op Ops) Operator {
	cfg := op.Config()
	return Operator{Op: op, Faces: All, Amount: cfg.AmountDefault, Amount2: cfg.Amount2Default}
}

// Validate returns the operator with its amounts rounded to three
// decimals and clamped to the safe or normal range of the operator.
// Amounts the operator does not use are set to zero. It is idempotent.
func (o Operator) Validate(safe bool) Operator {
	cfg := o.Op.Config()
	if cfg.UsesAmount {
		lo, hi := cfg.AmountMin, cfg.AmountMax
		if safe {
			lo, hi = cfg.AmountSafeMin, cfg.AmountSafeMax
		}
		o.Amount = math32.Clamp(round3(o.Amount), lo, hi)
	} else {
		o.Amount = 0
	}
	if cfg.UsesAmount2 {
		lo, hi := cfg.Amount2Min, cfg.Amount2Max
		if safe {
			lo, hi = cfg.Amount2SafeMin, cfg.Amount2SafeMax
		}
		o.Amount2 = math32.Clamp(round3(o.Amount2), lo, hi)
	} else {
		o.Amount2 = 0
	}
	return o
}

func round3(x float32) float32 {
	return math32.Round(x*1000) / 1000
}
