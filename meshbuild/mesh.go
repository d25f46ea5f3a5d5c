// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuild

import (
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

var _ shape.Mesh = (*Buffers)(nil)

// MeshSize returns the number of vertex and index points
// and whether there are per-vertex colors.
func (b *Buffers) MeshSize() (numVertex, numIndex int, hasColor bool) {
	return b.NumVertex(), len(b.Index), b.HasColor()
}

// Set copies the buffers into the given arrays, starting at the
// vertex and index offsets, with positions moved by Pos.
// Indexes are shifted by the vertex offset.
func (b *Buffers) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	vo, io := b.Offsets()
	nv := b.NumVertex()
	var p math32.Vector3
	for i := range nv {
		p.FromSlice(b.Vertex, 3*i)
		p.Add(b.Pos).ToSlice(vertex, 3*(vo+i))
	}
	copy(normal[3*vo:], b.Normal)
	copy(texcoord[2*vo:], b.TexCoord)
	if b.HasColor() {
		copy(clrs[4*vo:], b.Color)
	}
	for i, x := range b.Index {
		index[io+i] = x + uint32(vo)
	}
	b.CBBox = shape.BBoxFromVtxs(vertex, vo, nv)
}
