// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyhydra builds polyhedra: a base shape from one of the
// shape families, transformed by a list of Conway operators, colored
// per face and converted to triangle buffers ready for rendering.
package polyhydra

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/coloring"
	"github.com/openbrush/polyhydra/conway"
	"github.com/openbrush/polyhydra/meshbuild"
	"github.com/openbrush/polyhydra/polymesh"
	"github.com/openbrush/polyhydra/shapes"
)

// BuildPolyMesh returns the polygon mesh for the config: the base
// shape with the operators applied. The config is validated first.
func BuildPolyMesh(c Config) *polymesh.PolyMesh {
	c = ValidateConfig(c)
	base := shapes.Build(c.ShapeParams())
	e := &conway.Engine{Seed: c.Seed}
	return e.Apply(base, c.Operators)
}

// BuildPolyhedron builds the polyhedron for the config and returns its
// triangle buffers and the color of each face. The config is validated
// first. Unless rescaling fails, which is logged, the result is scaled
// to a largest dimension of 2 when [Config.Rescale] is set.
func BuildPolyhedron(c Config) (*meshbuild.Buffers, []color.RGBA) {
	return BuildBuffers(c, BuildPolyMesh(c))
}

// BuildBuffers colors the given mesh, which must have been built from
// the config, and returns its triangle buffers and face colors, as
// [BuildPolyhedron] does. It lets callers that also need the mesh build
// it only once.
func BuildBuffers(c Config, pm *polymesh.PolyMesh) (*meshbuild.Buffers, []color.RGBA) {
	c = ValidateConfig(c)
	cs := coloring.NewAssigner(colorMethod(&c), coloring.NewPalette(c.PaletteOptions())).FaceColors(pm)
	b := meshbuild.Build(pm, cs, meshbuild.Options{Flat: c.FlatShading, Submeshes: c.GenerateSubmeshes})
	if c.Rescale {
		rescale(b)
	}
	return b, cs
}

// colorMethod returns the coloring method for the config. Waterman
// faces have no meaningful roles, so they are colored by direction.
func colorMethod(c *Config) coloring.Methods {
	if c.ShapeType == shapes.Waterman && c.ColorMethod == coloring.ByRole {
		return coloring.ByFaceDirection
	}
	return c.ColorMethod
}

// rescale scales the buffers to a largest dimension of 2.
func rescale(b *meshbuild.Buffers) {
	dim := b.MaxDimension()
	scale := 2 / dim
	if math32.IsNaN(scale) || math32.IsInf(scale, 0) || scale <= 0 {
		slog.Error("Failed to rescale", "maxDimension", dim)
		return
	}
	b.Scale(scale)
}
