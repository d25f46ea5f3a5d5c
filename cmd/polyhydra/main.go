// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command polyhydra builds polyhedra from the command line and
// prints a summary of the result.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/enums"
	"github.com/openbrush/polyhydra"
	"github.com/openbrush/polyhydra/coloring"
	"github.com/openbrush/polyhydra/conway"
	"github.com/openbrush/polyhydra/shapes"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration for the polyhydra command.
// A TOML config file can be given with the -config flag.
type Config struct {
	polyhydra.Config

	// Ops are operator names appended to the operator list,
	// each with its default amounts.
	Ops []string `flag:"ops"`

	// Output, if set, is a TOML file the validated config is saved to.
	Output string `flag:"o,output"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("polyhydra", "Polyhydra builds polyhedra from base shapes and Conway operators.")
	cli.Run(opts, &Config{}, Build, List)
}

// Build builds the configured polyhedron and prints a summary of it.
func Build(c *Config) error { //cli:cmd -root
	pc, err := c.polyhedron()
	if err != nil {
		return err
	}
	pm := polyhydra.BuildPolyMesh(pc)
	b, _ := polyhydra.BuildBuffers(pc, pm)
	slog.Info("built polyhedron", "shape", pc.ShapeType, "operators", len(pc.Operators))
	fmt.Printf("vertices:  %d\n", pm.NumVertices())
	fmt.Printf("faces:     %d\n", pm.NumFaces())
	fmt.Printf("edges:     %d\n", pm.NumEdges())
	fmt.Printf("triangles: %d\n", b.NumTriangles())
	fmt.Printf("submeshes: %d\n", len(b.Submeshes))
	if c.Output == "" {
		return nil
	}
	data, err := polyhydra.MarshalConfig(pc)
	if err != nil {
		return err
	}
	return errors.Log(os.WriteFile(c.Output, data, 0666))
}

// List prints the available shapes, operators, face selections,
// coloring methods and color maps.
func List(c *Config) error {
	list("shape types", shapes.ShapeTypesN.Values())
	list("uniform types", shapes.UniformTypesN.Values())
	list("johnson types", shapes.JohnsonTypesN.Values())
	list("grid types", shapes.GridTypesN.Values())
	list("grid shapes", shapes.GridShapesN.Values())
	list("other types", shapes.OtherTypesN.Values())
	list("operators", conway.OpsN.Values())
	list("face selections", conway.FaceSelectionsN.Values())
	list("color methods", coloring.MethodsN.Values())
	fmt.Printf("color maps: %s\n", strings.Join(colormap.AvailableMapsList(), ", "))
	return nil
}

func list(name string, vals []enums.Enum) {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.String()
	}
	fmt.Printf("%s: %s\n", name, strings.Join(strs, ", "))
}

// polyhedron returns the polyhedron config with the named
// operators appended and the main color defaulted to white.
func (c *Config) polyhedron() (polyhydra.Config, error) {
	pc := c.Config
	if pc.MainColor == (color.RGBA{}) {
		pc.MainColor = colors.White
	}
	pc.Operators = append([]conway.Operator(nil), pc.Operators...)
	for _, name := range c.Ops {
		var op conway.Ops
		if err := op.SetString(name); err != nil {
			return pc, fmt.Errorf("polyhydra: %w", err)
		}
		pc.Operators = append(pc.Operators, conway.NewOperator(op))
	}
	return polyhydra.ValidateConfig(pc), nil
}
