// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhydra

import (
	"fmt"
	"image/color"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/enums"
	"cogentcore.org/core/math32"
	"github.com/openbrush/polyhydra/coloring"
	"github.com/openbrush/polyhydra/conway"
	"github.com/openbrush/polyhydra/shapes"
	"github.com/pelletier/go-toml/v2"
)

// Config is everything needed to build a polyhedron.
type Config struct {

	// ShapeType is the family of the base shape.
	ShapeType shapes.ShapeTypes `default:"Uniform"`

	// UniformType is the base shape for the Uniform family.
	UniformType shapes.UniformTypes `default:"Cube"`

	// JohnsonType is the base shape for the Johnson family.
	JohnsonType shapes.JohnsonTypes `default:"Pyramid"`

	// GridType is the tiling for the Grid family.
	GridType shapes.GridTypes `default:"Square"`

	// GridShape is the surface for the Grid family.
	GridShape shapes.GridShapes `default:"Plane"`

	// OtherType is the base shape for the Other family.
	OtherType shapes.OtherTypes `default:"Polygon"`

	// P is the first shape parameter, usually a side count.
	P int `default:"5"`

	// Q is the second shape parameter.
	Q int `default:"2"`

	// Operators are applied in order to the base shape.
	Operators []conway.Operator

	// CustomColors replace the gradient palette when more than one is given.
	CustomColors []color.RGBA

	// ColorMap is the name of the gradient color map.
	ColorMap string `default:"ColdHot"`

	// GradientStops, if given, are used as the gradient instead of ColorMap.
	GradientStops []color.RGBA

	// ColorRange is the span of the gradient covered by eight palette entries.
	ColorRange float32 `default:"0.5"`

	// ColorOffset is where on the gradient the palette starts.
	ColorOffset float32 `default:"0"`

	// MainColor is the color every palette entry is blended toward.
	MainColor color.RGBA

	// ColorBlend is the share of the palette color in each face color.
	ColorBlend float32 `default:"0.5" min:"0" max:"1"`

	// ColorMethod chooses the palette entry of each face.
	ColorMethod coloring.Methods `default:"ByRole"`

	// SafeLimits restricts operator amounts to ranges that
	// avoid self-intersection.
	SafeLimits bool `default:"true"`

	// GenerateSubmeshes groups the triangles by face role.
	GenerateSubmeshes bool

	// FlatShading gives every face its own vertices, normal and color.
	FlatShading bool `default:"true"`

	// Rescale scales the result to a largest dimension of 2.
	Rescale bool `default:"true"`

	// Seed seeds randomized operator amounts; 0 uses the global source.
	Seed int64
}

// DefaultConfig returns the config with all defaults set.
func DefaultConfig() Config {
	c := Config{}
	errors.Log(reflectx.SetFromDefaultTags(&c))
	c.MainColor = colors.White
	return c
}

// ShapeParams returns the base shape parameters of the config.
func (c *Config) ShapeParams() shapes.Params {
	return shapes.Params{
		ShapeType:   c.ShapeType,
		UniformType: c.UniformType,
		JohnsonType: c.JohnsonType,
		GridType:    c.GridType,
		GridShape:   c.GridShape,
		OtherType:   c.OtherType,
		P:           c.P,
		Q:           c.Q,
	}
}

// PaletteOptions returns the palette options of the config.
func (c *Config) PaletteOptions() coloring.PaletteOptions {
	return coloring.PaletteOptions{
		CustomColors:  c.CustomColors,
		ColorMap:      c.ColorMap,
		GradientStops: c.GradientStops,
		ColorRange:    c.ColorRange,
		ColorOffset:   c.ColorOffset,
		MainColor:     c.MainColor,
		ColorBlend:    c.ColorBlend,
	}
}

// ValidateConfig returns the config with P and Q clamped into the domain
// of the shape family, operator amounts rounded and clamped into their
// safe or normal ranges, and the color blend clamped to [0, 1].
// It is idempotent, and the input is not modified.
func ValidateConfig(c Config) Config {
	p := shapes.Validate(c.ShapeParams())
	c.P, c.Q = p.P, p.Q
	c.Operators = slices.Clone(c.Operators)
	for i, op := range c.Operators {
		c.Operators[i] = op.Validate(c.SafeLimits)
	}
	c.ColorBlend = math32.Clamp(c.ColorBlend, 0, 1)
	return c
}

// MarshalConfig encodes the config as TOML.
func MarshalConfig(c Config) ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("polyhydra: encoding config: %w", err)
	}
	return b, nil
}

// UnmarshalConfig decodes a TOML config. Fields missing from
// the data keep their default values. Unknown enum names are an error.
func UnmarshalConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return c, fmt.Errorf("polyhydra: decoding config: %w", err)
	}
	if err := checkEnums(reflect.TypeFor[Config](), raw); err != nil {
		return c, fmt.Errorf("polyhydra: decoding config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("polyhydra: decoding config: %w", err)
	}
	return c, nil
}

// checkEnums returns an error for the first string in the decoded data
// that is not a valid name of the enum type it decodes into.
// Enum UnmarshalText only logs such names and keeps the old value.
func checkEnums(typ reflect.Type, data any) error {
	switch d := data.(type) {
	case map[string]any:
		if typ.Kind() != reflect.Struct {
			return nil
		}
		for k, v := range d {
			f, ok := typ.FieldByNameFunc(func(name string) bool { return strings.EqualFold(name, k) })
			if !ok {
				continue
			}
			if err := checkEnums(f.Type, v); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	case []any:
		if typ.Kind() != reflect.Slice {
			return nil
		}
		for i, v := range d {
			if err := checkEnums(typ.Elem(), v); err != nil {
				return fmt.Errorf("%d: %w", i, err)
			}
		}
	case string:
		if e, ok := reflect.New(typ).Interface().(enums.EnumSetter); ok {
			return e.SetString(d)
		}
	}
	return nil
}
