// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coloring

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
)

// NumColors is the number of entries in a [Palette].
const NumColors = 12

// Palette is the fixed set of colors faces are colored from.
type Palette [NumColors]color.RGBA

// PaletteOptions determine how a [Palette] is made.
type PaletteOptions struct {

	// CustomColors are used instead of a gradient
	// when more than one is given.
	CustomColors []color.RGBA

	// ColorMap is the name of a standard color map gradient.
	ColorMap string

	// GradientStops, if given, are used as the gradient
	// instead of the named color map.
	GradientStops []color.RGBA

	// ColorRange is the span of the gradient covered by
	// every eight palette entries.
	ColorRange float32

	// ColorOffset is where on the gradient the palette starts.
	ColorOffset float32

	// MainColor is the color every palette entry is blended toward.
	MainColor color.RGBA

	// ColorBlend is the share of the palette color in each entry:
	// 0 is the main color and 1 is the palette color.
	ColorBlend float32
}

// DefaultPaletteOptions returns the standard palette options.
func DefaultPaletteOptions() PaletteOptions {
	return PaletteOptions{
		ColorMap:    "ColdHot",
		ColorRange:  0.5,
		ColorOffset: 0,
		MainColor:   colors.White,
		ColorBlend:  0.5,
	}
}

// NewPalette returns the palette for the given options.
func NewPalette(opts PaletteOptions) Palette {
	var p Palette
	if len(opts.CustomColors) > 1 {
		cs := make([]color.RGBA, NumColors)
		for i := range cs {
			cs[i] = opts.CustomColors[i%len(opts.CustomColors)]
		}
		slices.Reverse(cs)
		cs = append(cs[1:], cs[0])
		copy(p[:], cs)
	} else {
		cm := gradient(opts)
		for i := range p {
			pos := float32(i)/8*opts.ColorRange + opts.ColorOffset
			pos = math32.Mod(pos, 1)
			if pos < 0 {
				pos += 1
			}
			if cm == nil {
				p[i] = colors.Spaced(i)
			} else {
				p[i] = cm.Map(pos)
			}
		}
	}
	blend := math32.Clamp(opts.ColorBlend, 0, 1)
	for i := range p {
		p[i] = colors.BlendRGB(100*blend, p[i], opts.MainColor)
	}
	return p
}

// gradient returns the color map for the options, or nil
// if the named map does not exist.
func gradient(opts PaletteOptions) *colormap.Map {
	if len(opts.GradientStops) > 0 {
		return &colormap.Map{Name: "Custom", Colors: opts.GradientStops, Blend: colors.RGB}
	}
	cm, ok := colormap.AvailableMaps[opts.ColorMap]
	if !ok {
		slog.Error("coloring: unknown color map, using spaced colors", "name", opts.ColorMap)
		return nil
	}
	return cm
}

// Color returns the palette entry for the index, wrapping around.
func (p *Palette) Color(i int) color.RGBA {
	i %= NumColors
	if i < 0 {
		i += NumColors
	}
	return p[i]
}
