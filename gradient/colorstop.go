// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"math"

	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colorspace"
)

// ColorStop is a color at a position along a gradient.
type ColorStop struct {

	// Position is the position of the stop along the gradient, in [0,1].
	Position float64

	// Color is the packed 0xAARRGGBB color of the stop.
	Color uint32

	// cache holds the color converted to each color space, filled on demand.
	cache [colorspace.ColorSpacesN]converted
}

// converted is a cached conversion of the color argb.
type converted struct {
	channels [3]float64
	argb     uint32
	ok       bool
}

// NewColorStop returns a new color stop with the given packed
// 0xAARRGGBB color, with the position clamped to [0,1].
func NewColorStop(argb uint32, pos float64) *ColorStop {
	return &ColorStop{Position: min(max(pos, 0), 1), Color: argb}
}

// Alpha returns the alpha channel of the stop color.
func (cs *ColorStop) Alpha() uint8 {
	return colorspace.Alpha(cs.Color)
}

// SetColor sets the color of the stop.
func (cs *ColorStop) SetColor(argb uint32) {
	cs.Color = argb
	cs.cache = [colorspace.ColorSpacesN]converted{}
}

// SetPosition sets the position of the stop, wrapping values
// outside of [0,1] back into it.
func (cs *ColorStop) SetPosition(pos float64) {
	cs.Position = wrap(pos)
}

// Channels returns the stop color converted to the given color space.
// The conversion is cached until the color changes, including through
// direct assignment to [ColorStop.Color].
func (cs *ColorStop) Channels(space colorspace.ColorSpaces) [3]float64 {
	c := &cs.cache[space]
	if !c.ok || c.argb != cs.Color {
		c.channels = space.ColorSpace().FromRGB(colorspace.Decompose(cs.Color))
		c.argb = cs.Color
		c.ok = true
	}
	return c.channels
}

// Mutate moves each of the red, green and blue channels of the stop
// color up or down by amt, in 8-bit units, clamping to [0,255].
// The alpha channel is unchanged.
func (cs *ColorStop) Mutate(amt float64, r randx.Rand) {
	rgb := colorspace.Decompose(cs.Color)
	for i := range rgb {
		sign := 1.0
		if r.Float64() < 0.5 {
			sign = -1
		}
		rgb[i] += sign * amt / 255
	}
	cs.SetColor(colorspace.ComposeClamp(rgb, cs.Alpha()))
}

// Equal returns whether the two stops have the same position and color.
func (cs *ColorStop) Equal(o *ColorStop) bool {
	return cs.Position == o.Position && cs.Color == o.Color
}

func (cs *ColorStop) String() string {
	return fmt.Sprintf("%.4g #%08X", cs.Position, cs.Color)
}

// wrap maps a position into [0,1]. Negative values are shifted up
// by whole units and values above 1 are taken modulo 1, so that
// 1 itself stays at 1.
func wrap(p float64) float64 {
	if p < 0 {
		p = math.Mod(p, 1) + 1
	}
	if p > 1 {
		p = math.Mod(p, 1)
	}
	return p
}
