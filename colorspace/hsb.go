// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// HSBSpace is hue, saturation and brightness (HSV). All channels,
// including the hue, are in [0,1].
type HSBSpace struct{ Linear }

func (HSBSpace) FromRGB(rgb [3]float64) [3]float64 {
	mx := max(rgb[0], rgb[1], rgb[2])
	d := mx - min(rgb[0], rgb[1], rgb[2])
	if d == 0 {
		return [3]float64{0, 0, mx}
	}
	return [3]float64{hue(rgb, mx, d), d / mx, mx}
}

func (HSBSpace) ToRGB(c [3]float64) [3]float64 {
	h, s, v := c[0], c[1], c[2]
	if s == 0 {
		return [3]float64{v, v, v}
	}
	h = (h - math.Floor(h)) * 6
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return [3]float64{v, t, p}
	case 1:
		return [3]float64{q, v, p}
	case 2:
		return [3]float64{p, v, t}
	case 3:
		return [3]float64{p, q, v}
	case 4:
		return [3]float64{t, p, v}
	}
	return [3]float64{v, p, q}
}

// hue returns the hue in [0,1) of rgb, given its largest channel mx
// and chroma d > 0.
func hue(rgb [3]float64, mx, d float64) float64 {
	var h float64
	switch mx {
	case rgb[0]:
		h = math.Mod((rgb[1]-rgb[2])/d, 6)
		if h < 0 {
			h += 6
		}
	case rgb[1]:
		h = (rgb[2]-rgb[0])/d + 2
	default:
		h = (rgb[0]-rgb[1])/d + 4
	}
	h /= 6
	if h >= 1 {
		h--
	}
	return h
}

// HSLSpace is hue, saturation and lightness. All channels, including
// the hue, are in [0,1].
type HSLSpace struct{ Linear }

func (HSLSpace) FromRGB(rgb [3]float64) [3]float64 {
	mx := max(rgb[0], rgb[1], rgb[2])
	mn := min(rgb[0], rgb[1], rgb[2])
	l := (mx + mn) / 2
	d := mx - mn
	if d == 0 {
		return [3]float64{0, 0, l}
	}
	sat := d / (2 - mx - mn)
	if l <= 0.5 {
		sat = d / (mx + mn)
	}
	return [3]float64{hue(rgb, mx, d), sat, l}
}

func (HSLSpace) ToRGB(c [3]float64) [3]float64 {
	h, s, l := c[0], c[1], c[2]
	chroma := 2 * (1 - l) * s
	if l <= 0.5 {
		chroma = 2 * l * s
	}
	if chroma <= 0 {
		return [3]float64{l, l, l}
	}
	v := l + chroma/2
	return HSBSpace{}.ToRGB([3]float64{h, chroma / v, v})
}
