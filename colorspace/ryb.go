// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// RYBSpace is the painter's red-yellow-blue color wheel, using the
// conversion of Sugita and Takahashi. Channels are in [0,1].
type RYBSpace struct{ Linear }

func (RYBSpace) FromRGB(rgb [3]float64) [3]float64 {
	w := min(rgb[0], rgb[1], rgb[2])
	r, g, b := rgb[0]-w, rgb[1]-w, rgb[2]-w
	maxG := max(r, g, b)

	y := min(r, g)
	ry := [3]float64{r - y, (g + y) / 2, (b + g - y) / 2}
	if maxG > 0 {
		if maxY := max(ry[0], ry[1], ry[2]); maxY > 0 {
			ry = scale3(ry, maxG/maxY)
		}
	}
	black := min(1-rgb[0], 1-rgb[1], 1-rgb[2])
	return add3(ry, black)
}

// ToRGB inverts [RYBSpace.FromRGB] exactly: green is rebuilt as
// yellow plus the shared yellow-blue part.
func (RYBSpace) ToRGB(c [3]float64) [3]float64 {
	black := min(c[0], c[1], c[2])
	r, y, b := c[0]-black, c[1]-black, c[2]-black
	maxY := max(r, y, b)

	g := min(y, b)
	rgb := [3]float64{r + y - g, y + g, 2 * (b - g)}
	if maxY > 0 {
		if maxG := max(rgb[0], rgb[1], rgb[2]); maxG > 0 {
			rgb = scale3(rgb, maxY/maxG)
		}
	}
	w := min(1-c[0], 1-c[1], 1-c[2])
	return add3(rgb, w)
}

func scale3(v [3]float64, s float64) [3]float64 {
	return [3]float64{v[0] * s, v[1] * s, v[2] * s}
}

func add3(v [3]float64, s float64) [3]float64 {
	return [3]float64{v[0] + s, v[1] + s, v[2] + s}
}
