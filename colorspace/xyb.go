// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// XYBSpace is the XYB space of JPEG XL, computed from linear sRGB.
type XYBSpace struct{ Linear }

// xybBias is the opsin absorbance bias.
const xybBias = 0.0037930732552754493

var (
	xybOpsin = cie.Mat3{
		{0.30, 1 - 0.078 - 0.30, 0.078},
		{0.23, 1 - 0.078 - 0.23, 0.078},
		{0.24342268924547819, 0.20476744424496821, 1 - 0.24342268924547819 - 0.20476744424496821},
	}
	xybOpsinInv = xybOpsin.MustInverse()
	xybBiasCbrt = math.Cbrt(xybBias)
)

func (XYBSpace) FromRGB(rgb [3]float64) [3]float64 {
	m := xybOpsin.MulVec(cie.SRGBToLinear(rgb))
	g := apply3(m, func(v float64) float64 {
		return math.Cbrt(v+xybBias) - xybBiasCbrt
	})
	return [3]float64{0.5 * (g[0] - g[1]), 0.5 * (g[0] + g[1]), g[2]}
}

func (XYBSpace) ToRGB(c [3]float64) [3]float64 {
	g := [3]float64{c[1] + c[0], c[1] - c[0], c[2]}
	m := apply3(g, func(v float64) float64 {
		return cube(v+xybBiasCbrt) - xybBias
	})
	return cie.SRGBFromLinear(xybOpsinInv.MulVec(m))
}
