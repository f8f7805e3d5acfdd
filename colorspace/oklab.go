// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// OKLABSpace is the Oklab space of Björn Ottosson.
type OKLABSpace struct{ Linear }

var (
	oklabM1 = cie.Mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	oklabM1Inv = oklabM1.MustInverse()

	oklabM2 = cie.Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabM2Inv = oklabM2.MustInverse()
)

func (OKLABSpace) FromRGB(rgb [3]float64) [3]float64 {
	lms := oklabM1.MulVec(cie.SRGBToLinear(rgb))
	return oklabM2.MulVec(apply3(lms, math.Cbrt))
}

func (OKLABSpace) ToRGB(c [3]float64) [3]float64 {
	lms := apply3(oklabM2Inv.MulVec(c), cube)
	return cie.SRGBFromLinear(oklabM1Inv.MulVec(lms))
}

func cube(x float64) float64 { return x * x * x }
