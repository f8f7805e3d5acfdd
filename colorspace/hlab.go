// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// HLABSpace is Hunter Lab relative to the D65 white.
type HLABSpace struct{ Linear }

var (
	hlabKa = 175.0 / 198.04 * (cie.WhiteD65[1] + cie.WhiteD65[0])
	hlabKb = 70.0 / 218.11 * (cie.WhiteD65[1] + cie.WhiteD65[2])
)

func (HLABSpace) FromRGB(rgb [3]float64) [3]float64 {
	return XYZToHLAB(cie.SRGBToXYZ(rgb))
}

func (HLABSpace) ToRGB(c [3]float64) [3]float64 {
	return cie.XYZToSRGB(HLABToXYZ(c))
}

// XYZToHLAB converts XYZ (Y = 100 white) to Hunter Lab. Black maps to zero.
func XYZToHLAB(xyz [3]float64) [3]float64 {
	w := cie.WhiteD65
	yr := xyz[1] / w[1]
	if yr == 0 {
		return [3]float64{}
	}
	s := math.Sqrt(yr)
	return [3]float64{
		100 * s,
		hlabKa * (xyz[0]/w[0] - yr) / s,
		hlabKb * (yr - xyz[2]/w[2]) / s,
	}
}

// HLABToXYZ is the inverse of [XYZToHLAB].
func HLABToXYZ(h [3]float64) [3]float64 {
	w := cie.WhiteD65
	s := h[0] / 100
	yr := s * s
	return [3]float64{
		(h[1]/hlabKa*s + yr) * w[0],
		yr * w[1],
		(yr - h[2]/hlabKb*s) * w[2],
	}
}
