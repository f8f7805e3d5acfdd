// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// LUVSpace is CIE L*u*v* relative to the D65 white.
type LUVSpace struct{ Linear }

var luvWhiteU, luvWhiteV = uvPrime(cie.WhiteD65)

// uvPrime returns the u' v' chromaticity of an XYZ color.
func uvPrime(xyz [3]float64) (u, v float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

func (LUVSpace) FromRGB(rgb [3]float64) [3]float64 {
	return XYZToLUV(cie.SRGBToXYZ(rgb))
}

func (LUVSpace) ToRGB(c [3]float64) [3]float64 {
	return cie.XYZToSRGB(LUVToXYZ(c))
}

// XYZToLUV converts XYZ (Y = 100 white) to CIE L*u*v*. Black maps to zero.
func XYZToLUV(xyz [3]float64) [3]float64 {
	yr := xyz[1] / cie.WhiteD65[1]
	var l float64
	if yr > cie.LABEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cie.LABKappa * yr
	}
	if l == 0 {
		return [3]float64{}
	}
	u, v := uvPrime(xyz)
	return [3]float64{l, 13 * l * (u - luvWhiteU), 13 * l * (v - luvWhiteV)}
}

// LUVToXYZ is the inverse of [XYZToLUV].
func LUVToXYZ(luv [3]float64) [3]float64 {
	l := luv[0]
	if l == 0 {
		return [3]float64{}
	}
	var y float64
	if l > cie.LABKappa*cie.LABEpsilon {
		y = cube((l + 16) / 116)
	} else {
		y = l / cie.LABKappa
	}
	y *= cie.WhiteD65[1]
	up := luv[1]/(13*l) + luvWhiteU
	vp := luv[2]/(13*l) + luvWhiteV
	return [3]float64{
		y * 9 * up / (4 * vp),
		y,
		y * (12 - 3*up - 20*vp) / (4 * vp),
	}
}
