// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// SRLAB2Space is the SRLAB2 space of Jan Behrens: CIE L*a*b* style
// compression applied in a CIECAM02 based cone space.
type SRLAB2Space struct{ Linear }

var (
	srlab2RGBToCone = cie.Mat3{
		{0.320530, 0.636920, 0.042560},
		{0.161987, 0.756636, 0.081376},
		{0.017228, 0.108660, 0.874112},
	}
	srlab2ConeToRGB = srlab2RGBToCone.MustInverse()

	srlab2ConeToLab = cie.Mat3{
		{37.0950, 62.9054, -0.0008},
		{663.4684, -750.5078, 87.0328},
		{63.9569, 108.4576, -172.4152},
	}
	srlab2LabToCone = srlab2ConeToLab.MustInverse()
)

func (SRLAB2Space) FromRGB(rgb [3]float64) [3]float64 {
	cone := srlab2RGBToCone.MulVec(cie.SRGBToLinear(rgb))
	return srlab2ConeToLab.MulVec(apply3(cone, srlab2Compress))
}

func (SRLAB2Space) ToRGB(c [3]float64) [3]float64 {
	cone := apply3(srlab2LabToCone.MulVec(c), srlab2Uncompress)
	return cie.SRGBFromLinear(srlab2ConeToRGB.MulVec(cone))
}

func srlab2Compress(x float64) float64 {
	if x <= cie.LABEpsilon {
		return x * cie.LABKappa / 100
	}
	return 1.16*math.Cbrt(x) - 0.16
}

func srlab2Uncompress(x float64) float64 {
	if x <= 0.08 {
		return x * 100 / cie.LABKappa
	}
	return cube((x + 0.16) / 1.16)
}
