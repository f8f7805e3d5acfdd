// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// IPTSpace is the IPT space of Ebner and Fairchild.
type IPTSpace struct{ Linear }

// iptExponent is the nonlinearity applied to the cone responses.
const iptExponent = 0.43

var (
	iptXYZToLMS = cie.Mat3{
		{0.4002, 0.7075, -0.0807},
		{-0.2280, 1.1500, 0.0612},
		{0, 0, 0.9184},
	}
	iptLMSToXYZ = iptXYZToLMS.MustInverse()

	iptLMSToIPT = cie.Mat3{
		{0.4, 0.4, 0.2},
		{4.455, -4.851, 0.396},
		{0.8056, 0.3572, -1.1628},
	}
	iptIPTToLMS = iptLMSToIPT.MustInverse()
)

func (IPTSpace) FromRGB(rgb [3]float64) [3]float64 {
	xyz := cie.SRGBToXYZ(rgb)
	lms := iptXYZToLMS.MulVec([3]float64{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100})
	return iptLMSToIPT.MulVec(apply3(lms, func(v float64) float64 {
		return signedPow(v, iptExponent)
	}))
}

func (IPTSpace) ToRGB(c [3]float64) [3]float64 {
	lms := apply3(iptIPTToLMS.MulVec(c), func(v float64) float64 {
		return signedPow(v, 1/iptExponent)
	})
	xyz := iptLMSToXYZ.MulVec(lms)
	return cie.XYZToSRGB([3]float64{xyz[0] * 100, xyz[1] * 100, xyz[2] * 100})
}

// signedPow returns sign(x) * |x|**e.
func signedPow(x, e float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), e), x)
}
