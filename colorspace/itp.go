// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// ITPSpace is ICtCp (ITU-R BT.2100) with the PQ transfer function,
// applied to linear sRGB.
type ITPSpace struct{ Linear }

// Constants of the SMPTE ST 2084 perceptual quantizer.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

var (
	itpRGBToLMS = scaled(cie.Mat3{
		{1688, 2146, 262},
		{683, 2951, 462},
		{99, 309, 3688},
	}, 1.0/4096)
	itpLMSToRGB = itpRGBToLMS.MustInverse()

	itpLMSToICtCp = scaled(cie.Mat3{
		{2048, 2048, 0},
		{6610, -13613, 7003},
		{17933, -17390, -543},
	}, 1.0/4096)
	itpICtCpToLMS = itpLMSToICtCp.MustInverse()
)

func (ITPSpace) FromRGB(rgb [3]float64) [3]float64 {
	lms := itpRGBToLMS.MulVec(cie.SRGBToLinear(rgb))
	return itpLMSToICtCp.MulVec(apply3(lms, pqEncode))
}

func (ITPSpace) ToRGB(c [3]float64) [3]float64 {
	lms := apply3(itpICtCpToLMS.MulVec(c), pqDecode)
	return cie.SRGBFromLinear(itpLMSToRGB.MulVec(lms))
}

func pqEncode(y float64) float64 {
	p := math.Pow(max(y, 0), pqM1)
	return math.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2)
}

func pqDecode(v float64) float64 {
	p := math.Pow(max(v, 0), 1/pqM2)
	n := max(p-pqC1, 0)
	return math.Pow(n/(pqC2-pqC3*p), 1/pqM1)
}

func scaled(m cie.Mat3, s float64) cie.Mat3 {
	return m.Scale(s)
}

func apply3(v [3]float64, f func(float64) float64) [3]float64 {
	return [3]float64{f(v[0]), f(v[1]), f(v[2])}
}
