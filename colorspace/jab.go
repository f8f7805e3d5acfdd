// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// JABSpace is the Jzazbz space of Safdar et al., computed from XYZ in
// units where the D65 white has Y = 100.
type JABSpace struct{ Linear }

const (
	jabB  = 1.15
	jabG  = 0.66
	jabC1 = 3424.0 / 4096
	jabC2 = 2413.0 / 128
	jabC3 = 2392.0 / 128
	jabN  = 2610.0 / 16384
	jabP  = 1.7 * 2523.0 / 32
	jabD  = -0.56
	jabD0 = 1.6295499532821566e-11

	// jabPeak is the luminance, in cd/m², that maps to a PQ input of 1.
	jabPeak = 10000
)

var (
	jabXYZToLMS = cie.Mat3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jabLMSToXYZ = jabXYZToLMS.MustInverse()

	jabLMSToIab = cie.Mat3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
	jabIabToLMS = jabLMSToIab.MustInverse()
)

func (JABSpace) FromRGB(rgb [3]float64) [3]float64 {
	return XYZToJAB(cie.SRGBToXYZ(rgb))
}

func (JABSpace) ToRGB(c [3]float64) [3]float64 {
	return cie.XYZToSRGB(JABToXYZ(c))
}

// XYZToJAB converts XYZ (Y = 100 white) to Jzazbz.
func XYZToJAB(xyz [3]float64) [3]float64 {
	x, y, z := xyz[0], xyz[1], xyz[2]
	xp := jabB*x - (jabB-1)*z
	yp := jabG*y - (jabG-1)*x
	lms := apply3(jabXYZToLMS.MulVec([3]float64{xp, yp, z}), jabPQ)
	iab := jabLMSToIab.MulVec(lms)
	j := (1+jabD)*iab[0]/(1+jabD*iab[0]) - jabD0
	return [3]float64{j, iab[1], iab[2]}
}

// JABToXYZ is the inverse of [XYZToJAB].
func JABToXYZ(jab [3]float64) [3]float64 {
	jd := jab[0] + jabD0
	i := jd / (1 + jabD - jabD*jd)
	lms := apply3(jabIabToLMS.MulVec([3]float64{i, jab[1], jab[2]}), jabInversePQ)
	xyzp := jabLMSToXYZ.MulVec(lms)
	z := xyzp[2]
	x := (xyzp[0] + (jabB-1)*z) / jabB
	y := (xyzp[1] + (jabG-1)*x) / jabG
	return [3]float64{x, y, z}
}

func jabPQ(v float64) float64 {
	p := math.Pow(max(v/jabPeak, 0), jabN)
	return math.Pow((jabC1+jabC2*p)/(1+jabC3*p), jabP)
}

func jabInversePQ(v float64) float64 {
	p := math.Pow(max(v, 0), 1/jabP)
	n := max(p-jabC1, 0)
	return jabPeak * math.Pow(n/(jabC2-jabC3*p), 1/jabN)
}
