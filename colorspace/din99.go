// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/gradients/colorspace/cie"
)

// DIN99Space is the DIN 6176 DIN99 space, a logarithmic compression of
// CIE L*a*b* with the chroma plane rotated by 16 degrees.
type DIN99Space struct{ Linear }

var (
	din99Sin16 = math.Sin(16 * math.Pi / 180)
	din99Cos16 = math.Cos(16 * math.Pi / 180)

	// din99LScale maps L* = 100 to L99 = 100.
	din99LScale = 100 / math.Log(129.0/50.0)
)

func (DIN99Space) FromRGB(rgb [3]float64) [3]float64 {
	return LABToDIN99(cie.XYZToLAB(cie.SRGBToXYZ(rgb), cie.WhiteD65))
}

func (DIN99Space) ToRGB(c [3]float64) [3]float64 {
	return cie.XYZToSRGB(cie.LABToXYZ(DIN99ToLAB(c), cie.WhiteD65))
}

// LABToDIN99 converts CIE L*a*b* to DIN99.
func LABToDIN99(lab [3]float64) [3]float64 {
	l99 := din99LScale * math.Log(1+0.0158*lab[0])
	e := lab[1]*din99Cos16 + lab[2]*din99Sin16
	f := 0.7 * (lab[2]*din99Cos16 - lab[1]*din99Sin16)
	g := math.Hypot(e, f)
	if g == 0 {
		return [3]float64{l99, 0, 0}
	}
	k := math.Log(1+0.045*g) / (0.045 * g)
	return [3]float64{l99, k * e, k * f}
}

// DIN99ToLAB is the inverse of [LABToDIN99].
func DIN99ToLAB(d [3]float64) [3]float64 {
	h := math.Atan2(d[2], d[1])
	c := math.Hypot(d[1], d[2])
	g := (math.Exp(0.045*c) - 1) / 0.045
	e := g * math.Cos(h)
	f := g * math.Sin(h) / 0.7
	return [3]float64{
		(math.Exp(d[0]/din99LScale) - 1) / 0.0158,
		e*din99Cos16 - f*din99Sin16,
		e*din99Sin16 + f*din99Cos16,
	}
}
