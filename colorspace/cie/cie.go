// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the shared float64 building blocks of the color
// spaces: sRGB companding, the linear sRGB to CIE XYZ matrices under
// D65, and the CIE L*a*b* compression function.
package cie

import "math"

// WhiteD65 is the D65 reference white in XYZ, scaled so that Y = 100.
var WhiteD65 = [3]float64{95.047, 100, 108.883}

// LinToXYZ converts linear sRGB to CIE XYZ with Y in [0,1].
var LinToXYZ = Mat3{
	{0.41239079926595, 0.35758433938387, 0.18048078840183},
	{0.21263900587151, 0.71516867876775, 0.072192315360733},
	{0.019330818715591, 0.11919477979462, 0.95053215224966},
}

// XYZToLin converts CIE XYZ with Y in [0,1] to linear sRGB.
var XYZToLin = LinToXYZ.MustInverse()

// The sRGB companding thresholds, placed where the linear segment meets
// the power curve so that encoding exactly inverts decoding.
const (
	SRGBDecodeThreshold = 0.0404482362771082
	SRGBEncodeThreshold = 0.00313066844250063
)

// SRGBToLinearComp converts an sRGB gamma encoded component in [0,1]
// to its linear value.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= SRGBDecodeThreshold {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component to its sRGB gamma
// encoded value.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= SRGBEncodeThreshold {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts sRGB gamma encoded components to linear ones.
func SRGBToLinear(rgb [3]float64) [3]float64 {
	return [3]float64{SRGBToLinearComp(rgb[0]), SRGBToLinearComp(rgb[1]), SRGBToLinearComp(rgb[2])}
}

// SRGBFromLinear converts linear components to sRGB gamma encoded ones.
func SRGBFromLinear(lin [3]float64) [3]float64 {
	return [3]float64{SRGBFromLinearComp(lin[0]), SRGBFromLinearComp(lin[1]), SRGBFromLinearComp(lin[2])}
}

// SRGBToXYZ converts gamma encoded sRGB to CIE XYZ scaled so that
// the D65 white has Y = 100.
func SRGBToXYZ(rgb [3]float64) [3]float64 {
	xyz := LinToXYZ.MulVec(SRGBToLinear(rgb))
	return [3]float64{xyz[0] * 100, xyz[1] * 100, xyz[2] * 100}
}

// XYZToSRGB is the inverse of [SRGBToXYZ].
func XYZToSRGB(xyz [3]float64) [3]float64 {
	return SRGBFromLinear(XYZToSRGBLin(xyz))
}

// XYZToSRGBLin converts CIE XYZ scaled so that Y = 100 to linear sRGB.
func XYZToSRGBLin(xyz [3]float64) [3]float64 {
	return XYZToLin.MulVec([3]float64{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100})
}

// LAB compression constants, in the exact rational form so that the
// two branches of [LABCompress] meet.
const (
	LABEpsilon = 216.0 / 24389.0
	LABKappa   = 24389.0 / 27.0
)

// LABCompress is the CIE L*a*b* compression function f(t), applied
// to a tristimulus value relative to the reference white.
func LABCompress(t float64) float64 {
	if t > LABEpsilon {
		return math.Cbrt(t)
	}
	return (LABKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	t3 := ft * ft * ft
	if t3 > LABEpsilon {
		return t3
	}
	return (116*ft - 16) / LABKappa
}

// XYZToLAB converts XYZ (Y = 100 white) to CIE L*a*b* relative to white.
func XYZToLAB(xyz, white [3]float64) [3]float64 {
	fx := LABCompress(xyz[0] / white[0])
	fy := LABCompress(xyz[1] / white[1])
	fz := LABCompress(xyz[2] / white[2])
	return [3]float64{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LABToXYZ is the inverse of [XYZToLAB].
func LABToXYZ(lab, white [3]float64) [3]float64 {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return [3]float64{
		LABUncompress(fx) * white[0],
		LABUncompress(fy) * white[1],
		LABUncompress(fz) * white[2],
	}
}
