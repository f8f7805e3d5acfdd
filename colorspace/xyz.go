// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"
	"sync"

	"cogentcore.org/gradients/colorspace/cie"
	"cogentcore.org/gradients/fastlog"
)

// XYZSpace is CIE 1931 XYZ under D65, scaled so that the white has Y = 100.
type XYZSpace struct{ Linear }

func (XYZSpace) FromRGB(rgb [3]float64) [3]float64 {
	return cie.SRGBToXYZ(rgb)
}

func (XYZSpace) ToRGB(c [3]float64) [3]float64 {
	return cie.XYZToSRGB(c)
}

// ToRGBQuick is [XYZSpace.ToRGB] with the gamma encoding power computed by
// [fastlog.DefaultPow]. Channels stay within 1e-4 of the exact result,
// which rounds to the same 8-bit value.
func (XYZSpace) ToRGBQuick(c [3]float64) [3]float64 {
	fp := fastlog.DefaultPow()
	return encodeWith(cie.XYZToSRGBLin(c), func(lin float64) float64 {
		return fp.Pow(lin, 1/2.4)
	})
}

// ToRGBVeryQuick is [XYZSpace.ToRGB] with the gamma encoding power taken
// from a second order series of exp around a coarse table logarithm.
// It is much less accurate than [XYZSpace.ToRGBQuick]: channels can be
// off by up to 0.09, mostly for dark colors.
func (XYZSpace) ToRGBVeryQuick(c [3]float64) [3]float64 {
	return encodeWith(cie.XYZToSRGBLin(c), func(lin float64) float64 {
		return veryFastPow(lin, 1/2.4)
	})
}

var veryQuickLog = sync.OnceValue(func() *fastlog.DFastLog {
	return fastlog.MustDFastLog(math.E, 10)
})

// veryFastPow approximates f1**f2 as f1 * (1 + d + d*d/2),
// with d = (f2-1) * ln(f1).
func veryFastPow(f1, f2 float64) float64 {
	ln := veryQuickLog().Log(f1)
	am1 := f2 - 1
	rv := f1 * ln * am1
	rv += 0.5 * f1 * ln * ln * am1 * am1
	return rv + f1
}

func encodeWith(lin [3]float64, pow func(float64) float64) [3]float64 {
	var rgb [3]float64
	for i, v := range lin {
		if v <= cie.SRGBEncodeThreshold {
			rgb[i] = 12.92 * v
		} else {
			rgb[i] = 1.055*pow(v) - 0.055
		}
	}
	return rgb
}
