// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "cogentcore.org/gradients/colorspace/cie"

// LABSpace is CIE L*a*b* relative to the D65 white, with L in [0,100].
type LABSpace struct{ Linear }

func (LABSpace) FromRGB(rgb [3]float64) [3]float64 {
	return cie.XYZToLAB(cie.SRGBToXYZ(rgb), cie.WhiteD65)
}

func (LABSpace) ToRGB(c [3]float64) [3]float64 {
	return cie.XYZToSRGB(cie.LABToXYZ(c, cie.WhiteD65))
}
