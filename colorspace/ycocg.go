// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// YCOCGSpace is the YCoCg luma and chroma transform, with Y in [0,1]
// and Co, Cg in [-0.5,0.5].
type YCOCGSpace struct{ Linear }

func (YCOCGSpace) FromRGB(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	return [3]float64{r/4 + g/2 + b/4, r/2 - b/2, -r/4 + g/2 - b/4}
}

func (YCOCGSpace) ToRGB(c [3]float64) [3]float64 {
	y, co, cg := c[0], c[1], c[2]
	return [3]float64{y + co - cg, y + cg, y - co - cg}
}
