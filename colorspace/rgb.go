// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// RGBSpace is gamma encoded sRGB itself. Conversions are the identity.
type RGBSpace struct{ Linear }

func (RGBSpace) FromRGB(rgb [3]float64) [3]float64 { return rgb }

func (RGBSpace) ToRGB(c [3]float64) [3]float64 { return c }
