// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"image/color"
	"math"
)

// Decompose returns the red, green and blue channels of a packed
// 0xAARRGGBB color as values in [0,1].
func Decompose(argb uint32) [3]float64 {
	return [3]float64{
		float64(argb>>16&0xff) / 255,
		float64(argb>>8&0xff) / 255,
		float64(argb&0xff) / 255,
	}
}

// Alpha returns the alpha channel of a packed 0xAARRGGBB color.
func Alpha(argb uint32) uint8 {
	return uint8(argb >> 24)
}

// clamp255 scales v in [0,1] to a byte, rounding half up and clamping.
func clamp255(v float64) uint32 {
	i := math.Floor(v*255 + 0.5)
	switch {
	case i <= 0 || math.IsNaN(i):
		return 0
	case i >= 255:
		return 255
	}
	return uint32(i)
}

// ComposeClamp packs sRGB channels in [0,1] and an alpha into a
// 0xAARRGGBB color. Channels are rounded and clamped to [0,255].
func ComposeClamp(rgb [3]float64, alpha uint8) uint32 {
	return uint32(alpha)<<24 | clamp255(rgb[0])<<16 | clamp255(rgb[1])<<8 | clamp255(rgb[2])
}

// Pack packs 8-bit channels into a 0xAARRGGBB color.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ToNRGBA converts a packed 0xAARRGGBB color to a [color.NRGBA].
func ToNRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(argb >> 16), G: uint8(argb >> 8), B: uint8(argb), A: uint8(argb >> 24)}
}

// FromColor converts any [color.Color] to a packed 0xAARRGGBB color.
func FromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.A, n.R, n.G, n.B)
}
