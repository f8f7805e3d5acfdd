// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace provides invertible conversions between gamma encoded
// sRGB and a set of perceptual and device color spaces, together with a
// registry of them in a fixed cyclic order.
//
// Each space is a stateless [ColorSpace]. Channel triples are [3]float64
// values: RGB channels are in [0,1] and other spaces use their natural
// units. Conversions are pure and safe for concurrent use.
//
// Interpolation is per channel in every space. For the hue based spaces
// ([HSB], [HSL] and [RYB]) the hue is treated as a plain channel and is
// not wrapped around the color wheel.
package colorspace

//go:generate core generate

import (
	"errors"
	"fmt"
)

// ErrBadLength is returned for a channel slice that does not hold
// exactly three values.
var ErrBadLength = errors.New("color channels must have length 3")

// ColorSpace converts colors between gamma encoded sRGB and a color space,
// and interpolates between two colors in that space.
type ColorSpace interface {

	// FromRGB converts gamma encoded sRGB channels in [0,1] to this space.
	FromRGB(rgb [3]float64) [3]float64

	// ToRGB converts channels of this space to gamma encoded sRGB.
	// The result is not clamped to [0,1].
	ToRGB(c [3]float64) [3]float64

	// InterpolateLinear interpolates between a and b, which are in
	// this space, at t in [0,1].
	InterpolateLinear(a, b [3]float64, t float64) [3]float64
}

// Linear provides per channel linear interpolation. It is embedded in
// every color space.
type Linear struct{}

// InterpolateLinear returns a + t*(b-a) for each channel.
func (Linear) InterpolateLinear(a, b [3]float64, t float64) [3]float64 {
	return Lerp(a, b, t)
}

// Lerp returns a + t*(b-a) for each channel.
func Lerp(a, b [3]float64, t float64) [3]float64 {
	return [3]float64{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// Triple returns the channels in s as an array, or an error wrapping
// [ErrBadLength] if s does not have exactly three values.
func Triple(s []float64) ([3]float64, error) {
	if len(s) != 3 {
		return [3]float64{}, fmt.Errorf("colorspace.Triple: got %d channels: %w", len(s), ErrBadLength)
	}
	return [3]float64{s[0], s[1], s[2]}, nil
}

// FromRGBSlice is [ColorSpace.FromRGB] for a channel slice.
func FromRGBSlice(cs ColorSpace, rgb []float64) ([3]float64, error) {
	c, err := Triple(rgb)
	if err != nil {
		return c, err
	}
	return cs.FromRGB(c), nil
}

// ToRGBSlice is [ColorSpace.ToRGB] for a channel slice.
func ToRGBSlice(cs ColorSpace, c []float64) ([3]float64, error) {
	t, err := Triple(c)
	if err != nil {
		return t, err
	}
	return cs.ToRGB(t), nil
}

// Convert converts the channels c of space from to space to,
// going through sRGB.
func Convert(from, to ColorSpaces, c [3]float64) [3]float64 {
	if from == to {
		return c
	}
	return to.ColorSpace().FromRGB(from.ColorSpace().ToRGB(c))
}
