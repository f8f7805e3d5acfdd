// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for a registry index outside [0, ColorSpacesN).
var ErrOutOfRange = errors.New("color space index out of range")

// ColorSpaces enumerates the supported color spaces in a fixed cyclic
// order. The index of each value is stable.
type ColorSpaces int32 //enums:enum

const (
	// RGB is gamma encoded sRGB.
	RGB ColorSpaces = iota

	// XYZ is CIE 1931 XYZ under D65.
	XYZ

	// LAB is CIE L*a*b*.
	LAB

	// DIN99 is the DIN 6176 logarithmic compression of L*a*b*.
	DIN99

	// ITP is ICtCp with the PQ transfer function.
	ITP

	// HLAB is Hunter Lab.
	HLAB

	// SRLAB2 is the SRLAB2 space.
	SRLAB2

	// OKLAB is the Oklab space.
	OKLAB

	// LUV is CIE L*u*v*.
	LUV

	// JAB is the Jzazbz space.
	JAB

	// XYB is the XYB space of JPEG XL.
	XYB

	// IPT is the IPT space.
	IPT

	// RYB is the painter's red-yellow-blue wheel.
	RYB

	// HSB is hue, saturation and brightness.
	HSB

	// HSL is hue, saturation and lightness.
	HSL

	// YCOCG is the YCoCg luma and chroma transform.
	YCOCG
)

var spaces = [ColorSpacesN]ColorSpace{
	RGB:    RGBSpace{},
	XYZ:    XYZSpace{},
	LAB:    LABSpace{},
	DIN99:  DIN99Space{},
	ITP:    ITPSpace{},
	HLAB:   HLABSpace{},
	SRLAB2: SRLAB2Space{},
	OKLAB:  OKLABSpace{},
	LUV:    LUVSpace{},
	JAB:    JABSpace{},
	XYB:    XYBSpace{},
	IPT:    IPTSpace{},
	RYB:    RYBSpace{},
	HSB:    HSBSpace{},
	HSL:    HSLSpace{},
	YCOCG:  YCOCGSpace{},
}

// ColorSpace returns the shared instance of the color space.
// It panics if cs is not a valid value.
func (cs ColorSpaces) ColorSpace() ColorSpace {
	return spaces[cs]
}

// Next returns the next color space, wrapping to the first one
// after the last.
func (cs ColorSpaces) Next() ColorSpaces {
	return (cs + 1) % ColorSpacesN
}

// Prev returns the previous color space, wrapping to the last one
// before the first.
func (cs ColorSpaces) Prev() ColorSpaces {
	return (cs + ColorSpacesN - 1) % ColorSpacesN
}

// IsValid returns whether cs is one of the defined color spaces.
func (cs ColorSpaces) IsValid() bool {
	return cs >= 0 && cs < ColorSpacesN
}

// Get returns the color space with index i.
func Get(i int) (ColorSpaces, error) {
	if i < 0 || i >= int(ColorSpacesN) {
		return 0, fmt.Errorf("colorspace.Get(%d): %w", i, ErrOutOfRange)
	}
	return ColorSpaces(i), nil
}
