// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based math package, used by the
// single-precision tracks of the approximate log engine.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Log2E is 1/ln(2).
const Log2E = math.Log2E

// Bit layout of an IEEE-754 single precision value.
const (
	// MantissaBits is the number of explicit mantissa bits.
	MantissaBits = 23

	// ExponentBias is the bias of the 8-bit exponent field.
	ExponentBias = 127

	// MantissaMask selects the mantissa field.
	MantissaMask = 1<<MantissaBits - 1

	// ExponentMask selects the exponent field after shifting by MantissaBits.
	ExponentMask = 0xff
)

// Float32bits returns the IEEE 754 binary representation of f.
func Float32bits(f float32) uint32 {
	return math.Float32bits(f)
}

// Float32frombits returns the floating-point number corresponding
// to the IEEE 754 binary representation b.
func Float32frombits(b uint32) float32 {
	return math.Float32frombits(b)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// NaN returns an IEEE 754 “not-a-number” value.
func NaN() float32 {
	return math32.NaN()
}

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x float32) float32 {
	return math32.Log(x)
}

// Exponent returns the raw 8-bit exponent field of x.
func Exponent(x float32) uint32 {
	return Float32bits(x) >> MantissaBits & ExponentMask
}

// Mantissa returns the raw 23-bit mantissa field of x.
func Mantissa(x float32) uint32 {
	return Float32bits(x) & MantissaMask
}
