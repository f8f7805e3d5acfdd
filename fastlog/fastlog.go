// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastlog provides table driven approximations of log2, ln and
// pow, computed by reading the exponent and mantissa fields of IEEE-754
// values directly instead of calling a transcendental function.
//
// Every approximator builds its tables once at construction and never
// mutates them afterwards, so a single instance can be shared by any
// number of goroutines.
//
// The query methods do not check their domain: for inputs that are
// not strictly positive and finite the result is undefined. Use
// [CheckedLog2] and [CheckedLog] where the input is not known to be valid.
package fastlog

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"cogentcore.org/gradients/math32"
)

// Ln2 is the natural logarithm of 2.
const Ln2 = math.Ln2

// DefaultN is the default table precision, in mantissa bits.
const DefaultN = 13

// Bit layout of an IEEE-754 double precision value.
const (
	mantissaBits = 52
	exponentBias = 1023
	mantissaMask = 1<<mantissaBits - 1
	exponentMask = 0x7ff
	implicitBit  = 1 << mantissaBits
)

// ErrInvalidArgument is returned by the constructors for a base or
// precision outside of the supported range.
var ErrInvalidArgument = errors.New("invalid argument")

// FastLog is an approximate logarithm over a fixed base.
// The base is applied by multiplying an approximate log2 by [FastLog.Scale].
type FastLog interface {

	// Base returns the logarithm base.
	Base() float64

	// N returns the table precision in mantissa bits.
	N() int

	// Scale returns the factor that converts log2 to log base Base.
	Scale() float64

	// Log2 returns an approximation of log2(x).
	Log2(x float64) float64

	// Log returns an approximation of the logarithm of x in Base.
	Log(x float64) float64

	// Log2F returns an approximation of log2(x) for a float32.
	Log2F(x float32) float32

	// LogF returns an approximation of the logarithm of x in Base for a float32.
	LogF(x float32) float32
}

// ComputeScale returns the multiplier that turns log2 into log base
// base, which is ln(2)/ln(base).
func ComputeScale(base float64) (float64, error) {
	if !(base > 0) || math.IsInf(base, 0) || base == 1 {
		return 0, fmt.Errorf("fastlog.ComputeScale: base %g must be positive, finite and not 1: %w", base, ErrInvalidArgument)
	}
	return Ln2 / math.Log(base), nil
}

// ExactLog2 returns log2(x) computed with the math package.
// It is what the tables are filled with.
func ExactLog2(x float64) float64 {
	return math.Log2(x)
}

// CheckedLog2 returns fl.Log2(x) for valid inputs and the IEEE-754
// special values otherwise: NaN for NaN or negative x, +Inf for +Inf,
// and -Inf for either signed zero.
func CheckedLog2(fl FastLog, x float64) float64 {
	if v, ok := special(x); ok {
		return v
	}
	return fl.Log2(x)
}

// CheckedLog is the [FastLog.Log] counterpart of [CheckedLog2].
func CheckedLog(fl FastLog, x float64) float64 {
	if v, ok := special(x); ok {
		return v
	}
	return fl.Log(x)
}

// CheckedLog2F is the float32 counterpart of [CheckedLog2].
func CheckedLog2F(fl FastLog, x float32) float32 {
	if v, ok := specialF(x); ok {
		return v
	}
	return fl.Log2F(x)
}

// CheckedLogF is the float32 counterpart of [CheckedLog].
func CheckedLogF(fl FastLog, x float32) float32 {
	if v, ok := specialF(x); ok {
		return v
	}
	return fl.LogF(x)
}

func special(x float64) (float64, bool) {
	switch {
	case math.IsNaN(x):
		return math.NaN(), true
	case x == 0:
		return math.Inf(-1), true
	case x < 0:
		return math.NaN(), true
	case math.IsInf(x, 1):
		return math.Inf(1), true
	}
	return 0, false
}

func specialF(x float32) (float32, bool) {
	switch {
	case math32.IsNaN(x):
		return math32.NaN(), true
	case x == 0:
		return math32.Inf(-1), true
	case x < 0:
		return math32.NaN(), true
	case math32.IsInf(x, 1):
		return math32.Inf(1), true
	}
	return 0, false
}

// fields splits a double into its raw exponent and mantissa fields.
func fields(x float64) (e int, m uint64) {
	bits := math.Float64bits(x)
	return int(bits >> mantissaBits & exponentMask), bits & mantissaMask
}

var (
	defaultOnce sync.Once
	defaultLog  *DFastLog
	defaultPow  *FastPow
)

// Default returns the shared base 2 [DFastLog] of precision [DefaultN],
// building it on first use.
func Default() *DFastLog {
	initDefaults()
	return defaultLog
}

// DefaultPow returns the shared [FastPow] of precision [DefaultN],
// building it on first use.
func DefaultPow() *FastPow {
	initDefaults()
	return defaultPow
}

func initDefaults() {
	defaultOnce.Do(func() {
		defaultLog = MustDFastLog(2, DefaultN)
		defaultPow = MustFastPow(DefaultN)
	})
}
