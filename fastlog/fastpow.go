// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastlog

import (
	"fmt"
	"math"

	"cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/math32"
)

// MaxPowPrecision is the largest precision accepted by [NewFastPow].
const MaxPowPrecision = math32.MantissaBits

// FastPow approximates pow and exp using the identity
// pow(x, p) = exp2(p*log2(x)). The log2 comes from a [DFastLog] and
// exp2 is assembled as float32 bits: the integer part of the
// product goes into the exponent field and the fractional part
// indexes a table of mantissas.
//
// Results have float32 range and roughly precision bits of accuracy.
// Results below the smallest normal float32 flush to zero.
type FastPow struct {
	precision int
	table     []uint32
	log       *DFastLog
}

// NewFastPow returns a new [FastPow] with 1<<precision mantissa entries.
func NewFastPow(precision int) (*FastPow, error) {
	if precision < 0 || precision > MaxPowPrecision {
		return nil, fmt.Errorf("fastlog.NewFastPow: precision %d must be in [0, %d]: %w", precision, MaxPowPrecision, ErrInvalidArgument)
	}
	log, err := NewDFastLog(2, precision)
	if err != nil {
		return nil, err
	}
	fp := &FastPow{precision: precision, log: log}
	size := 1 << precision
	fp.table = make([]uint32, size)
	step := 1 / float64(size)
	zeroToOne := step / 2
	for i := range size {
		fp.table[i] = uint32((math.Exp2(zeroToOne) - 1) * (1 << math32.MantissaBits))
		zeroToOne += step
	}
	return fp, nil
}

// MustFastPow is like [NewFastPow] but panics on an invalid argument.
func MustFastPow(precision int) *FastPow {
	return errors.Must1(NewFastPow(precision))
}

// Precision returns the table precision in bits.
func (fp *FastPow) Precision() int { return fp.precision }

// Exp2 returns an approximation of 2**y.
func (fp *FastPow) Exp2(y float64) float64 {
	f := y*(1<<math32.MantissaBits) + math32.ExponentBias*(1<<math32.MantissaBits)
	switch {
	case f < 1<<math32.MantissaBits:
		return 0
	case f >= (math32.ExponentMask)*(1<<math32.MantissaBits):
		return math.Inf(1)
	}
	i := uint32(f)
	bits := i&^math32.MantissaMask | fp.table[(i&math32.MantissaMask)>>(math32.MantissaBits-fp.precision)]
	return float64(math32.Float32frombits(bits))
}

// Pow returns an approximation of base**exp for base >= 0.
// Pow(0, exp) is 0 for any exp.
func (fp *FastPow) Pow(base, exp float64) float64 {
	if base == 0 {
		return 0
	}
	return fp.Exp2(exp * fp.log.Log2(base))
}

// Exp returns an approximation of e**x.
func (fp *FastPow) Exp(x float64) float64 {
	return fp.Exp2(x * math.Log2E)
}
