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

// Inputs in [LowerOneBound, UpperOneBound] are computed exactly by
// [TurboLog], since ln is close to zero there and the table error
// would dominate the result.
const (
	LowerOneBound = 0.92
	UpperOneBound = 1.16
)

// MaxTurboN is the largest table precision accepted by [NewTurboLog].
const MaxTurboN = math32.MantissaBits

// TurboLog approximates the natural logarithm with a mantissa table and
// per-exponent tables. Subnormals are renormalized before the lookup.
type TurboLog struct {
	n int

	// q and qd are the number of low mantissa bits dropped by the
	// index for floats and doubles.
	q, qd uint

	// mant holds ln of 1+i/2^n.
	mant []float64

	// expF and expD hold e*ln(2) for each unbiased exponent.
	expF []float64
	expD []float64

	// Mantissa fields of the near one bounds, for both widths.
	lowerF, upperF uint32
	lowerD, upperD uint64
}

// NewTurboLog returns a new [TurboLog] with a mantissa table over the
// top n mantissa bits.
func NewTurboLog(n int) (*TurboLog, error) {
	if n < 0 || n > MaxTurboN {
		return nil, fmt.Errorf("fastlog.NewTurboLog: n %d must be in [0, %d]: %w", n, MaxTurboN, ErrInvalidArgument)
	}
	tl := &TurboLog{n: n, q: uint(math32.MantissaBits - n), qd: uint(mantissaBits - n)}
	size := 1 << n
	tl.mant = make([]float64, size)
	for i := range size {
		tl.mant[i] = math.Log(1 + float64(i)/float64(size))
	}
	tl.expF = make([]float64, math32.ExponentMask+1)
	for i := range tl.expF {
		tl.expF[i] = float64(i-math32.ExponentBias) * Ln2
	}
	tl.expD = make([]float64, exponentMask+1)
	for i := range tl.expD {
		tl.expD[i] = float64(i-exponentBias) * Ln2
	}
	tl.lowerF = math32.Mantissa(LowerOneBound)
	tl.upperF = math32.Mantissa(UpperOneBound)
	_, tl.lowerD = fields(LowerOneBound)
	_, tl.upperD = fields(UpperOneBound)
	return tl, nil
}

// MustTurboLog is like [NewTurboLog] but panics on an invalid argument.
func MustTurboLog(n int) *TurboLog {
	return errors.Must1(NewTurboLog(n))
}

// Base returns e.
func (tl *TurboLog) Base() float64 { return math.E }

func (tl *TurboLog) N() int { return tl.n }

// Scale returns ln(2).
func (tl *TurboLog) Scale() float64 { return Ln2 }

// Log returns an approximation of ln(x).
func (tl *TurboLog) Log(x float64) float64 {
	e, m := fields(x)
	switch {
	case e == exponentBias-1 && m >= tl.lowerD, e == exponentBias && m <= tl.upperD:
		return math.Log(x)
	case e == 0:
		if m == 0 {
			return math.Inf(-1)
		}
		exp := 1 - exponentBias
		for m&implicitBit == 0 {
			m <<= 1
			exp--
		}
		return tl.mant[(m&mantissaMask)>>tl.qd] + float64(exp)*Ln2
	}
	return tl.mant[m>>tl.qd] + tl.expD[e]
}

// Log2 returns an approximation of log2(x).
func (tl *TurboLog) Log2(x float64) float64 {
	return tl.Log(x) * math.Log2E
}

// LogF returns an approximation of ln(x) for a float32.
func (tl *TurboLog) LogF(x float32) float32 {
	e := math32.Exponent(x)
	m := math32.Mantissa(x)
	switch {
	case e == math32.ExponentBias-1 && m >= tl.lowerF, e == math32.ExponentBias && m <= tl.upperF:
		return math32.Log(x)
	case e == 0:
		if m == 0 {
			return math32.Inf(-1)
		}
		exp := 1 - math32.ExponentBias
		for m&(1<<math32.MantissaBits) == 0 {
			m <<= 1
			exp--
		}
		return float32(tl.mant[(m&math32.MantissaMask)>>tl.q] + float64(exp)*Ln2)
	}
	return float32(tl.mant[m>>tl.q] + tl.expF[e])
}

// Log2F returns an approximation of log2(x) for a float32.
func (tl *TurboLog) Log2F(x float32) float32 {
	return tl.LogF(x) * math32.Log2E
}
