// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastlog

import (
	"fmt"
	"math"

	"cogentcore.org/gradients/base/errors"
)

// DFastLog approximates logarithms with a table indexed by the top N
// bits of a double mantissa. Subnormals index the lower half of the
// table directly, so they keep only the mantissa bits above the dropped
// ones and return -Inf below that; [TurboLog] renormalizes them instead.
type DFastLog struct {
	base  float64
	scale float64
	n     int

	// q is the number of low mantissa bits dropped by the index.
	q uint

	// data holds log2 of each truncated mantissa, with the implicit
	// bit in place, less the exponent bias plus the mantissa width.
	data []float64
}

// MaxDN is the largest table precision accepted by [NewDFastLog].
const MaxDN = 30

// NewDFastLog returns a new [DFastLog] for the given base with a table
// over the top n mantissa bits. It has 1<<(n+1) entries.
func NewDFastLog(base float64, n int) (*DFastLog, error) {
	if n < 0 || n > MaxDN {
		return nil, fmt.Errorf("fastlog.NewDFastLog: n %d must be in [0, %d]: %w", n, MaxDN, ErrInvalidArgument)
	}
	scale, err := ComputeScale(base)
	if err != nil {
		return nil, err
	}
	fl := &DFastLog{base: base, scale: scale, n: n, q: uint(mantissaBits - n)}
	size := 1 << (n + 1)
	fl.data = make([]float64, size)
	for i := range size {
		fl.data[i] = ExactLog2(float64(uint64(i)<<fl.q)) - (exponentBias + mantissaBits)
	}
	return fl, nil
}

// MustDFastLog is like [NewDFastLog] but panics on an invalid argument.
func MustDFastLog(base float64, n int) *DFastLog {
	return errors.Must1(NewDFastLog(base, n))
}

func (fl *DFastLog) Base() float64 { return fl.base }
func (fl *DFastLog) N() int { return fl.n }
func (fl *DFastLog) Scale() float64 { return fl.scale }

// Log2 returns an approximation of log2(x).
func (fl *DFastLog) Log2(x float64) float64 {
	e, m := fields(x)
	if e == 0 {
		return fl.data[(m<<1)>>fl.q]
	}
	return float64(e) + fl.data[(m|implicitBit)>>fl.q]
}

// Log returns an approximation of the logarithm of x in the base.
func (fl *DFastLog) Log(x float64) float64 {
	return fl.Log2(x) * fl.scale
}

// Log2F returns an approximation of log2(x) for a float32.
// Widening to float64 is exact, so it shares the double table.
func (fl *DFastLog) Log2F(x float32) float32 {
	return float32(fl.Log2(float64(x)))
}

// LogF returns an approximation of the logarithm of x in the base for a float32.
func (fl *DFastLog) LogF(x float32) float32 {
	return float32(fl.Log(float64(x)))
}

// MaxError returns the largest absolute error of Log2 over the
// truncation interval, which is log2(1 + 2^-n).
func (fl *DFastLog) MaxError() float64 {
	return math.Log2(1 + math.Ldexp(1, -fl.n))
}
