// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastlog

import (
	"fmt"

	"cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/math32"
)

// FFastLog approximates logarithms with a float32 table indexed by the
// top N bits of a float mantissa. Doubles are looked up in the same
// table after dropping the extra mantissa bits.
type FFastLog struct {
	base  float64
	scale float64
	n     int

	// q and qd are the number of low mantissa bits dropped by the
	// index for floats and doubles.
	q, qd uint
	data  []float32
}

// MaxFN is the largest table precision accepted by [NewFFastLog].
const MaxFN = math32.MantissaBits

// doubleOffset moves a float exponent bias to a double one.
const doubleOffset = exponentBias - math32.ExponentBias

// NewFFastLog returns a new [FFastLog] for the given base with a table
// over the top n float mantissa bits. It has 1<<(n+1) entries.
func NewFFastLog(base float64, n int) (*FFastLog, error) {
	if n < 0 || n > MaxFN {
		return nil, fmt.Errorf("fastlog.NewFFastLog: n %d must be in [0, %d]: %w", n, MaxFN, ErrInvalidArgument)
	}
	scale, err := ComputeScale(base)
	if err != nil {
		return nil, err
	}
	fl := &FFastLog{base: base, scale: scale, n: n, q: uint(math32.MantissaBits - n), qd: uint(mantissaBits - n)}
	size := 1 << (n + 1)
	fl.data = make([]float32, size)
	for i := range size {
		fl.data[i] = float32(ExactLog2(float64(uint64(i)<<fl.q)) - (math32.ExponentBias + math32.MantissaBits))
	}
	return fl, nil
}

// MustFFastLog is like [NewFFastLog] but panics on an invalid argument.
func MustFFastLog(base float64, n int) *FFastLog {
	return errors.Must1(NewFFastLog(base, n))
}

func (fl *FFastLog) Base() float64 { return fl.base }
func (fl *FFastLog) N() int { return fl.n }
func (fl *FFastLog) Scale() float64 { return fl.scale }

// Log2F returns an approximation of log2(x).
func (fl *FFastLog) Log2F(x float32) float32 {
	bits := math32.Float32bits(x)
	e := bits >> math32.MantissaBits & math32.ExponentMask
	m := bits & math32.MantissaMask
	if e == 0 {
		return fl.data[(m<<1)>>fl.q]
	}
	return float32(e) + fl.data[(m|1<<math32.MantissaBits)>>fl.q]
}

// LogF returns an approximation of the logarithm of x in the base.
func (fl *FFastLog) LogF(x float32) float32 {
	return fl.Log2F(x) * float32(fl.scale)
}

// Log2 returns an approximation of log2(x) for a double.
func (fl *FFastLog) Log2(x float64) float64 {
	e, m := fields(x)
	if e == 0 {
		return float64(fl.data[(m<<1)>>fl.qd]) - doubleOffset
	}
	return float64(e) + float64(fl.data[(m|implicitBit)>>fl.qd]) - doubleOffset
}

// Log returns an approximation of the logarithm of x in the base for a double.
func (fl *FFastLog) Log(x float64) float64 {
	return fl.Log2(x) * fl.scale
}
