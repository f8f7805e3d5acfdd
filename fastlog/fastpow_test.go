// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastlog

import (
	"math"
	"testing"

	"cogentcore.org/gradients/base/randx"
	"github.com/stretchr/testify/assert"
)

func TestFastPow(t *testing.T) {
	fp := MustFastPow(13)
	assert.InEpsilon(t, 8.0, fp.Pow(2, 3), 1e-4)
	assert.InEpsilon(t, 0.5, fp.Pow(4, -0.5), 1e-4)
	assert.InEpsilon(t, math.E, fp.Exp(1), 1e-3)
	assert.InEpsilon(t, 1.0, fp.Exp(0), 1e-4)
	assert.Equal(t, 0.0, fp.Pow(0, 2.4))
	assert.Equal(t, 0.0, fp.Exp(-1000))
	assert.True(t, math.IsInf(fp.Exp(1000), 1))
	assert.Equal(t, 0.0, fp.Exp2(-127))

	rnd := randx.NewSysRand(3)
	for range 10000 {
		base := randx.UniformRange(rnd, 1e-3, 1)
		exp := randx.UniformRange(rnd, 0.2, 3)
		assert.InEpsilon(t, math.Pow(base, exp), fp.Pow(base, exp), 1e-3, "pow(%g, %g)", base, exp)
	}
}

func TestFastPowPrecision(t *testing.T) {
	rnd := randx.NewSysRand(5)
	xs := make([]float64, 2000)
	for i := range xs {
		xs[i] = randx.UniformRange(rnd, 0.01, 1)
	}
	prev := math.Inf(1)
	for _, p := range []int{6, 10, 14, 18} {
		fp := MustFastPow(p)
		worst := 0.0
		for _, x := range xs {
			ref := math.Pow(x, 1/2.4)
			worst = max(worst, math.Abs(fp.Pow(x, 1/2.4)-ref)/ref)
		}
		assert.Less(t, worst, 2*math.Ldexp(1, -p)+1e-6, "p=%d", p)
		assert.Less(t, worst, prev, "p=%d", p)
		prev = worst
	}
}

var result64 float64

func BenchmarkMathLog2(b *testing.B) {
	var r float64
	x := 1.0
	for range b.N {
		x += 0.37
		r += math.Log2(x)
	}
	result64 = r
}

func BenchmarkDFastLog2(b *testing.B) {
	fl := MustDFastLog(2, DefaultN)
	var r float64
	x := 1.0
	b.ResetTimer()
	for range b.N {
		x += 0.37
		r += fl.Log2(x)
	}
	result64 = r
}

func BenchmarkFFastLog2(b *testing.B) {
	fl := MustFFastLog(2, DefaultN)
	var r float64
	x := 1.0
	b.ResetTimer()
	for range b.N {
		x += 0.37
		r += fl.Log2(x)
	}
	result64 = r
}

func BenchmarkTurboLog(b *testing.B) {
	tl := MustTurboLog(DefaultN)
	var r float64
	x := 1.0
	b.ResetTimer()
	for range b.N {
		x += 0.37
		r += tl.Log(x)
	}
	result64 = r
}

func BenchmarkMathPow(b *testing.B) {
	var r float64
	x := 0.0
	for range b.N {
		x += 1e-9
		r += math.Pow(x, 1/2.4)
	}
	result64 = r
}

func BenchmarkFastPow(b *testing.B) {
	fp := MustFastPow(DefaultN)
	var r float64
	x := 0.0
	b.ResetTimer()
	for range b.N {
		x += 1e-9
		r += fp.Pow(x, 1/2.4)
	}
	result64 = r
}
