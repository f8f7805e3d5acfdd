// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"math"

	"cogentcore.org/gradients/fastlog"
)

// Interpolations are the easing curves that remap the linear step
// between two adjacent color stops.
type Interpolations int32 //enums:enum

const (
	// Linear leaves the step unchanged.
	Linear Interpolations = iota

	// Identity is the almost unit identity t*t*(2-t), which has zero
	// slope at 0 and unit slope at 1.
	Identity

	// SmoothStep is the cubic Hermite curve 3t²-2t³.
	SmoothStep

	// SmootherStep is Ken Perlin's quintic smoother step.
	SmootherStep

	// Exponential is the ease out curve 1-2^(-10t).
	Exponential

	// Cubic is t³.
	Cubic

	// Bounce is a parabolic bouncing ease out that settles at 1.
	Bounce

	// Circular is the quarter circle sqrt((2-t)t).
	Circular

	// Sine is sin(t), with t in radians.
	Sine

	// Parabola is sqrt(4t(1-t)), which returns to 0 at t = 1.
	Parabola

	// Gain1 expands the sides and compresses the center with k = 0.3,
	// keeping 1/2 mapped to 1/2.
	Gain1

	// Gain2 is like Gain1 with k = 3.3333.
	Gain2

	// ExpImpulse is the exponential impulse 2t*e^(1-2t), which peaks
	// at t = 1/2.
	ExpImpulse

	// Heartbeat gives a beating heart effect.
	Heartbeat
)

// Step remaps the linear step t in [0,1] through the curve.
// Invalid values leave t unchanged.
func (in Interpolations) Step(t float64) float64 {
	switch in {
	case Identity:
		return t * t * (2 - t)
	case SmoothStep:
		return 3*t*t - 2*t*t*t
	case SmootherStep:
		return t * t * t * (t*(t*6-15) + 10)
	case Exponential:
		if t == 1 {
			return t
		}
		return 1 - fastlog.DefaultPow().Exp2(-10*t)
	case Cubic:
		return t * t * t
	case Bounce:
		return bounce(t)
	case Circular:
		return math.Sqrt((2 - t) * t)
	case Sine:
		return math.Sin(t)
	case Parabola:
		return math.Sqrt(4 * t * (1 - t))
	case Gain1:
		return gain(t, 0.3)
	case Gain2:
		return gain(t, 3.3333)
	case ExpImpulse:
		return 2 * t * fastlog.DefaultPow().Exp(1-2*t)
	case Heartbeat:
		v := math.Atan(math.Sin(t*math.Pi) * 6)
		return (v + math.Pi/2) / math.Pi
	}
	return t
}

func bounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	}
	t -= 2.625 / 2.75
	return 7.5625*t*t + 0.984375
}

func gain(t, k float64) float64 {
	fp := fastlog.DefaultPow()
	if t < 0.5 {
		return 0.5 * fp.Pow(2*t, k)
	}
	return 1 - 0.5*fp.Pow(2*(1-t), k)
}

// Next returns the next interpolation, wrapping to the first one
// after the last.
func (in Interpolations) Next() Interpolations {
	return (in + 1) % InterpolationsN
}

// Prev returns the previous interpolation, wrapping to the last one
// before the first.
func (in Interpolations) Prev() Interpolations {
	return (in + InterpolationsN - 1) % InterpolationsN
}

// IsValid returns whether in is one of the defined interpolations.
func (in Interpolations) IsValid() bool {
	return in >= 0 && in < InterpolationsN
}
