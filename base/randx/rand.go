// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a [Rand] interface over the standard
// math/rand generators, so that random gradients and color
// mutations can draw from either the global stream or a
// separately seeded, reproducible source.
package randx

import "math/rand"

// Rand provides an interface with the subset of the standard
// rand.Rand methods used for random colors, to support the use
// of either the global rand generator or a separate Rand source.
type Rand interface {
	// Uint32 returns a pseudo-random 32-bit value as a uint32.
	Uint32() uint32

	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand that implements the
// randx.Rand interface, with the system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Uint32 returns a pseudo-random 32-bit value as a uint32.
func (r *SysRand) Uint32() uint32 {
	if r.Rand == nil {
		return rand.Uint32()
	}
	return r.Rand.Uint32()
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// UniformRange returns a uniformly distributed value in [lo, hi)
// drawn from the given source.
func UniformRange(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Opaque returns a random packed 0xAARRGGBB color with full alpha.
func Opaque(r Rand) uint32 {
	return 0xFF000000 | r.Uint32()&0x00FFFFFF
}
