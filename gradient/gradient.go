// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides multi-stop color gradients that are
// interpolated in a selectable perceptual color space.
//
// A [Gradient] keeps its stops sorted by position. Colors are packed
// 0xAARRGGBB values. Querying a color converts the two bracketing stops
// into the gradient color space, caching the conversion on each stop,
// interpolates there after easing the step with the gradient
// [Interpolations], and converts back to sRGB.
//
// A Gradient is not safe for concurrent use, since [Gradient.ColorAt]
// fills the stop caches. Call [Gradient.Prepare] before sharing it
// between goroutines that only read, or give each goroutine a
// [Gradient.Clone].
package gradient

//go:generate core generate

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"text/tabwriter"

	gerrors "cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colorspace"
	"github.com/jinzhu/copier"
)

var (
	// ErrNoStops is returned when a gradient would have no color stops.
	ErrNoStops = errors.New("gradient has no color stops")

	// ErrIndex is returned for a color stop index out of range.
	ErrIndex = errors.New("color stop index out of range")
)

const (
	// DefaultColorSpace is the color space of new gradients.
	DefaultColorSpace = colorspace.OKLAB

	// DefaultInterpolation is the interpolation of new gradients.
	DefaultInterpolation = SmoothStep
)

// Gradient is a sequence of color stops sorted by position.
type Gradient struct {

	// Stops are the color stops, sorted by position. Stops with equal
	// positions keep the order in which they were added.
	Stops []*ColorStop

	// Space is the color space in which colors are interpolated.
	Space colorspace.ColorSpaces

	// Interpolation is the easing applied between adjacent stops.
	Interpolation Interpolations

	// Offset shifts every query position, modulo 1. It is advanced
	// by [Gradient.Animate].
	Offset float64
}

// NewEmpty returns a gradient with no stops, which must have stops
// added before colors are queried from it.
func NewEmpty() *Gradient {
	return &Gradient{Space: DefaultColorSpace, Interpolation: DefaultInterpolation}
}

// New returns a gradient with the given packed 0xAARRGGBB colors spaced
// evenly from 0 to 1. A single color is placed at 0.
func New(colors ...uint32) (*Gradient, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("gradient.New: %w", ErrNoStops)
	}
	g := NewEmpty()
	g.Stops = make([]*ColorStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		g.Stops[i] = NewColorStop(c, pos)
	}
	return g, nil
}

// NewFromStops returns a gradient with the given stops, sorted by position.
// The gradient takes ownership of the stops.
func NewFromStops(stops ...*ColorStop) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("gradient.NewFromStops: %w", ErrNoStops)
	}
	g := NewEmpty()
	g.Stops = slices.Clone(stops)
	g.sort()
	return g, nil
}

// Random returns a gradient of n random opaque colors spaced evenly.
func Random(n int, r randx.Rand) (*Gradient, error) {
	if n < 1 {
		return nil, fmt.Errorf("gradient.Random: %d colors: %w", n, ErrNoStops)
	}
	colors := make([]uint32, n)
	for i := range colors {
		colors[i] = randx.Opaque(r)
	}
	return New(colors...)
}

// RandomWithStops returns a gradient of n random opaque colors at random
// positions, with the first at 0 and the last at 1.
func RandomWithStops(n int, r randx.Rand) (*Gradient, error) {
	if n < 1 {
		return nil, fmt.Errorf("gradient.RandomWithStops: %d colors: %w", n, ErrNoStops)
	}
	stops := make([]*ColorStop, n)
	for i := range stops {
		var pos float64
		switch i {
		case 0:
		case n - 1:
			pos = 1
		default:
			pos = r.Float64()
		}
		stops[i] = NewColorStop(randx.Opaque(r), pos)
	}
	return NewFromStops(stops...)
}

func (g *Gradient) sort() {
	slices.SortStableFunc(g.Stops, func(a, b *ColorStop) int {
		return cmp.Compare(a.Position, b.Position)
	})
}

// Len returns the number of stops.
func (g *Gradient) Len() int { return len(g.Stops) }

// Add adds the given stop, keeping the stops sorted.
func (g *Gradient) Add(stop *ColorStop) *Gradient {
	g.Stops = append(g.Stops, stop)
	g.sort()
	return g
}

// AddColor adds a stop with the given packed 0xAARRGGBB color
// at the given position, which is clamped to [0,1].
func (g *Gradient) AddColor(argb uint32, pos float64) *Gradient {
	return g.Add(NewColorStop(argb, pos))
}

// ColorAt returns the packed 0xAARRGGBB color at the given position.
// The position is shifted by the offset and wrapped into [0,1].
// Positions at or beyond the first and last stops return the color
// of that stop, as do NaN and infinite positions. It panics if the
// gradient has no stops.
func (g *Gradient) ColorAt(pos float64) uint32 {
	n := len(g.Stops)
	p := wrap(pos + g.Offset)
	first, last := g.Stops[0], g.Stops[n-1]
	if math.IsNaN(p) || p <= first.Position {
		return first.Color
	}
	if p >= last.Position {
		return last.Color
	}
	i := sort.Search(n, func(i int) bool { return g.Stops[i].Position > p })
	lo, hi := g.Stops[i-1], g.Stops[i]
	t := g.Interpolation.Step((p - lo.Position) / (hi.Position - lo.Position))

	space := g.Space.ColorSpace()
	c := space.InterpolateLinear(lo.Channels(g.Space), hi.Channels(g.Space), t)
	la, ha := float64(lo.Alpha()), float64(hi.Alpha())
	alpha := uint8(min(max(math.Floor(la+t*(ha-la)+0.5), 0), 255))
	return colorspace.ComposeClamp(space.ToRGB(c), alpha)
}

// Sample returns n colors at evenly spaced positions from 0 to 1.
func (g *Gradient) Sample(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		out[i] = g.ColorAt(pos)
	}
	return out
}

// Prepare fills the conversion cache of every stop for the current
// color space, after which [Gradient.ColorAt] only reads the gradient.
func (g *Gradient) Prepare() *Gradient {
	for _, s := range g.Stops {
		s.Channels(g.Space)
	}
	return g
}

// Animate advances the offset by amt, modulo 1.
func (g *Gradient) Animate(amt float64) *Gradient {
	g.Offset = math.Mod(g.Offset+amt, 1)
	return g
}

// SetOffset sets the offset.
func (g *Gradient) SetOffset(offset float64) *Gradient {
	g.Offset = offset
	return g
}

// SetColorSpace sets the color space of the gradient.
func (g *Gradient) SetColorSpace(space colorspace.ColorSpaces) *Gradient {
	g.Space = space
	return g
}

// NextColorSpace switches to the next color space.
func (g *Gradient) NextColorSpace() *Gradient {
	g.Space = g.Space.Next()
	return g
}

// PrevColorSpace switches to the previous color space.
func (g *Gradient) PrevColorSpace() *Gradient {
	g.Space = g.Space.Prev()
	return g
}

// SetInterpolation sets the interpolation of the gradient.
func (g *Gradient) SetInterpolation(in Interpolations) *Gradient {
	g.Interpolation = in
	return g
}

// NextInterpolation switches to the next interpolation.
func (g *Gradient) NextInterpolation() *Gradient {
	g.Interpolation = g.Interpolation.Next()
	return g
}

// PrevInterpolation switches to the previous interpolation.
func (g *Gradient) PrevInterpolation() *Gradient {
	g.Interpolation = g.Interpolation.Prev()
	return g
}

func (g *Gradient) checkIndex(fn string, i int) error {
	if i < 0 || i >= len(g.Stops) {
		return fmt.Errorf("gradient.%s: index %d of %d stops: %w", fn, i, len(g.Stops), ErrIndex)
	}
	return nil
}

// ColorAtIndex returns the color of the stop at index i.
func (g *Gradient) ColorAtIndex(i int) (uint32, error) {
	if err := g.checkIndex("ColorAtIndex", i); err != nil {
		return 0, err
	}
	return g.Stops[i].Color, nil
}

// LastColor returns the color of the last stop.
func (g *Gradient) LastColor() (uint32, error) {
	return g.ColorAtIndex(len(g.Stops) - 1)
}

// SetStopColor sets the color of the stop at index i.
func (g *Gradient) SetStopColor(i int, argb uint32) error {
	if err := g.checkIndex("SetStopColor", i); err != nil {
		return err
	}
	g.Stops[i].SetColor(argb)
	return nil
}

// SetStopPosition moves the stop at index i to the given position,
// wrapped into [0,1], and re-sorts the stops.
func (g *Gradient) SetStopPosition(i int, pos float64) error {
	if err := g.checkIndex("SetStopPosition", i); err != nil {
		return err
	}
	g.Stops[i].SetPosition(pos)
	g.sort()
	return nil
}

// Reverse mirrors every stop position p to 1-p.
func (g *Gradient) Reverse() *Gradient {
	for _, s := range g.Stops {
		s.Position = 1 - s.Position
	}
	g.sort()
	return g
}

// Mutate moves the channels of every stop color up or down by amt,
// in 8-bit units. See [ColorStop.Mutate].
func (g *Gradient) Mutate(amt float64, r randx.Rand) *Gradient {
	for _, s := range g.Stops {
		s.Mutate(amt, r)
	}
	return g
}

// PushColor scales the existing stop positions by (n-1)/n for n
// existing stops and adds the given color at 1.
func (g *Gradient) PushColor(argb uint32) *Gradient {
	if n := len(g.Stops); n > 0 {
		scale := float64(n-1) / float64(n)
		for _, s := range g.Stops {
			s.Position *= scale
		}
	}
	return g.AddColor(argb, 1)
}

// RemoveLast removes the last stop and scales the remaining positions
// so that the new last stop takes its place. It is the inverse of
// [Gradient.PushColor]. Gradients of two stops or fewer are unchanged,
// and false is returned.
func (g *Gradient) RemoveLast() bool {
	n := len(g.Stops)
	if n <= 2 {
		return false
	}
	removed := g.Stops[n-1]
	g.Stops = g.Stops[:n-1]
	if at := g.Stops[n-2].Position; at > 0 {
		scale := removed.Position / at
		for _, s := range g.Stops {
			s.Position *= scale
		}
	}
	return true
}

// PrimeAnimation pushes a copy of the first color to the end so that
// the gradient wraps around without a seam when animated.
func (g *Gradient) PrimeAnimation() error {
	c, err := g.ColorAtIndex(0)
	if err != nil {
		return fmt.Errorf("gradient.PrimeAnimation: %w", ErrNoStops)
	}
	g.PushColor(c)
	return nil
}

// Clone returns a deep copy of the gradient.
func (g *Gradient) Clone() *Gradient {
	c := &Gradient{}
	gerrors.Log(copier.CopyWithOption(c, g, copier.Option{DeepCopy: true}))
	return c
}

// String returns a table of the stops of the gradient, with each
// color in sRGB and in the gradient color space.
func (g *Gradient) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gradient %v %v offset %g, %d stops:\n", g.Space, g.Interpolation, g.Offset, len(g.Stops))
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tPosition\tARGB\t"+g.Space.String())
	for _, s := range g.Stops {
		c := s.Channels(g.Space)
		fmt.Fprintf(tw, "\t%.4f\t#%08X\t%.3f %.3f %.3f\n", s.Position, s.Color, c[0], c[1], c[2])
	}
	tw.Flush()
	return b.String()
}

// GoString returns Go code that constructs the gradient.
func (g *Gradient) GoString() string {
	var b strings.Builder
	b.WriteString("gradient.NewFromStops(\n")
	for _, s := range g.Stops {
		fmt.Fprintf(&b, "\tgradient.NewColorStop(0x%08X, %v),\n", s.Color, s.Position)
	}
	b.WriteString(")")
	return b.String()
}
