// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	black = 0xFF000000
	white = 0xFFFFFFFF
	red   = 0xFFFF0000
	green = 0xFF00FF00
	blue  = 0xFF0000FF
)

func positions(g *Gradient) []float64 {
	ps := make([]float64, len(g.Stops))
	for i, s := range g.Stops {
		ps[i] = s.Position
	}
	return ps
}

func assertSorted(t *testing.T, g *Gradient) {
	t.Helper()
	for i := 1; i < len(g.Stops); i++ {
		assert.LessOrEqual(t, g.Stops[i-1].Position, g.Stops[i].Position, "stops %d and %d", i-1, i)
	}
}

func TestNew(t *testing.T) {
	g, err := New(red, green, blue)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, positions(g))
	assert.Equal(t, colorspace.OKLAB, g.Space)
	assert.Equal(t, SmoothStep, g.Interpolation)
	assert.Equal(t, 3, g.Len())

	g, err = New(red)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, positions(g))
	for _, p := range []float64{0, 0.3, 1} {
		assert.Equal(t, uint32(red), g.ColorAt(p))
	}

	_, err = New()
	assert.ErrorIs(t, err, ErrNoStops)
	_, err = NewFromStops()
	assert.ErrorIs(t, err, ErrNoStops)
	_, err = Random(0, randx.NewSysRand(1))
	assert.ErrorIs(t, err, ErrNoStops)
	_, err = RandomWithStops(-1, randx.NewSysRand(1))
	assert.ErrorIs(t, err, ErrNoStops)
	assert.Empty(t, NewEmpty().Stops)
}

func TestNewFromStops(t *testing.T) {
	g, err := NewFromStops(NewColorStop(blue, 1), NewColorStop(red, -3), NewColorStop(green, 0.4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.4, 1}, positions(g))
	assert.Equal(t, uint32(red), g.Stops[0].Color)
	assert.Equal(t, uint32(blue), g.Stops[2].Color)
}

func TestEndpoints(t *testing.T) {
	for _, cs := range colorspace.ColorSpacesValues() {
		for _, in := range InterpolationsValues() {
			g, err := New(0x80123456, red, 0xFF6789AB)
			require.NoError(t, err)
			g.SetColorSpace(cs).SetInterpolation(in)
			assert.Equal(t, uint32(0x80123456), g.ColorAt(0), "%v %v", cs, in)
			assert.Equal(t, uint32(0xFF6789AB), g.ColorAt(1), "%v %v", cs, in)
			if in.Step(0) == 0 {
				assert.Equal(t, uint32(red), g.ColorAt(0.5), "%v %v", cs, in)
			}
		}
	}
}

func TestEndpointsOutsideStops(t *testing.T) {
	g, err := NewFromStops(NewColorStop(red, 0.25), NewColorStop(blue, 0.75))
	require.NoError(t, err)
	assert.Equal(t, uint32(red), g.ColorAt(0.1))
	assert.Equal(t, uint32(red), g.ColorAt(0.25))
	assert.Equal(t, uint32(blue), g.ColorAt(0.9))
	assert.Equal(t, uint32(blue), g.ColorAt(1))
}

func TestMidpoint(t *testing.T) {
	g, err := New(black, white)
	require.NoError(t, err)
	g.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	mid := g.ColorAt(0.5)
	assert.Contains(t, []uint32{0xFF7F7F7F, 0xFF808080}, mid)

	g.SetColorSpace(colorspace.SRLAB2)
	assert.NotEqual(t, mid, g.ColorAt(0.5))
}

func TestColorAssigned(t *testing.T) {
	g, err := New(black, white)
	require.NoError(t, err)
	g.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	g.Prepare()
	g.Stops[1].Color = red

	fresh, err := New(black, red)
	require.NoError(t, err)
	fresh.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	assert.Equal(t, fresh.ColorAt(0.5), g.ColorAt(0.5))
	assert.Equal(t, uint32(0xFF800000), g.ColorAt(0.5))
}

func TestColorAtNaN(t *testing.T) {
	g, err := New(red, blue)
	require.NoError(t, err)
	assert.Equal(t, uint32(red), g.ColorAt(math.NaN()))
	assert.Equal(t, uint32(red), g.ColorAt(math.Inf(1)))
	assert.Equal(t, uint32(red), g.ColorAt(math.Inf(-1)))
	g.SetOffset(math.NaN())
	assert.Equal(t, uint32(red), g.ColorAt(0.5))
}

func TestAlpha(t *testing.T) {
	g, err := New(0x00FF0000, 0xFFFF0000)
	require.NoError(t, err)
	g.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	assert.Equal(t, uint32(0x80FF0000), g.ColorAt(0.5))
	assert.Equal(t, uint8(0x40), colorspace.Alpha(g.ColorAt(0.25)))
}

func TestOffsetWrap(t *testing.T) {
	g, err := New(black, white)
	require.NoError(t, err)
	g.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	want := g.ColorAt(0.25)
	assert.Equal(t, want, g.ColorAt(1.25))
	assert.Equal(t, want, g.ColorAt(-0.75))
	assert.Equal(t, want, g.ColorAt(-2.75))
	assert.Equal(t, uint32(white), g.ColorAt(1))

	g.SetOffset(0.5)
	assert.Equal(t, want, g.ColorAt(0.75))
	g.Animate(0.75)
	assert.InDelta(t, 0.25, g.Offset, 1e-15)
	assert.Equal(t, want, g.ColorAt(0))
	g.Animate(-0.5)
	assert.Equal(t, want, g.ColorAt(0.5))
}

func TestAddSorted(t *testing.T) {
	g, err := New(red, blue)
	require.NoError(t, err)
	g.AddColor(green, 0.5).AddColor(white, 0.2).AddColor(black, 0.5).AddColor(white, 7)
	assertSorted(t, g)
	assert.Equal(t, []float64{0, 0.2, 0.5, 0.5, 1, 1}, positions(g))
	// equal positions keep insertion order
	assert.Equal(t, uint32(green), g.Stops[2].Color)
	assert.Equal(t, uint32(black), g.Stops[3].Color)
	assert.Equal(t, uint32(blue), g.Stops[4].Color)
	assert.Equal(t, uint32(white), g.Stops[5].Color)
}

func TestSetStopPosition(t *testing.T) {
	g, err := New(red, green, blue)
	require.NoError(t, err)
	require.NoError(t, g.SetStopPosition(0, 0.75))
	assertSorted(t, g)
	assert.Equal(t, []uint32{green, red, blue}, colors(g))

	require.NoError(t, g.SetStopPosition(2, -0.25))
	assertSorted(t, g)
	assert.Equal(t, []float64{0.5, 0.75, 0.75}, positions(g))

	require.NoError(t, g.SetStopPosition(0, 1.5))
	assert.Equal(t, []float64{0.5, 0.75, 0.75}, positions(g))

	assert.ErrorIs(t, g.SetStopPosition(3, 0.1), ErrIndex)
	assert.ErrorIs(t, g.SetStopPosition(-1, 0.1), ErrIndex)
}

func colors(g *Gradient) []uint32 {
	cs := make([]uint32, len(g.Stops))
	for i, s := range g.Stops {
		cs[i] = s.Color
	}
	return cs
}

func TestSetStopColor(t *testing.T) {
	g, err := New(black, white)
	require.NoError(t, err)
	g.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	before := g.ColorAt(0.5)
	require.NoError(t, g.SetStopColor(1, black))
	assert.NotEqual(t, before, g.ColorAt(0.5))
	assert.Equal(t, uint32(black), g.ColorAt(0.5))
	assert.ErrorIs(t, g.SetStopColor(2, red), ErrIndex)

	c, err := g.ColorAtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(black), c)
	_, err = g.ColorAtIndex(5)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = NewEmpty().LastColor()
	assert.ErrorIs(t, err, ErrIndex)
}

func TestReverse(t *testing.T) {
	g, err := NewFromStops(NewColorStop(red, 0), NewColorStop(green, 0.2), NewColorStop(blue, 1))
	require.NoError(t, err)
	g.Reverse()
	assertSorted(t, g)
	assert.Equal(t, []uint32{blue, green, red}, colors(g))
	assert.InDeltaSlice(t, []float64{0, 0.8, 1}, positions(g), 1e-15)
}

func TestPushRemove(t *testing.T) {
	g, err := New(red, green, blue)
	require.NoError(t, err)
	g.PushColor(white)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, positions(g), 1e-15)
	last, err := g.LastColor()
	require.NoError(t, err)
	assert.Equal(t, uint32(white), last)

	assert.True(t, g.RemoveLast())
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, positions(g), 1e-15)
	assert.True(t, g.RemoveLast())
	assert.Equal(t, []uint32{red, green}, colors(g))
	assert.InDeltaSlice(t, []float64{0, 1}, positions(g), 1e-15)
	assert.False(t, g.RemoveLast())
	assert.Equal(t, 2, g.Len())

	g, err = New(red)
	require.NoError(t, err)
	g.PushColor(blue)
	assert.Equal(t, []float64{0, 1}, positions(g))
}

func TestPrimeAnimation(t *testing.T) {
	g, err := New(red, green, blue)
	require.NoError(t, err)
	require.NoError(t, g.PrimeAnimation())
	assert.Equal(t, []uint32{red, green, blue, red}, colors(g))
	assert.Equal(t, uint32(red), g.ColorAt(1))
	assert.Equal(t, uint32(red), g.ColorAt(0))
	assert.ErrorIs(t, NewEmpty().PrimeAnimation(), ErrNoStops)
}

func TestMutate(t *testing.T) {
	g, err := New(0x80000000, 0xFF808080, white)
	require.NoError(t, err)
	g.Mutate(10, randx.NewSysRand(3))
	for _, s := range g.Stops {
		rgb := colorspace.Decompose(s.Color)
		for _, c := range rgb {
			c8 := int(c*255 + 0.5)
			assert.Contains(t, []int{0, 10, 118, 138, 245, 255}, c8)
		}
	}
	assert.Equal(t, uint8(0x80), g.Stops[0].Alpha())
	assert.Equal(t, uint8(0xFF), g.Stops[1].Alpha())
}

func TestCycleSpaces(t *testing.T) {
	g := NewEmpty()
	g.NextColorSpace()
	assert.Equal(t, colorspace.LUV, g.Space)
	g.PrevColorSpace().PrevColorSpace()
	assert.Equal(t, colorspace.SRLAB2, g.Space)
	g.NextInterpolation()
	assert.Equal(t, SmootherStep, g.Interpolation)
	g.PrevInterpolation().PrevInterpolation().PrevInterpolation().PrevInterpolation()
	assert.Equal(t, Heartbeat, g.Interpolation)
}

func TestRandom(t *testing.T) {
	r := randx.NewSysRand(7)
	g, err := Random(5, r)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, positions(g))
	for _, c := range colors(g) {
		assert.Equal(t, uint8(0xFF), colorspace.Alpha(c))
	}

	g, err = RandomWithStops(6, r)
	require.NoError(t, err)
	assertSorted(t, g)
	ps := positions(g)
	assert.Equal(t, 0.0, ps[0])
	assert.Equal(t, 1.0, ps[5])

	g, err = RandomWithStops(1, r)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, positions(g))
}

func TestClone(t *testing.T) {
	g, err := New(red, blue)
	require.NoError(t, err)
	g.SetColorSpace(colorspace.LAB).SetInterpolation(Cubic).SetOffset(0.3)
	c := g.Clone()
	assert.Equal(t, g.Space, c.Space)
	assert.Equal(t, g.Interpolation, c.Interpolation)
	assert.Equal(t, g.Offset, c.Offset)
	require.Len(t, c.Stops, 2)
	for i := range g.Stops {
		assert.True(t, g.Stops[i].Equal(c.Stops[i]))
		assert.NotSame(t, g.Stops[i], c.Stops[i])
	}
	assert.Equal(t, g.ColorAt(0.1), c.ColorAt(0.1))

	require.NoError(t, c.SetStopColor(0, green))
	assert.Equal(t, uint32(red), g.Stops[0].Color)
}

func TestPrepareConcurrent(t *testing.T) {
	g, err := New(red, green, blue, white)
	require.NoError(t, err)
	want := g.Clone().Sample(64)
	g.Prepare()
	var wg sync.WaitGroup
	got := make([][]uint32, 4)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = g.Sample(64)
		}()
	}
	wg.Wait()
	for _, s := range got {
		assert.Equal(t, want, s)
	}
}

func TestColorStop(t *testing.T) {
	s := NewColorStop(0x7F102030, 1.5)
	assert.Equal(t, 1.0, s.Position)
	assert.Equal(t, uint8(0x7F), s.Alpha())
	lab := s.Channels(colorspace.LAB)
	s.SetColor(white)
	assert.NotEqual(t, lab, s.Channels(colorspace.LAB))
	assert.InDelta(t, 100, s.Channels(colorspace.LAB)[0], 1e-9)

	s.SetPosition(-0.25)
	assert.Equal(t, 0.75, s.Position)
	s.SetPosition(2.5)
	assert.Equal(t, 0.5, s.Position)
	s.SetPosition(1)
	assert.Equal(t, 1.0, s.Position)

	assert.True(t, NewColorStop(red, 0.5).Equal(NewColorStop(red, 0.5)))
	assert.False(t, NewColorStop(red, 0.5).Equal(NewColorStop(blue, 0.5)))
	assert.Equal(t, "0.5 #FFFF0000", NewColorStop(red, 0.5).String())
}

func TestStrings(t *testing.T) {
	g, err := New(red, blue)
	require.NoError(t, err)
	s := g.String()
	assert.Contains(t, s, "OKLAB SmoothStep")
	assert.Contains(t, s, "2 stops")
	assert.Contains(t, s, "#FFFF0000")
	assert.Contains(t, s, "1.0000")

	assert.Equal(t, "gradient.NewFromStops(\n\tgradient.NewColorStop(0xFFFF0000, 0),\n\tgradient.NewColorStop(0xFF0000FF, 1),\n)", g.GoString())
}

func ExampleGradient_ColorAt() {
	g, _ := New(0xFF000000, 0xFFFFFFFF)
	g.SetColorSpace(colorspace.RGB).SetInterpolation(Linear)
	fmt.Printf("%08X\n", g.ColorAt(0))
	fmt.Printf("%08X\n", g.ColorAt(0.5))
	fmt.Printf("%08X\n", g.ColorAt(1))
	// Output:
	// FF000000
	// FF808080
	// FFFFFFFF
}

func BenchmarkColorAt(b *testing.B) {
	g, _ := New(red, green, blue, white)
	for _, cs := range []colorspace.ColorSpaces{colorspace.RGB, colorspace.OKLAB, colorspace.JAB} {
		g.SetColorSpace(cs)
		b.Run(cs.String(), func(b *testing.B) {
			for i := range b.N {
				g.ColorAt(float64(i%1000) / 1000)
			}
		})
	}
}
