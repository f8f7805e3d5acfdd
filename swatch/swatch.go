// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch renders gradients into images and terminal previews.
package swatch

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"runtime"

	"cogentcore.org/gradients/colorspace"
	"cogentcore.org/gradients/gradient"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/sync/errgroup"
)

// Options are the options for rendering a swatch.
type Options struct {

	// Width is the width of the image in pixels.
	Width int

	// Height is the height of the image, or of each band of a sheet,
	// in pixels.
	Height int

	// Workers is the maximum number of goroutines used to evaluate
	// the gradient. Zero means [runtime.GOMAXPROCS].
	Workers int
}

// DefaultOptions are the options used for zero fields of [Options].
var DefaultOptions = Options{Width: 512, Height: 64}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Row evaluates the gradient at Width evenly spaced positions from 0 to 1
// and returns them as a one pixel high image. Columns are evaluated in
// parallel, after the stop caches of g are filled with
// [gradient.Gradient.Prepare].
func Row(ctx context.Context, g *gradient.Gradient, opts Options) (*image.NRGBA, error) {
	opts = opts.withDefaults()
	if len(g.Stops) == 0 {
		return nil, fmt.Errorf("swatch.Row: %w", gradient.ErrNoStops)
	}
	g.Prepare()
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, 1))
	chunk := (opts.Width + opts.Workers - 1) / opts.Workers

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for start := 0; start < opts.Width; start += chunk {
		end := min(start+chunk, opts.Width)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := start; x < end; x++ {
				pos := 0.0
				if opts.Width > 1 {
					pos = float64(x) / float64(opts.Width-1)
				}
				img.SetNRGBA(x, 0, colorspace.ToNRGBA(g.ColorAt(pos)))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// Strip renders the gradient as a horizontal strip of Width by Height pixels.
func Strip(ctx context.Context, g *gradient.Gradient, opts Options) (*image.NRGBA, error) {
	opts = opts.withDefaults()
	row, err := Row(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	return stretch(row, opts), nil
}

// stretch resizes a one pixel high row to the full height.
func stretch(row *image.NRGBA, opts Options) *image.NRGBA {
	rgba := transform.Resize(row, opts.Width, opts.Height, transform.NearestNeighbor)
	img := image.NewNRGBA(rgba.Bounds())
	draw.Draw(img, img.Bounds(), rgba, image.Point{}, draw.Src)
	return img
}

// Sheet renders one band of Height pixels per color space, each showing
// the gradient interpolated in that space. Bands are rendered in parallel
// on clones of g, so g itself is not modified.
func Sheet(ctx context.Context, g *gradient.Gradient, spaces []colorspace.ColorSpaces, opts Options) (*image.NRGBA, error) {
	opts = opts.withDefaults()
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height*len(spaces)))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i, space := range spaces {
		c := g.Clone().SetColorSpace(space)
		eg.Go(func() error {
			band, err := Strip(ctx, c, Options{Width: opts.Width, Height: opts.Height, Workers: 1})
			if err != nil {
				return fmt.Errorf("swatch.Sheet %v: %w", space, err)
			}
			r := image.Rect(0, i*opts.Height, opts.Width, (i+1)*opts.Height)
			draw.Draw(img, r, band, image.Point{}, draw.Src)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// SavePNG writes the image to the given file as a PNG.
func SavePNG(filename string, img image.Image) error {
	return imgio.Save(filename, img, imgio.PNGEncoder())
}

// EncodePNG writes the image to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imgio.PNGEncoder()(w, img)
}
