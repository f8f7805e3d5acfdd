// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/gradients/cmd/gradients/config"
	"cogentcore.org/gradients/colorspace"
	"cogentcore.org/gradients/swatch"
)

// PNG renders the named preset to [config.Config.Output], as a single
// strip or, with [config.Config.Sheet], one band per color space.
func PNG(ctx context.Context, c *config.Config, name string) error {
	presets, err := c.LoadPresets()
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	g, err := c.Gradient(presets, name)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	var img image.Image
	if c.Sheet {
		img, err = swatch.Sheet(ctx, g, colorspace.ColorSpacesValues(), c.SwatchOptions())
	} else {
		img, err = swatch.Strip(ctx, g, c.SwatchOptions())
	}
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := swatch.SavePNG(c.Output, img); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	slog.Info("wrote swatch", "preset", name, "file", c.Output, "size", img.Bounds().Size())
	return nil
}
