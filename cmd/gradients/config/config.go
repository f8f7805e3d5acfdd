// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the gradients command.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cogentcore.org/gradients/colorspace"
	"cogentcore.org/gradients/gradient"
	"cogentcore.org/gradients/gradient/preset"
	"cogentcore.org/gradients/swatch"
)

// Config is the configuration shared by all gradients commands.
type Config struct {

	// Presets is an optional TOML or YAML preset file whose gradients
	// are added to the built in ones, replacing those with the same name.
	Presets string

	// Space overrides the color space of the gradient, if set.
	Space string

	// Interpolation overrides the interpolation of the gradient, if set.
	Interpolation string

	// Width is the width of swatches, in pixels for images and
	// in characters for terminal previews.
	Width int

	// Height is the height of image swatches in pixels.
	Height int

	// Output is the file written by the png command.
	Output string

	// Sheet renders one band per color space instead of a single strip.
	Sheet bool

	// Debounce is how long the watch command waits after a change
	// before reloading.
	Debounce time.Duration

	// Seed seeds the random command; zero draws from the global random stream.
	Seed int64
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Width:    swatch.DefaultOptions.Width,
		Height:   swatch.DefaultOptions.Height,
		Output:   "gradient.png",
		Debounce: 200 * time.Millisecond,
	}
}

// LoadPresets returns the built in presets followed by those in
// [Config.Presets], which replace built in presets of the same name.
func (c *Config) LoadPresets() ([]preset.Preset, error) {
	ps := preset.Builtin()
	if c.Presets == "" {
		return ps, nil
	}
	extra, err := preset.Load(c.Presets)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded presets", "file", c.Presets, "count", len(extra))
	for _, p := range extra {
		ps = slices.DeleteFunc(ps, func(b preset.Preset) bool {
			return strings.EqualFold(b.Name, p.Name)
		})
		ps = append(ps, p)
	}
	return ps, nil
}

// Gradient returns the gradient of the preset with the given name,
// with the space and interpolation overrides applied.
func (c *Config) Gradient(presets []preset.Preset, name string) (*gradient.Gradient, error) {
	p, ok := preset.Find(presets, name)
	if !ok {
		return nil, fmt.Errorf("no preset named %q", name)
	}
	g, err := p.Gradient()
	if err != nil {
		return nil, err
	}
	return g, c.Apply(g)
}

// Apply applies the space and interpolation overrides to g.
func (c *Config) Apply(g *gradient.Gradient) error {
	if c.Space != "" {
		var space colorspace.ColorSpaces
		if err := space.SetString(c.Space); err != nil {
			return err
		}
		g.SetColorSpace(space)
	}
	if c.Interpolation != "" {
		var in gradient.Interpolations
		if err := in.SetString(c.Interpolation); err != nil {
			return err
		}
		g.SetInterpolation(in)
	}
	return nil
}

// SwatchOptions returns the swatch options for the configured size.
func (c *Config) SwatchOptions() swatch.Options {
	return swatch.Options{Width: c.Width, Height: c.Height}
}
