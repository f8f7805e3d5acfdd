// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/gradients/cmd/gradients/config"
	"cogentcore.org/gradients/swatch"
	"github.com/muesli/termenv"
)

// Show writes a terminal preview of each named preset to w,
// or of every preset when no names are given.
func Show(c *config.Config, w io.Writer, profile termenv.Profile, names ...string) error {
	presets, err := c.LoadPresets()
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	if len(names) == 0 {
		for _, p := range presets {
			names = append(names, p.Name)
		}
	}
	for _, name := range names {
		g, err := c.Gradient(presets, name)
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		fmt.Fprintf(w, "%-10s ", name)
		if err := swatch.Preview(w, g, c.Width, profile); err != nil {
			return fmt.Errorf("show: %w", err)
		}
	}
	return nil
}
